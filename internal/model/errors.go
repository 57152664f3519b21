package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors classify every business failure; match with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrTimeout           = errors.New("timeout")
)

// Code is the stable machine-readable classification of a failure.
type Code string

const (
	CodeNotFound          Code = "NOT_FOUND"
	CodeAlreadyExists     Code = "ALREADY_EXISTS"
	CodeInsufficientFunds Code = "INSUFFICIENT_FUNDS"
	CodeTimeout           Code = "TIMEOUT"
)

// Error is a business failure with a stable code and the user-facing message.
// The issuing component keeps running; an Error is always a reply value,
// never a fatal condition.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches the sentinel corresponding to the error code.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == CodeNotFound
	case ErrAlreadyExists:
		return e.Code == CodeAlreadyExists
	case ErrInsufficientFunds:
		return e.Code == CodeInsufficientFunds
	case ErrTimeout:
		return e.Code == CodeTimeout
	}
	return false
}

func AccountNotFound(id int64) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("Account %d not found", id)}
}

func AccountAlreadyExists(id int64) error {
	return &Error{Code: CodeAlreadyExists, Message: fmt.Sprintf("Account %d already exists", id)}
}

func TransactionNotFound(id int64) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("Transaction %d does not exist", id)}
}

func TransactionAlreadyProcessed(id int64) error {
	return &Error{Code: CodeAlreadyExists, Message: fmt.Sprintf("Transaction %d already been processed", id)}
}

func CustomerNotFound(id int64) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("Customer %d not found", id)}
}

func CustomerAlreadyExists(id int64) error {
	return &Error{Code: CodeAlreadyExists, Message: fmt.Sprintf("Customer %d already exists", id)}
}

func InsufficientBalance(amount decimal.Decimal, accountID int64) error {
	return &Error{
		Code:    CodeInsufficientFunds,
		Message: fmt.Sprintf("Insufficient balance to withdraw %s from account %d", amount, accountID),
	}
}

// AskFailure wraps a timed-out or aborted actor exchange. The original
// request may still complete inside the target actor; its result is
// discarded.
func AskFailure(err error) error {
	return &Error{Code: CodeTimeout, Message: fmt.Sprintf("internal failure: %v", err)}
}
