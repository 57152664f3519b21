package model

import (
	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusNew     TransactionStatus = "NEW"
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFail    TransactionStatus = "FAIL"
)

// Terminal reports whether the status permits no further transition.
func (s TransactionStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusFail
}

// Transaction records one fund movement. BeneficiaryAccountID is zero for a
// cash deposit, where the remitter account is the deposit target. Status
// starts at NEW and transitions exactly once to SUCCESS or FAIL.
type Transaction struct {
	ID                   int64             `json:"id"`
	RemitterAccountID    int64             `json:"remitterAccountId"`
	BeneficiaryAccountID int64             `json:"beneficiaryAccountId,omitempty"`
	Amount               decimal.Decimal   `json:"amount"`
	Status               TransactionStatus `json:"status"`
	Remarks              string            `json:"remarks,omitempty"`
}

// CashDeposit reports whether the transaction targets a single account.
func (t Transaction) CashDeposit() bool {
	return t.BeneficiaryAccountID == 0
}

// WithStatus returns a copy of the transaction in the given status.
func (t Transaction) WithStatus(status TransactionStatus) Transaction {
	t.Status = status
	return t
}

// CashDeposit is the single-account deposit request accepted by the boundary.
type CashDeposit struct {
	ID            int64           `json:"id"`
	AccountNumber int64           `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

// Transaction converts the deposit into the transaction record tracked by the
// orchestrator. The target account takes the remitter slot and there is no
// beneficiary.
func (cd CashDeposit) Transaction() Transaction {
	return Transaction{
		ID:                cd.ID,
		RemitterAccountID: cd.AccountNumber,
		Amount:            cd.Amount,
		Status:            StatusNew,
		Remarks:           "Cash Deposit",
	}
}

// TransferOutcome is the terminal result of a submitted transaction. On a
// rolled-back transfer the transaction carries status FAIL and Reason holds
// the failure that triggered the rollback.
type TransferOutcome struct {
	Transaction Transaction `json:"transaction"`
	RolledBack  bool        `json:"rolledBack"`
	Reason      string      `json:"reason,omitempty"`
}
