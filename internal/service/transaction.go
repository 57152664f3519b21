package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yuvaraajk/money-transfer-app/internal/model"
)

// FundMover performs the actual fund movement on behalf of the orchestrator.
// Implemented by AccountService.
type FundMover interface {
	Transfer(txn model.Transaction) error
	CashDeposit(txn model.Transaction) error
}

// TransactionService tracks every submitted transaction in its own actor and
// converts the fund mover's outcome into the record's terminal status. A
// transaction id is accepted exactly once; replays fail before any actor is
// created or funds move.
type TransactionService struct {
	mu           sync.Mutex
	transactions map[int64]transactionHandle
	accounts     FundMover
	timeout      time.Duration
	log          *zap.SugaredLogger
}

func NewTransactionService(accounts FundMover, timeout time.Duration, log *zap.SugaredLogger) *TransactionService {
	return &TransactionService{
		transactions: make(map[int64]transactionHandle),
		accounts:     accounts,
		timeout:      timeout,
		log:          log,
	}
}

// Submit registers the transaction, asks the fund mover to execute it and
// commits or rolls back the record's status based on the outcome. The reply
// is always a terminal record: SUCCESS, or FAIL wrapped in a rolled-back
// outcome carrying the failure reason.
func (s *TransactionService) Submit(txn model.Transaction) (model.TransferOutcome, error) {
	txn.Status = model.StatusNew

	s.mu.Lock()
	if _, ok := s.transactions[txn.ID]; ok {
		s.mu.Unlock()
		s.log.Warnf("Transaction %d already been processed", txn.ID)
		return model.TransferOutcome{}, model.TransactionAlreadyProcessed(txn.ID)
	}
	h := newTransactionActor(txn, s.timeout)
	s.transactions[txn.ID] = h
	s.mu.Unlock()

	var moveErr error
	if txn.CashDeposit() {
		moveErr = s.accounts.CashDeposit(txn)
	} else {
		moveErr = s.accounts.Transfer(txn)
	}

	if moveErr != nil {
		updated, err := h.SetStatus(model.StatusFail)
		if err != nil {
			return model.TransferOutcome{}, err
		}
		return model.TransferOutcome{
			Transaction: updated,
			RolledBack:  true,
			Reason:      moveErr.Error(),
		}, nil
	}

	updated, err := h.SetStatus(model.StatusSuccess)
	if err != nil {
		return model.TransferOutcome{}, err
	}
	return model.TransferOutcome{Transaction: updated}, nil
}

// SubmitCashDeposit tracks and executes a single-account deposit.
func (s *TransactionService) SubmitCashDeposit(cd model.CashDeposit) (model.TransferOutcome, error) {
	return s.Submit(cd.Transaction())
}

// GetTransaction returns the current record for the id.
func (s *TransactionService) GetTransaction(id int64) (model.Transaction, error) {
	s.mu.Lock()
	h, ok := s.transactions[id]
	s.mu.Unlock()

	if !ok {
		s.log.Warnf("Transaction %d does not exist", id)
		return model.Transaction{}, model.TransactionNotFound(id)
	}
	return h.Read()
}

// DeleteTransaction removes the record and stops its actor.
func (s *TransactionService) DeleteTransaction(id int64) error {
	s.mu.Lock()
	h, ok := s.transactions[id]
	if ok {
		delete(s.transactions, id)
	}
	s.mu.Unlock()

	if !ok {
		s.log.Warnf("Transaction %d does not exist", id)
		return model.TransactionNotFound(id)
	}
	h.Stop()
	s.log.Infof("Transaction %d deleted", id)
	return nil
}

// Shutdown stops every tracked transaction actor.
func (s *TransactionService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, h := range s.transactions {
		h.Stop()
		delete(s.transactions, id)
	}
}
