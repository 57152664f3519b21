package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yuvaraajk/money-transfer-app/internal/model"
)

// AccountService is the account registry and the owner of the transfer
// protocol. Each registered account is backed by its own actor; the id to
// handle map is the only state guarded by the service's mutex, and it is
// never held across an exchange with an account actor.
type AccountService struct {
	mu       sync.RWMutex
	accounts map[int64]accountHandle
	timeout  time.Duration
	log      *zap.SugaredLogger
}

func NewAccountService(timeout time.Duration, log *zap.SugaredLogger) *AccountService {
	return &AccountService{
		accounts: make(map[int64]accountHandle),
		timeout:  timeout,
		log:      log,
	}
}

// CreateAccount registers a new account actor seeded with the given account.
// It fails iff the id is already registered; the existing account is then
// left untouched.
func (s *AccountService) CreateAccount(account model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := account.AccountID
	if _, ok := s.accounts[id]; ok {
		s.log.Infof("Account %d already exists", id)
		return model.AccountAlreadyExists(id)
	}
	s.accounts[id] = newAccountActor(account, s.timeout, s.log)
	s.log.Infof("Account %d created", id)
	return nil
}

// GetAccount returns the current snapshot of the account.
func (s *AccountService) GetAccount(id int64) (model.Account, error) {
	h, ok := s.lookup(id)
	if !ok {
		s.log.Warnf("Account %d not found", id)
		return model.Account{}, model.AccountNotFound(id)
	}
	return h.Read()
}

// DeleteAccount removes the mapping and stops the account's actor.
func (s *AccountService) DeleteAccount(id int64) error {
	s.mu.Lock()
	h, ok := s.accounts[id]
	if ok {
		delete(s.accounts, id)
	}
	s.mu.Unlock()

	if !ok {
		s.log.Warnf("Account %d not found", id)
		return model.AccountNotFound(id)
	}
	// The handle is already unreachable; take the final snapshot before
	// stopping the actor.
	if account, err := h.Read(); err == nil {
		s.log.Infof("Account %d deleted with final balance %s", id, account.Balance)
	}
	h.Stop()
	return nil
}

// Transfer executes the two-step debit/credit protocol. The debit is
// confirmed before the credit is attempted; if the credit fails after a
// successful debit, a compensating deposit restores the remitter's balance.
// The compensation is fire-and-forget and not itself re-verified.
func (s *AccountService) Transfer(txn model.Transaction) error {
	s.log.Infof("Processing transaction %d", txn.ID)

	remitter, ok := s.lookup(txn.RemitterAccountID)
	if !ok {
		s.log.Warnf("Transaction %d failed: account %d not found", txn.ID, txn.RemitterAccountID)
		return model.AccountNotFound(txn.RemitterAccountID)
	}
	beneficiary, ok := s.lookup(txn.BeneficiaryAccountID)
	if !ok {
		s.log.Warnf("Transaction %d failed: account %d not found", txn.ID, txn.BeneficiaryAccountID)
		return model.AccountNotFound(txn.BeneficiaryAccountID)
	}

	if err := remitter.Withdraw(txn.Amount); err != nil {
		s.log.Warnf("Transaction %d failed with reason: %v", txn.ID, err)
		return err
	}
	if err := beneficiary.Deposit(txn.Amount); err != nil {
		remitter.DepositAsync(txn.Amount)
		s.log.Warnf("Transaction %d failed with reason: %v", txn.ID, err)
		return err
	}

	s.log.Infof("Transaction %d succeeded", txn.ID)
	return nil
}

// CashDeposit credits a single account; the transaction's remitter slot
// carries the target account.
func (s *AccountService) CashDeposit(txn model.Transaction) error {
	s.log.Infof("Processing deposit transaction %d", txn.ID)

	target, ok := s.lookup(txn.RemitterAccountID)
	if !ok {
		s.log.Warnf("Transaction %d failed: account %d not found", txn.ID, txn.RemitterAccountID)
		return model.AccountNotFound(txn.RemitterAccountID)
	}
	if err := target.Deposit(txn.Amount); err != nil {
		s.log.Warnf("Transaction %d failed with reason: %v", txn.ID, err)
		return err
	}

	s.log.Infof("Transaction %d succeeded", txn.ID)
	return nil
}

// Shutdown stops every registered account actor.
func (s *AccountService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, h := range s.accounts {
		h.Stop()
		delete(s.accounts, id)
	}
}

func (s *AccountService) lookup(id int64) (accountHandle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.accounts[id]
	return h, ok
}
