package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yuvaraajk/money-transfer-app/internal/model"
)

// AccountOpener opens the account that backs a newly created customer.
// Implemented by AccountService.
type AccountOpener interface {
	CreateAccount(account model.Account) error
}

// CustomerService is the customer registry. Ids come from a process-local
// sequence; the customer's account number equals the customer id and the
// backing zero-balance account is opened through the account registry.
type CustomerService struct {
	mu        sync.Mutex
	customers map[int64]*customerActor
	accounts  AccountOpener
	seq       atomic.Int64
	timeout   time.Duration
	log       *zap.SugaredLogger
}

func NewCustomerService(accounts AccountOpener, timeout time.Duration, log *zap.SugaredLogger) *CustomerService {
	return &CustomerService{
		customers: make(map[int64]*customerActor),
		accounts:  accounts,
		timeout:   timeout,
		log:       log,
	}
}

// CreateCustomer allocates the next id, opens the customer's zero-balance
// account and registers the customer actor.
func (s *CustomerService) CreateCustomer(name string) (model.Customer, error) {
	id := s.seq.Add(1)
	customer := model.Customer{
		ID:            id,
		Name:          name,
		AccountNumber: id,
	}

	if err := s.accounts.CreateAccount(model.Account{AccountID: id, Balance: decimal.Zero}); err != nil {
		s.log.Warnf("Customer %d account creation failed: %v", id, err)
		return model.Customer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; ok {
		s.log.Infof("Customer %d already exists", id)
		return model.Customer{}, model.CustomerAlreadyExists(id)
	}
	s.customers[id] = newCustomerActor(customer, s.timeout)
	s.log.Infof("Customer %d created", id)
	return customer, nil
}

// GetCustomer returns the record for the id.
func (s *CustomerService) GetCustomer(id int64) (model.Customer, error) {
	s.mu.Lock()
	h, ok := s.customers[id]
	s.mu.Unlock()

	if !ok {
		s.log.Warnf("Customer %d not found", id)
		return model.Customer{}, model.CustomerNotFound(id)
	}
	return h.Read()
}

// DeleteCustomer removes the record and stops its actor. The backing account
// stays registered; account deletion is its own operation.
func (s *CustomerService) DeleteCustomer(id int64) error {
	s.mu.Lock()
	h, ok := s.customers[id]
	if ok {
		delete(s.customers, id)
	}
	s.mu.Unlock()

	if !ok {
		s.log.Warnf("Customer %d not found", id)
		return model.CustomerNotFound(id)
	}
	h.Stop()
	s.log.Infof("Customer %d deleted", id)
	return nil
}

// Shutdown stops every customer actor.
func (s *CustomerService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, h := range s.customers {
		h.Stop()
		delete(s.customers, id)
	}
}
