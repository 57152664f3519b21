package service

import (
	"time"

	"github.com/yuvaraajk/money-transfer-app/internal/actor"
	"github.com/yuvaraajk/money-transfer-app/internal/model"
)

// customerActor owns one customer record. The record itself is immutable;
// the actor exists so customers route through the same machinery as accounts
// and transactions.
type customerActor struct {
	act *actor.Actor[model.Customer]
}

func newCustomerActor(customer model.Customer, timeout time.Duration) *customerActor {
	return &customerActor{
		act: actor.Go(customer, actor.WithTimeout(timeout)),
	}
}

func (c *customerActor) Read() (model.Customer, error) {
	var snapshot model.Customer
	if err := c.act.Do(func(cust *model.Customer) {
		snapshot = *cust
	}); err != nil {
		return model.Customer{}, model.AskFailure(err)
	}
	return snapshot, nil
}

func (c *customerActor) Stop() {
	c.act.Stop()
}
