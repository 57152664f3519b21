package service

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yuvaraajk/money-transfer-app/internal/actor"
	"github.com/yuvaraajk/money-transfer-app/internal/model"
)

// accountHandle is what the registry keeps per account id. It is an interface
// so a misbehaving account can be substituted when exercising the
// compensation path.
type accountHandle interface {
	Read() (model.Account, error)
	Withdraw(amount decimal.Decimal) error
	Deposit(amount decimal.Decimal) error
	DepositAsync(amount decimal.Decimal)
	Stop()
}

// accountActor serializes all mutations of a single account. Balance checks
// and updates run inside the actor, so a withdraw can never observe a balance
// another operation is about to change.
type accountActor struct {
	act *actor.Actor[model.Account]
	log *zap.SugaredLogger
}

func newAccountActor(account model.Account, timeout time.Duration, log *zap.SugaredLogger) *accountActor {
	return &accountActor{
		act: actor.Go(account, actor.WithTimeout(timeout)),
		log: log,
	}
}

// Read returns the current snapshot.
func (a *accountActor) Read() (model.Account, error) {
	var snapshot model.Account
	if err := a.act.Do(func(acc *model.Account) {
		snapshot = *acc
	}); err != nil {
		return model.Account{}, model.AskFailure(err)
	}
	return snapshot, nil
}

// Withdraw debits the amount. It fails iff the amount exceeds the current
// balance; the balance is then left untouched.
func (a *accountActor) Withdraw(amount decimal.Decimal) error {
	var opErr error
	err := a.act.Do(func(acc *model.Account) {
		if amount.GreaterThan(acc.Balance) {
			opErr = model.InsufficientBalance(amount, acc.AccountID)
			return
		}
		*acc = acc.WithBalance(acc.Balance.Sub(amount))
		a.log.Infof("Withdraw of %s succeeded for account %d, balance %s", amount, acc.AccountID, acc.Balance)
	})
	if err != nil {
		return model.AskFailure(err)
	}
	return opErr
}

// Deposit credits the amount. It always succeeds for a live account; amount
// validation happens at the boundary.
func (a *accountActor) Deposit(amount decimal.Decimal) error {
	if err := a.act.Do(func(acc *model.Account) {
		*acc = acc.WithBalance(acc.Balance.Add(amount))
		a.log.Infof("Deposit of %s succeeded for account %d, balance %s", amount, acc.AccountID, acc.Balance)
	}); err != nil {
		return model.AskFailure(err)
	}
	return nil
}

// DepositAsync credits the amount without waiting for completion. Used only
// for the compensating deposit of a failed transfer; delivery is best effort
// and not re-verified.
func (a *accountActor) DepositAsync(amount decimal.Decimal) {
	if err := a.act.Tell(func(acc *model.Account) {
		*acc = acc.WithBalance(acc.Balance.Add(amount))
		a.log.Infof("Compensating deposit of %s applied to account %d, balance %s", amount, acc.AccountID, acc.Balance)
	}); err != nil {
		a.log.Errorf("Compensating deposit of %s lost: %v", amount, err)
	}
}

// Stop terminates the actor. The registry removes the handle before calling
// this, so no new requests can reach the account.
func (a *accountActor) Stop() {
	a.act.Stop()
}
