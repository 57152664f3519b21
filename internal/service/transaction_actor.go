package service

import (
	"fmt"
	"time"

	"github.com/yuvaraajk/money-transfer-app/internal/actor"
	"github.com/yuvaraajk/money-transfer-app/internal/model"
)

type transactionHandle interface {
	Read() (model.Transaction, error)
	SetStatus(status model.TransactionStatus) (model.Transaction, error)
	Stop()
}

// transactionActor owns one transaction record. Only the status field is ever
// mutated, and only once: NEW is the sole non-terminal status.
type transactionActor struct {
	act *actor.Actor[model.Transaction]
}

func newTransactionActor(txn model.Transaction, timeout time.Duration) *transactionActor {
	return &transactionActor{
		act: actor.Go(txn, actor.WithTimeout(timeout)),
	}
}

func (t *transactionActor) Read() (model.Transaction, error) {
	var snapshot model.Transaction
	if err := t.act.Do(func(txn *model.Transaction) {
		snapshot = *txn
	}); err != nil {
		return model.Transaction{}, model.AskFailure(err)
	}
	return snapshot, nil
}

// SetStatus transitions the record out of NEW and returns the updated value.
// A second transition is a logic error: the orchestrator issues exactly one.
func (t *transactionActor) SetStatus(status model.TransactionStatus) (model.Transaction, error) {
	var (
		updated model.Transaction
		opErr   error
	)
	err := t.act.Do(func(txn *model.Transaction) {
		if txn.Status.Terminal() {
			opErr = fmt.Errorf("transaction %d already terminal with status %s", txn.ID, txn.Status)
			return
		}
		*txn = txn.WithStatus(status)
		updated = *txn
	})
	if err != nil {
		return model.Transaction{}, model.AskFailure(err)
	}
	if opErr != nil {
		return model.Transaction{}, opErr
	}
	return updated, nil
}

func (t *transactionActor) Stop() {
	t.act.Stop()
}
