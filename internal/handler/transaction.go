package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yuvaraajk/money-transfer-app/internal/model"
)

// TransactionService is the part of the orchestrator the HTTP boundary needs.
type TransactionService interface {
	Submit(txn model.Transaction) (model.TransferOutcome, error)
	SubmitCashDeposit(cd model.CashDeposit) (model.TransferOutcome, error)
	GetTransaction(id int64) (model.Transaction, error)
	DeleteTransaction(id int64) error
}

type TransactionHandler struct {
	service TransactionService
}

func NewTransactionHandler(service TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// SubmitTransaction accepts a transfer request. A rolled-back transfer is
// still a successfully recorded transaction, so both outcomes map to 201;
// the body carries the terminal record and, when rolled back, the reason.
func (h *TransactionHandler) SubmitTransaction(w http.ResponseWriter, r *http.Request) {
	var txn model.Transaction
	if err := json.NewDecoder(r.Body).Decode(&txn); err != nil {
		sendErrorResponse(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if txn.ID <= 0 {
		sendErrorResponse(w, "Id can not be null or less than zero", http.StatusBadRequest)
		return
	}
	if txn.Amount.IsNegative() {
		sendErrorResponse(w, "Amount can not be null or less than zero", http.StatusBadRequest)
		return
	}

	outcome, err := h.service.Submit(txn)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccessResponse(w, http.StatusCreated, outcome)
}

// SubmitCashDeposit accepts a single-account deposit request.
func (h *TransactionHandler) SubmitCashDeposit(w http.ResponseWriter, r *http.Request) {
	var cd model.CashDeposit
	if err := json.NewDecoder(r.Body).Decode(&cd); err != nil {
		sendErrorResponse(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if cd.ID <= 0 {
		sendErrorResponse(w, "Id can not be null or less than zero", http.StatusBadRequest)
		return
	}
	if cd.Amount.IsNegative() {
		sendErrorResponse(w, "Amount can not be null or less than zero", http.StatusBadRequest)
		return
	}

	outcome, err := h.service.SubmitCashDeposit(cd)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccessResponse(w, http.StatusCreated, outcome)
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		sendErrorResponse(w, "Invalid transaction id", http.StatusBadRequest)
		return
	}

	txn, err := h.service.GetTransaction(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccessResponse(w, http.StatusOK, txn)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		sendErrorResponse(w, "Invalid transaction id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteTransaction(id); err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccessResponse(w, http.StatusOK, map[string]int64{"id": id})
}
