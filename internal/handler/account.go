package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yuvaraajk/money-transfer-app/internal/model"
)

// AccountService is the part of the account registry the HTTP boundary needs.
type AccountService interface {
	CreateAccount(account model.Account) error
	GetAccount(id int64) (model.Account, error)
	DeleteAccount(id int64) error
}

type AccountHandler struct {
	service AccountService
}

func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var account model.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		sendErrorResponse(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if account.AccountID <= 0 {
		sendErrorResponse(w, "Account id must be positive", http.StatusBadRequest)
		return
	}
	if account.Balance.IsNegative() {
		sendErrorResponse(w, "Balance can not be less than zero", http.StatusBadRequest)
		return
	}

	if err := h.service.CreateAccount(account); err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccessResponse(w, http.StatusCreated, account)
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		sendErrorResponse(w, "Invalid account id", http.StatusBadRequest)
		return
	}

	account, err := h.service.GetAccount(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccessResponse(w, http.StatusOK, account)
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		sendErrorResponse(w, "Invalid account id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteAccount(id); err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccessResponse(w, http.StatusOK, map[string]int64{"accountId": id})
}
