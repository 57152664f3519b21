package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/yuvaraajk/money-transfer-app/internal/model"
)

// CustomerService is the part of the customer registry the HTTP boundary needs.
type CustomerService interface {
	CreateCustomer(name string) (model.Customer, error)
	GetCustomer(id int64) (model.Customer, error)
	DeleteCustomer(id int64) error
}

type CustomerHandler struct {
	service CustomerService
}

func NewCustomerHandler(service CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		sendErrorResponse(w, "Name can not be empty", http.StatusBadRequest)
		return
	}

	customer, err := h.service.CreateCustomer(req.Name)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccessResponse(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		sendErrorResponse(w, "Invalid customer id", http.StatusBadRequest)
		return
	}

	customer, err := h.service.GetCustomer(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccessResponse(w, http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		sendErrorResponse(w, "Invalid customer id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteCustomer(id); err != nil {
		sendServiceError(w, err)
		return
	}
	sendSuccessResponse(w, http.StatusOK, map[string]int64{"id": id})
}
