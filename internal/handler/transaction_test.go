package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yuvaraajk/money-transfer-app/internal/handler"
	"github.com/yuvaraajk/money-transfer-app/internal/model"
)

// MockTransactionService implements handler.TransactionService
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Submit(txn model.Transaction) (model.TransferOutcome, error) {
	args := m.Called(txn)
	return args.Get(0).(model.TransferOutcome), args.Error(1)
}

func (m *MockTransactionService) SubmitCashDeposit(cd model.CashDeposit) (model.TransferOutcome, error) {
	args := m.Called(cd)
	return args.Get(0).(model.TransferOutcome), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(id int64) (model.Transaction, error) {
	args := m.Called(id)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func successOutcome(id int64) model.TransferOutcome {
	return model.TransferOutcome{
		Transaction: model.Transaction{
			ID:                   id,
			RemitterAccountID:    1,
			BeneficiaryAccountID: 2,
			Amount:               decimal.NewFromInt(1),
			Status:               model.StatusSuccess,
		},
	}
}

func TestTransactionHandler_Submit(t *testing.T) {
	mockService := new(MockTransactionService)
	mockService.On("Submit", mock.Anything).Return(successOutcome(1), nil)

	h := handler.NewTransactionHandler(mockService)

	body := []byte(`{"id": 1, "remitterAccountId": 1, "beneficiaryAccountId": 2, "amount": "1"}`)
	req := httptest.NewRequest("POST", "/transactions", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.SubmitTransaction(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Data model.TransferOutcome `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Data.RolledBack)
	assert.Equal(t, model.StatusSuccess, response.Data.Transaction.Status)
}

// A rolled-back transfer is still a recorded transaction: 201, FAIL status,
// reason in the body.
func TestTransactionHandler_Submit_RolledBack(t *testing.T) {
	outcome := model.TransferOutcome{
		Transaction: model.Transaction{
			ID:                   1,
			RemitterAccountID:    1,
			BeneficiaryAccountID: 2,
			Amount:               decimal.NewFromInt(1),
			Status:               model.StatusFail,
		},
		RolledBack: true,
		Reason:     "Insufficient balance to withdraw 1 from account 1",
	}
	mockService := new(MockTransactionService)
	mockService.On("Submit", mock.Anything).Return(outcome, nil)

	h := handler.NewTransactionHandler(mockService)

	body := []byte(`{"id": 1, "remitterAccountId": 1, "beneficiaryAccountId": 2, "amount": "1"}`)
	req := httptest.NewRequest("POST", "/transactions", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.SubmitTransaction(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Data model.TransferOutcome `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Data.RolledBack)
	assert.Equal(t, model.StatusFail, response.Data.Transaction.Status)
	assert.Equal(t, "Insufficient balance to withdraw 1 from account 1", response.Data.Reason)
}

func TestTransactionHandler_Submit_Duplicate(t *testing.T) {
	mockService := new(MockTransactionService)
	mockService.On("Submit", mock.Anything).
		Return(model.TransferOutcome{}, model.TransactionAlreadyProcessed(1))

	h := handler.NewTransactionHandler(mockService)

	body := []byte(`{"id": 1, "remitterAccountId": 1, "beneficiaryAccountId": 2, "amount": "1"}`)
	req := httptest.NewRequest("POST", "/transactions", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.SubmitTransaction(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Transaction 1 already been processed", decodeError(t, w.Body))
}

func TestTransactionHandler_Submit_Validation(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `{`},
		{name: "missing id", body: `{"remitterAccountId": 1, "beneficiaryAccountId": 2, "amount": "1"}`},
		{name: "negative id", body: `{"id": -1, "remitterAccountId": 1, "beneficiaryAccountId": 2, "amount": "1"}`},
		{name: "negative amount", body: `{"id": 1, "remitterAccountId": 1, "beneficiaryAccountId": 2, "amount": "-1"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockTransactionService)
			h := handler.NewTransactionHandler(mockService)

			req := httptest.NewRequest("POST", "/transactions", bytes.NewReader([]byte(tc.body)))
			w := httptest.NewRecorder()

			h.SubmitTransaction(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockService.AssertNotCalled(t, "Submit", mock.Anything)
		})
	}
}

func TestTransactionHandler_SubmitCashDeposit(t *testing.T) {
	mockService := new(MockTransactionService)
	mockService.On("SubmitCashDeposit", mock.Anything).Return(successOutcome(4), nil)

	h := handler.NewTransactionHandler(mockService)

	body := []byte(`{"id": 4, "accountNumber": 2, "amount": "25"}`)
	req := httptest.NewRequest("POST", "/transactions/deposit", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.SubmitCashDeposit(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertCalled(t, "SubmitCashDeposit", mock.MatchedBy(func(cd model.CashDeposit) bool {
		return cd.ID == 4 && cd.AccountNumber == 2 && cd.Amount.Equal(decimal.NewFromInt(25))
	}))
}

func TestTransactionHandler_Get(t *testing.T) {
	txn := model.Transaction{
		ID:                   1,
		RemitterAccountID:    1,
		BeneficiaryAccountID: 2,
		Amount:               decimal.NewFromInt(1),
		Status:               model.StatusSuccess,
	}
	mockService := new(MockTransactionService)
	mockService.On("GetTransaction", int64(1)).Return(txn, nil)

	h := handler.NewTransactionHandler(mockService)

	req := httptest.NewRequest("GET", "/transactions/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	h.GetTransaction(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data model.Transaction `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, model.StatusSuccess, response.Data.Status)
}

func TestTransactionHandler_Get_NotFound(t *testing.T) {
	mockService := new(MockTransactionService)
	mockService.On("GetTransaction", int64(8)).
		Return(model.Transaction{}, model.TransactionNotFound(8))

	h := handler.NewTransactionHandler(mockService)

	req := httptest.NewRequest("GET", "/transactions/8", nil)
	req.SetPathValue("id", "8")
	w := httptest.NewRecorder()

	h.GetTransaction(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Transaction 8 does not exist", decodeError(t, w.Body))
}

func TestTransactionHandler_Delete(t *testing.T) {
	mockService := new(MockTransactionService)
	mockService.On("DeleteTransaction", int64(1)).Return(nil)

	h := handler.NewTransactionHandler(mockService)

	req := httptest.NewRequest("DELETE", "/transactions/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	h.DeleteTransaction(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
