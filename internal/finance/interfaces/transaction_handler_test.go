package interfaces

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/FinanceTracker/internal/auth"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

func authenticatedRequest(method, target string, body io.Reader, userID string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	ctx := context.WithValue(req.Context(), auth.ContextUserIDKey, userID)
	return req.WithContext(ctx)
}

func TestCreateTransaction_Success(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, err := json.Marshal(map[string]interface{}{
		"type":        "expense",
		"amount":      25.50,
		"category":    "Продукты",
		"description": "supermarket",
		"date":        "2024-03-15",
	})
	assert.NoError(t, err)

	req := authenticatedRequest(http.MethodPost, "/api/transactions", bytes.NewBuffer(body), "user-1")
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response domain.Transaction
	err = json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "generated-id", response.ID)
	assert.Equal(t, "user-1", response.UserID)
	assert.Equal(t, 25.50, response.Amount)
	assert.Equal(t, "Продукты", response.Category)
	assert.Len(t, service.Transactions, 1)
}

func TestCreateTransaction_WithoutIdentity(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	assert.Empty(t, service.Transactions)
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, err := json.Marshal(map[string]interface{}{
		"type":     "transfer",
		"amount":   25.50,
		"category": "Продукты",
		"date":     "2024-03-15",
	})
	assert.NoError(t, err)

	req := authenticatedRequest(http.MethodPost, "/api/transactions", bytes.NewBuffer(body), "user-1")
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err = json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "error", response["status"])
	assert.Equal(t, "Type must be 'income' or 'expense'", response["message"])
	assert.Equal(t, float64(http.StatusBadRequest), response["code"])
}

func TestGetUserTransactions_EmptyListIsJSONArray(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/transactions", nil, "user-1")
	w := httptest.NewRecorder()

	handler.GetUserTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	assert.NoError(t, err)
	assert.Equal(t, "[]\n", string(body))
}

func TestGetUserTransactions_OnlyOwnersRows(t *testing.T) {
	service := &MockTransactionService{
		Transactions: []domain.Transaction{
			{ID: "t-1", UserID: "user-1", Type: "expense", Amount: 10, Category: "Продукты", Date: domain.NewDate(2024, time.March, 1)},
			{ID: "t-2", UserID: "user-2", Type: "income", Amount: 500, Category: "Зарплата", Date: domain.NewDate(2024, time.March, 1)},
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/transactions", nil, "user-1")
	w := httptest.NewRecorder()

	handler.GetUserTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response []domain.Transaction
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "t-1", response[0].ID)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPatch, "/api/transactions/unknown", bytes.NewBufferString(`{"amount": 5}`), "user-1")
	req.SetPathValue("id", "unknown")
	w := httptest.NewRecorder()

	handler.UpdateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Resource not found", response["message"])
}

func TestUpdateTransaction_Success(t *testing.T) {
	service := &MockTransactionService{
		Transactions: []domain.Transaction{
			{ID: "t-1", UserID: "user-1", Type: "expense", Amount: 10, Category: "Продукты", Date: domain.NewDate(2024, time.March, 1)},
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPatch, "/api/transactions/t-1", bytes.NewBufferString(`{"amount": 42.5}`), "user-1")
	req.SetPathValue("id", "t-1")
	w := httptest.NewRecorder()

	handler.UpdateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response domain.Transaction
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, 42.5, response.Amount)
}

func TestDeleteTransaction_Success(t *testing.T) {
	service := &MockTransactionService{
		Transactions: []domain.Transaction{
			{ID: "t-1", UserID: "user-1", Type: "expense", Amount: 10, Category: "Продукты", Date: domain.NewDate(2024, time.March, 1)},
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodDelete, "/api/transactions/t-1", nil, "user-1")
	req.SetPathValue("id", "t-1")
	w := httptest.NewRecorder()

	handler.DeleteTransaction(w, req)

	assert.Equal(t, http.StatusNoContent, w.Result().StatusCode)
	assert.Empty(t, service.Transactions)
}

func TestDeleteTransaction_OtherUsersTransactionIsForbidden(t *testing.T) {
	service := &MockTransactionService{
		Transactions: []domain.Transaction{
			{ID: "t-1", UserID: "user-2", Type: "expense", Amount: 10, Category: "Продукты", Date: domain.NewDate(2024, time.March, 1)},
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodDelete, "/api/transactions/t-1", nil, "user-1")
	req.SetPathValue("id", "t-1")
	w := httptest.NewRecorder()

	handler.DeleteTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "error", response["status"])
	assert.Equal(t, "Resource belongs to another user", response["message"])
	assert.Len(t, service.Transactions, 1)
}

func TestSyncTransactions_Success(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, err := json.Marshal(map[string]interface{}{
		"transactions": []map[string]interface{}{
			{"type": "income", "amount": 100, "category": "Зарплата", "date": "2024-04-01"},
			{"type": "expense", "amount": 20, "category": "Продукты", "date": "2024-04-02"},
		},
	})
	assert.NoError(t, err)

	req := authenticatedRequest(http.MethodPost, "/api/transactions/sync", bytes.NewBuffer(body), "user-1")
	w := httptest.NewRecorder()

	handler.SyncTransactions(w, req)

	assert.Equal(t, http.StatusNoContent, w.Result().StatusCode)
	assert.Equal(t, "user-1", service.SyncedUserID)
	assert.Len(t, service.SyncedTransactions, 2)
}

func TestSyncTransactions_ValidationErrorsListed(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, err := json.Marshal(map[string]interface{}{
		"transactions": []map[string]interface{}{
			{"type": "expense", "amount": -10, "category": "Продукты", "date": "2024-04-01"},
			{"type": "income", "amount": 100, "category": "Зарплата", "date": "2024-04-02"},
			{"amount": 20, "category": "Продукты", "date": "2024-04-03"},
		},
	})
	assert.NoError(t, err)

	req := authenticatedRequest(http.MethodPost, "/api/transactions/sync", bytes.NewBuffer(body), "user-1")
	w := httptest.NewRecorder()

	handler.SyncTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err = json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Validation errors occurred", response["message"])

	errorMessages, ok := response["errors"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, errorMessages, 2)
	assert.Equal(t, "Validation error at transaction 1: Amount must be a positive value of at least 0.01", errorMessages[0])
	assert.Equal(t, "Validation error at transaction 3: Type must be 'income' or 'expense'", errorMessages[1])
	assert.Empty(t, service.SyncedTransactions)
}

func TestSyncTransactions_InvalidBody(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPost, "/api/transactions/sync", bytes.NewBufferString("not json"), "user-1")
	w := httptest.NewRecorder()

	handler.SyncTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid request body", response["message"])
}
