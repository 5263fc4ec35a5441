package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/auth"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type TransactionServiceInterface interface {
	CreateTransaction(transaction *domain.Transaction) error
	GetUserTransactions(userID string) ([]domain.Transaction, error)
	GetTransaction(id, userID string) (*domain.Transaction, error)
	UpdateTransaction(id, userID string, patch application.TransactionPatch) (*domain.Transaction, error)
	DeleteTransaction(id, userID string) error
	SyncTransactions(userID string, transactions []*domain.Transaction) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// respondRepositoryError maps the shared repository sentinels onto HTTP
// statuses; anything unexpected becomes a 500 with a generic message.
func respondRepositoryError(respondError func(w http.ResponseWriter, status int, message string, errors ...[]string), w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, financeErrors.ErrNotFound):
		respondError(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, financeErrors.ErrForbidden):
		respondError(w, http.StatusForbidden, "Resource belongs to another user")
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Unexpected repository error: %v", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var transaction domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction.UserID = userID
	if err := h.service.CreateTransaction(&transaction); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Error during transaction creation: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, transaction)
}

func (h *TransactionHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.service.GetUserTransactions(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		h.respondError(w, http.StatusBadRequest, "Transaction id is required")
		return
	}

	var patch application.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.UpdateTransaction(id, userID, patch)
	if err != nil {
		respondRepositoryError(h.respondError, w, err, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		h.respondError(w, http.StatusBadRequest, "Transaction id is required")
		return
	}

	if err := h.service.DeleteTransaction(id, userID); err != nil {
		respondRepositoryError(h.respondError, w, err, "Failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TransactionHandler) SyncTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Transactions []*domain.Transaction `json:"transactions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SyncTransactions(userID, req.Transactions); err != nil {
		if financeErrors.IsValidationErrors(err) {
			var validationErrors *financeErrors.ValidationErrors
			errors.As(err, &validationErrors)
			errorMessages := make([]string, len(validationErrors.Errors))
			for i, vErr := range validationErrors.Errors {
				errorMessages[i] = vErr.Error()
			}
			h.respondError(w, http.StatusBadRequest, "Validation errors occurred", errorMessages)
			return
		}
		log.Printf("Error during transaction sync: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to sync transactions")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
