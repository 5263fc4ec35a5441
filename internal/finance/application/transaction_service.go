package application

import (
	"github.com/google/uuid"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// TransactionPatch carries the optional fields of a partial update. Nil
// means "leave unchanged".
type TransactionPatch struct {
	Type        *string      `json:"type"`
	Amount      *float64     `json:"amount"`
	Category    *string      `json:"category"`
	Description *string      `json:"description"`
	Date        *domain.Date `json:"date"`
}

type TransactionService struct {
	repo domain.TransactionRepository
}

func NewTransactionService(repo domain.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	transaction.ID = uuid.NewString()
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}
	return s.repo.Create(transaction)
}

func (s *TransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	return s.repo.FindAllByOwner(userID)
}

func (s *TransactionService) GetTransaction(id, userID string) (*domain.Transaction, error) {
	return s.repo.FindOneByOwner(id, userID)
}

func (s *TransactionService) UpdateTransaction(id, userID string, patch TransactionPatch) (*domain.Transaction, error) {
	transaction, err := s.repo.FindOneByOwner(id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil {
		transaction.Type = *patch.Type
	}
	if patch.Amount != nil {
		transaction.Amount = *patch.Amount
	}
	if patch.Category != nil {
		transaction.Category = *patch.Category
	}
	if patch.Description != nil {
		transaction.Description = *patch.Description
	}
	if patch.Date != nil {
		transaction.Date = *patch.Date
	}

	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateByOwner(transaction, userID); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(id, userID string) error {
	return s.repo.RemoveByOwner(id, userID)
}

// SyncTransactions replaces the user's whole transaction set with the
// supplied list. Every element is validated before any row is touched.
func (s *TransactionService) SyncTransactions(userID string, transactions []*domain.Transaction) error {
	validationErrors := &financeErrors.ValidationErrors{}
	for i, transaction := range transactions {
		transaction.ID = uuid.NewString()
		transaction.UserID = userID
		transaction.RoundToTwoDecimalPlaces()
		if err := transaction.Validate(); err != nil {
			validationErrors.Add(financeErrors.NewIndexedValidationError(i+1, err.Error()))
		}
	}
	if len(validationErrors.Errors) > 0 {
		return validationErrors
	}

	return s.repo.ReplaceAllForOwner(userID, transactions)
}
