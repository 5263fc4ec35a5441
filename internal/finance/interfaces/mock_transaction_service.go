package interfaces

import (
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// MockTransactionService backs handler tests by delegating the real
// validation rules and recording what was called.
type MockTransactionService struct {
	Transactions []domain.Transaction
	Err          error

	SyncedUserID       string
	SyncedTransactions []*domain.Transaction
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	transaction.ID = "generated-id"
	if err := transaction.Validate(); err != nil {
		return err
	}
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var owned []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			owned = append(owned, transaction)
		}
	}
	return owned, nil
}

func (m *MockTransactionService) GetTransaction(id, userID string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == id && m.Transactions[i].UserID == userID {
			transaction := m.Transactions[i]
			return &transaction, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockTransactionService) UpdateTransaction(id, userID string, patch application.TransactionPatch) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	transaction, err := m.GetTransaction(id, userID)
	if err != nil {
		return nil, err
	}
	if patch.Amount != nil {
		transaction.Amount = *patch.Amount
	}
	if patch.Description != nil {
		transaction.Description = *patch.Description
	}
	return transaction, nil
}

func (m *MockTransactionService) DeleteTransaction(id, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == id {
			if m.Transactions[i].UserID != userID {
				return financeErrors.ErrForbidden
			}
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionService) SyncTransactions(userID string, transactions []*domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	validationErrors := &financeErrors.ValidationErrors{}
	for i, transaction := range transactions {
		transaction.UserID = userID
		if err := transaction.Validate(); err != nil {
			validationErrors.Add(financeErrors.NewIndexedValidationError(i+1, err.Error()))
		}
	}
	if len(validationErrors.Errors) > 0 {
		return validationErrors
	}
	m.SyncedUserID = userID
	m.SyncedTransactions = transactions
	return nil
}
