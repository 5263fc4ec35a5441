package infrastructure

import (
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// MockTransactionRepository is an in-memory stand-in with the same
// owner-scoped semantics as the real repository.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
}

func (m *MockTransactionRepository) Create(transaction *domain.Transaction) error {
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = transaction.CreatedAt
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindAllByOwner(ownerID string) ([]domain.Transaction, error) {
	var owned []domain.Transaction
	// Newest first, matching the real repository's ORDER BY created_at DESC.
	for i := len(m.Transactions) - 1; i >= 0; i-- {
		if m.Transactions[i].UserID == ownerID {
			owned = append(owned, m.Transactions[i])
		}
	}
	return owned, nil
}

func (m *MockTransactionRepository) FindOneByOwner(id, ownerID string) (*domain.Transaction, error) {
	for i := range m.Transactions {
		if m.Transactions[i].ID == id && m.Transactions[i].UserID == ownerID {
			transaction := m.Transactions[i]
			return &transaction, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockTransactionRepository) UpdateByOwner(transaction *domain.Transaction, ownerID string) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID {
			if m.Transactions[i].UserID != ownerID {
				return financeErrors.ErrForbidden
			}
			transaction.UpdatedAt = time.Now()
			m.Transactions[i] = *transaction
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionRepository) RemoveByOwner(id, ownerID string) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == id {
			if m.Transactions[i].UserID != ownerID {
				return financeErrors.ErrForbidden
			}
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionRepository) ReplaceAllForOwner(ownerID string, transactions []*domain.Transaction) error {
	var kept []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID != ownerID {
			kept = append(kept, transaction)
		}
	}
	for _, transaction := range transactions {
		transaction.CreatedAt = time.Now()
		transaction.UpdatedAt = transaction.CreatedAt
		kept = append(kept, *transaction)
	}
	m.Transactions = kept
	return nil
}
