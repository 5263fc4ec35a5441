package infrastructure

import (
	"database/sql"
	"fmt"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

var transactionMapper = EntityMapper[domain.Transaction]{
	Table: "transactions",
	Columns: []string{
		"id", "user_id", "type", "amount", "category", "description", "date", "created_at", "updated_at",
	},
	ScanRow: func(s rowScanner) (domain.Transaction, error) {
		var t domain.Transaction
		err := s.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.Date, &t.CreatedAt, &t.UpdatedAt)
		return t, err
	},
	InsertColumns: []string{"id", "user_id", "type", "amount", "category", "description", "date"},
	InsertValues: func(t *domain.Transaction) []any {
		return []any{t.ID, t.UserID, t.Type, t.Amount, t.Category, t.Description, t.Date}
	},
	UpdateColumns: []string{"type", "amount", "category", "description", "date"},
	UpdateValues: func(t *domain.Transaction) []any {
		return []any{t.Type, t.Amount, t.Category, t.Description, t.Date}
	},
	OrderBy: "created_at DESC",
}

type TransactionRepository struct {
	db *sql.DB
	*OwnedRepository[domain.Transaction]
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		OwnedRepository: NewOwnedRepository(db, transactionMapper),
	}
}

func (r *TransactionRepository) UpdateByOwner(transaction *domain.Transaction, ownerID string) error {
	return r.OwnedRepository.UpdateByOwner(transaction, transaction.ID, ownerID)
}

// ReplaceAllForOwner deletes every transaction owned by ownerID and inserts
// the supplied list, all inside a single database transaction so a failure
// mid-insert leaves the previous set intact.
func (r *TransactionRepository) ReplaceAllForOwner(ownerID string, transactions []*domain.Transaction) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin sync transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM transactions WHERE user_id = $1`, ownerID); err != nil {
		return fmt.Errorf("could not clear transactions: %v", err)
	}

	for _, transaction := range transactions {
		_, err := tx.Exec(
			`INSERT INTO transactions (id, user_id, type, amount, category, description, date)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			transaction.ID, transaction.UserID, transaction.Type, transaction.Amount,
			transaction.Category, transaction.Description, transaction.Date,
		)
		if err != nil {
			return fmt.Errorf("could not insert synced transaction: %v", err)
		}
	}

	return tx.Commit()
}
