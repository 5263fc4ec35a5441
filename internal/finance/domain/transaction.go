package domain

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals as
// "YYYY-MM-DD" and maps to a SQL DATE column.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "null" || value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		// The web client sometimes sends full ISO timestamps during sync.
		// Keep the calendar day it names, whatever the offset.
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(value interface{}) error {
	t, ok := value.(time.Time)
	if !ok {
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	d.Time = t
	return nil
}

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}

type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        Date      `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *Transaction) RoundToTwoDecimalPlaces() {
	t.Amount = math.Round(t.Amount*100) / 100
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if t.Amount < 0.01 {
		return errors.NewValidationError("Amount must be a positive value of at least 0.01")
	}
	if t.Category == "" {
		return errors.NewValidationError("Category is required")
	}
	if len(t.Description) > 200 {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	if t.Date.IsZero() {
		return errors.NewValidationError("Date is required and must be a valid calendar date")
	}
	return nil
}

type TransactionRepository interface {
	Create(transaction *Transaction) error
	FindAllByOwner(ownerID string) ([]Transaction, error)
	FindOneByOwner(id, ownerID string) (*Transaction, error)
	UpdateByOwner(transaction *Transaction, ownerID string) error
	RemoveByOwner(id, ownerID string) error
	ReplaceAllForOwner(ownerID string, transactions []*Transaction) error
}
