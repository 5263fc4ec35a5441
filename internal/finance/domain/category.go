package domain

import (
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.NewValidationError("Name is required")
	}
	if len(c.Name) > 100 {
		return errors.NewValidationError("Name must be of length less than 100")
	}
	if !IsValidTransactionType(c.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if c.Icon == "" {
		return errors.NewValidationError("Icon is required")
	}
	if c.Color == "" {
		return errors.NewValidationError("Color is required")
	}
	return nil
}

// DefaultCategory is one entry of the fixed catalog the product ships with.
type DefaultCategory struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DefaultCategories is the reference catalog used for seeding and for the
// per-category analytics breakdown.
var DefaultCategories = []DefaultCategory{
	{Name: "Зарплата", Type: TransactionTypeIncome, Icon: "💰", Color: "chart-2"},
	{Name: "Фриланс", Type: TransactionTypeIncome, Icon: "💻", Color: "chart-2"},
	{Name: "Инвестиции", Type: TransactionTypeIncome, Icon: "📈", Color: "chart-2"},
	{Name: "Продукты", Type: TransactionTypeExpense, Icon: "🛒", Color: "chart-3"},
	{Name: "Транспорт", Type: TransactionTypeExpense, Icon: "🚗", Color: "chart-3"},
	{Name: "Развлечения", Type: TransactionTypeExpense, Icon: "🎮", Color: "chart-3"},
	{Name: "Здоровье", Type: TransactionTypeExpense, Icon: "🏥", Color: "chart-3"},
	{Name: "Образование", Type: TransactionTypeExpense, Icon: "📚", Color: "chart-3"},
}

type CategoryRepository interface {
	Create(category *Category) error
	FindAllByOwner(ownerID string) ([]Category, error)
	FindOneByOwner(id, ownerID string) (*Category, error)
	FindByNameAndType(name, categoryType, ownerID string) (*Category, error)
	UpdateByOwner(category *Category, ownerID string) error
	RemoveByOwner(id, ownerID string) error
}
