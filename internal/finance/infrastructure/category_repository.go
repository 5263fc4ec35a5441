package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

var categoryMapper = EntityMapper[domain.Category]{
	Table: "categories",
	Columns: []string{
		"id", "user_id", "name", "type", "icon", "color", "created_at", "updated_at",
	},
	ScanRow: func(s rowScanner) (domain.Category, error) {
		var c domain.Category
		err := s.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Icon, &c.Color, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	},
	InsertColumns: []string{"id", "user_id", "name", "type", "icon", "color"},
	InsertValues: func(c *domain.Category) []any {
		return []any{c.ID, c.UserID, c.Name, c.Type, c.Icon, c.Color}
	},
	UpdateColumns: []string{"name", "type", "icon", "color"},
	UpdateValues: func(c *domain.Category) []any {
		return []any{c.Name, c.Type, c.Icon, c.Color}
	},
}

type CategoryRepository struct {
	db *sql.DB
	*OwnedRepository[domain.Category]
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{
		db:              db,
		OwnedRepository: NewOwnedRepository(db, categoryMapper),
	}
}

func (r *CategoryRepository) UpdateByOwner(category *domain.Category, ownerID string) error {
	return r.OwnedRepository.UpdateByOwner(category, category.ID, ownerID)
}

// FindByNameAndType looks up the natural dedup key used by seeding.
func (r *CategoryRepository) FindByNameAndType(name, categoryType, ownerID string) (*domain.Category, error) {
	query := `
		SELECT id, user_id, name, type, icon, color, created_at, updated_at
		FROM categories
		WHERE name = $1 AND type = $2 AND user_id = $3
	`
	category, err := categoryMapper.ScanRow(r.db.QueryRow(query, name, categoryType, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}
