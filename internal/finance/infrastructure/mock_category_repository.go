package infrastructure

import (
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type MockCategoryRepository struct {
	Categories []domain.Category
}

func (m *MockCategoryRepository) Create(category *domain.Category) error {
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindAllByOwner(ownerID string) ([]domain.Category, error) {
	var owned []domain.Category
	for _, category := range m.Categories {
		if category.UserID == ownerID {
			owned = append(owned, category)
		}
	}
	return owned, nil
}

func (m *MockCategoryRepository) FindOneByOwner(id, ownerID string) (*domain.Category, error) {
	for i := range m.Categories {
		if m.Categories[i].ID == id && m.Categories[i].UserID == ownerID {
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockCategoryRepository) FindByNameAndType(name, categoryType, ownerID string) (*domain.Category, error) {
	for i := range m.Categories {
		if m.Categories[i].Name == name && m.Categories[i].Type == categoryType && m.Categories[i].UserID == ownerID {
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockCategoryRepository) UpdateByOwner(category *domain.Category, ownerID string) error {
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			if m.Categories[i].UserID != ownerID {
				return financeErrors.ErrForbidden
			}
			category.UpdatedAt = time.Now()
			m.Categories[i] = *category
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockCategoryRepository) RemoveByOwner(id, ownerID string) error {
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			if m.Categories[i].UserID != ownerID {
				return financeErrors.ErrForbidden
			}
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}
