package interfaces

import (
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type MockCategoryService struct {
	Categories []domain.Category
	Err        error

	SeededUserID string
	SeedCalls    int
}

func (m *MockCategoryService) CreateCategory(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	category.ID = "generated-id"
	if err := category.Validate(); err != nil {
		return err
	}
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var owned []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			owned = append(owned, category)
		}
	}
	return owned, nil
}

func (m *MockCategoryService) UpdateCategory(id, userID string, patch application.CategoryPatch) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == id && m.Categories[i].UserID == userID {
			category := m.Categories[i]
			if patch.Name != nil {
				category.Name = *patch.Name
			}
			return &category, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockCategoryService) DeleteCategory(id, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == id && m.Categories[i].UserID == userID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockCategoryService) SeedDefaultCategories(userID string) error {
	if m.Err != nil {
		return m.Err
	}
	m.SeededUserID = userID
	m.SeedCalls++
	return nil
}
