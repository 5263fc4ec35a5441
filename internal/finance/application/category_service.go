package application

import (
	"errors"

	"github.com/google/uuid"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type CategoryPatch struct {
	Name  *string `json:"name"`
	Type  *string `json:"type"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) CreateCategory(category *domain.Category) error {
	category.ID = uuid.NewString()
	if err := category.Validate(); err != nil {
		return err
	}
	return s.repo.Create(category)
}

func (s *CategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	return s.repo.FindAllByOwner(userID)
}

func (s *CategoryService) UpdateCategory(id, userID string, patch CategoryPatch) (*domain.Category, error) {
	category, err := s.repo.FindOneByOwner(id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Type != nil {
		category.Type = *patch.Type
	}
	if patch.Icon != nil {
		category.Icon = *patch.Icon
	}
	if patch.Color != nil {
		category.Color = *patch.Color
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateByOwner(category, userID); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(id, userID string) error {
	return s.repo.RemoveByOwner(id, userID)
}

// SeedDefaultCategories ensures the fixed catalog exists for the user.
// Entries already present under their (name, type) key are skipped, so
// repeated calls never create duplicates.
func (s *CategoryService) SeedDefaultCategories(userID string) error {
	for _, entry := range domain.DefaultCategories {
		_, err := s.repo.FindByNameAndType(entry.Name, entry.Type, userID)
		if err == nil {
			continue
		}
		if !errors.Is(err, financeErrors.ErrNotFound) {
			return err
		}

		category := &domain.Category{
			ID:     uuid.NewString(),
			UserID: userID,
			Name:   entry.Name,
			Type:   entry.Type,
			Icon:   entry.Icon,
			Color:  entry.Color,
		}
		if err := s.repo.Create(category); err != nil {
			return err
		}
	}
	return nil
}
