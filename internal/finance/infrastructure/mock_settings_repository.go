package infrastructure

import (
	"time"

	"github.com/google/uuid"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type MockSettingsRepository struct {
	Settings []domain.Settings
}

func (m *MockSettingsRepository) FindByOwner(ownerID string) (*domain.Settings, error) {
	for i := range m.Settings {
		if m.Settings[i].UserID == ownerID {
			settings := m.Settings[i]
			return &settings, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockSettingsRepository) CreateDefault(ownerID string) (*domain.Settings, error) {
	if existing, err := m.FindByOwner(ownerID); err == nil {
		return existing, nil
	}
	settings := domain.Settings{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Currency:    domain.DefaultCurrency,
		SyncEnabled: false,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.Settings = append(m.Settings, settings)
	return &settings, nil
}

func (m *MockSettingsRepository) UpdateByOwner(settings *domain.Settings, ownerID string) error {
	for i := range m.Settings {
		if m.Settings[i].UserID == ownerID {
			settings.ID = m.Settings[i].ID
			settings.UserID = ownerID
			settings.CreatedAt = m.Settings[i].CreatedAt
			settings.UpdatedAt = time.Now()
			m.Settings[i] = *settings
			return nil
		}
	}
	return financeErrors.ErrNotFound
}
