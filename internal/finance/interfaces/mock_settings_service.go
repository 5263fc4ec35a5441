package interfaces

import (
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type MockSettingsService struct {
	Settings map[string]*domain.Settings
	Err      error
}

func (m *MockSettingsService) GetUserSettings(userID string) (*domain.Settings, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Settings == nil {
		m.Settings = make(map[string]*domain.Settings)
	}
	settings, exists := m.Settings[userID]
	if !exists {
		settings = &domain.Settings{
			ID:       "settings-" + userID,
			UserID:   userID,
			Currency: domain.DefaultCurrency,
		}
		m.Settings[userID] = settings
	}
	return settings, nil
}

func (m *MockSettingsService) UpdateUserSettings(userID string, patch application.SettingsPatch) (*domain.Settings, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	settings, err := m.GetUserSettings(userID)
	if err != nil {
		return nil, err
	}
	if patch.Currency != nil {
		if *patch.Currency == "" {
			return nil, financeErrors.NewValidationError("Currency must not be empty")
		}
		settings.Currency = *patch.Currency
	}
	if patch.BackendURL != nil {
		settings.BackendURL = patch.BackendURL
	}
	if patch.SyncEnabled != nil {
		settings.SyncEnabled = *patch.SyncEnabled
	}
	return settings, nil
}
