package application

import (
	"errors"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type SettingsPatch struct {
	Currency    *string `json:"currency"`
	BackendURL  *string `json:"backendUrl"`
	SyncEnabled *bool   `json:"syncEnabled"`
}

type SettingsService struct {
	repo domain.SettingsRepository
}

func NewSettingsService(repo domain.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetUserSettings returns the user's settings row, lazily creating the
// default one on first access.
func (s *SettingsService) GetUserSettings(userID string) (*domain.Settings, error) {
	settings, err := s.repo.FindByOwner(userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, financeErrors.ErrNotFound) {
		return nil, err
	}
	return s.repo.CreateDefault(userID)
}

func (s *SettingsService) UpdateUserSettings(userID string, patch SettingsPatch) (*domain.Settings, error) {
	settings, err := s.GetUserSettings(userID)
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

	if err := s.repo.UpdateByOwner(settings, userID); err != nil {
		return nil, err
	}
	return settings, nil
}
