package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// SettingsRepository is keyed by owner rather than by row id: the schema
// enforces exactly one settings row per user.
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func scanSettings(s rowScanner) (domain.Settings, error) {
	var settings domain.Settings
	err := s.Scan(&settings.ID, &settings.UserID, &settings.Currency, &settings.BackendURL,
		&settings.SyncEnabled, &settings.CreatedAt, &settings.UpdatedAt)
	return settings, err
}

func (r *SettingsRepository) FindByOwner(ownerID string) (*domain.Settings, error) {
	query := `
		SELECT id, user_id, currency, backend_url, sync_enabled, created_at, updated_at
		FROM settings
		WHERE user_id = $1
	`
	settings, err := scanSettings(r.db.QueryRow(query, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// CreateDefault inserts the default row for ownerID. The ON CONFLICT clause
// keeps a concurrent first access from creating a duplicate.
func (r *SettingsRepository) CreateDefault(ownerID string) (*domain.Settings, error) {
	query := `
		INSERT INTO settings (user_id, currency, sync_enabled)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(query, ownerID, domain.DefaultCurrency); err != nil {
		return nil, fmt.Errorf("could not create default settings: %v", err)
	}
	return r.FindByOwner(ownerID)
}

func (r *SettingsRepository) UpdateByOwner(settings *domain.Settings, ownerID string) error {
	query := `
		UPDATE settings
		SET currency = $1, backend_url = $2, sync_enabled = $3, updated_at = NOW()
		WHERE user_id = $4
		RETURNING id, user_id, currency, backend_url, sync_enabled, created_at, updated_at
	`
	stored, err := scanSettings(r.db.QueryRow(query, settings.Currency, settings.BackendURL, settings.SyncEnabled, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return financeErrors.ErrNotFound
		}
		return err
	}
	*settings = stored
	return nil
}
