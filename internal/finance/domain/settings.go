package domain

import "time"

// DefaultCurrency is the currency assigned when a settings row is lazily
// created on first access.
const DefaultCurrency = "RUB"

type Settings struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Currency    string    `json:"currency"`
	BackendURL  *string   `json:"backendUrl,omitempty"`
	SyncEnabled bool      `json:"syncEnabled"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SettingsRepository interface {
	// FindByOwner returns the settings row for ownerID or ErrNotFound.
	FindByOwner(ownerID string) (*Settings, error)
	CreateDefault(ownerID string) (*Settings, error)
	UpdateByOwner(settings *Settings, ownerID string) error
}
