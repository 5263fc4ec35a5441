package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/auth"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type SettingsServiceInterface interface {
	GetUserSettings(userID string) (*domain.Settings, error)
	UpdateUserSettings(userID string, patch application.SettingsPatch) (*domain.Settings, error)
}

type SettingsHandler struct {
	service      SettingsServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewSettingsHandler(
	service SettingsServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *SettingsHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &SettingsHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// GetMySettings lazily creates the default row on first access, so the
// handler never returns 404 for an authenticated user.
func (h *SettingsHandler) GetMySettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	settings, err := h.service.GetUserSettings(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}

	h.respondJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateMySettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch application.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.service.UpdateUserSettings(userID, patch)
	if err != nil {
		respondRepositoryError(h.respondError, w, err, "Failed to update settings")
		return
	}

	h.respondJSON(w, http.StatusOK, settings)
}
