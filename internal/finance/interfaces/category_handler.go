package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/auth"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type CategoryServiceInterface interface {
	CreateCategory(category *domain.Category) error
	GetUserCategories(userID string) ([]domain.Category, error)
	UpdateCategory(id, userID string, patch application.CategoryPatch) (*domain.Category, error)
	DeleteCategory(id, userID string) error
	SeedDefaultCategories(userID string) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category.UserID = userID
	if err := h.service.CreateCategory(&category); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Error during category creation: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) GetUserCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.GetUserCategories(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		h.respondError(w, http.StatusBadRequest, "Category id is required")
		return
	}

	var patch application.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(id, userID, patch)
	if err != nil {
		respondRepositoryError(h.respondError, w, err, "Failed to update category")
		return
	}

	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		h.respondError(w, http.StatusBadRequest, "Category id is required")
		return
	}

	if err := h.service.DeleteCategory(id, userID); err != nil {
		respondRepositoryError(h.respondError, w, err, "Failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SeedDefaultCategories is idempotent: repeat calls leave the catalog as is.
func (h *CategoryHandler) SeedDefaultCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.SeedDefaultCategories(userID); err != nil {
		log.Printf("Error during category seeding: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to seed categories")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
