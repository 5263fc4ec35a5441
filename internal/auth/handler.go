package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/user"
)

type Handler struct {
	authService Service
}

func NewHandler(authService Service) *Handler {
	return &Handler{
		authService: authService,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type authResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newUser, token, err := h.authService.Register(req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailAlreadyExists):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrNameLength),
			errors.Is(err, user.ErrPasswordLength):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Could not register user")
		}
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{
		ID:    newUser.ID,
		Email: newUser.Email,
		Name:  newUser.Name,
		Token: token,
	})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	existingUser, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, authResponse{
		ID:    existingUser.ID,
		Email: existingUser.Email,
		Name:  existingUser.Name,
		Token: token,
	})
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	existingUser, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, user.ErrUserNotFound.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, ErrInternalError.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"id":    existingUser.ID,
		"email": existingUser.Email,
		"name":  existingUser.Name,
	})
}
