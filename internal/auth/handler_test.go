package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/FinanceTracker/internal/user"
)

type mockAuthService struct {
	registerUser *user.User
	registerErr  error
	loginUser    *user.User
	loginErr     error
	getUser      *user.User
	getUserErr   error
}

func (m *mockAuthService) Register(email, name, password string) (*user.User, string, error) {
	if m.registerErr != nil {
		return nil, "", m.registerErr
	}
	return m.registerUser, "access-token", nil
}

func (m *mockAuthService) Login(email, password string) (*user.User, string, error) {
	if m.loginErr != nil {
		return nil, "", m.loginErr
	}
	return m.loginUser, "access-token", nil
}

func (m *mockAuthService) GetUser(userID string) (*user.User, error) {
	return m.getUser, m.getUserErr
}

func (m *mockAuthService) JWTAccessTokenMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

func TestHandleRegister_Success(t *testing.T) {
	service := &mockAuthService{
		registerUser: &user.User{ID: "user-1", Email: "jan@example.com", Name: "Jan Kowalski"},
	}
	handler := NewHandler(service)

	body, err := json.Marshal(map[string]string{
		"email":    "jan@example.com",
		"name":     "Jan Kowalski",
		"password": "secret123",
	})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.HandleRegister(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]string
	err = json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", response["id"])
	assert.Equal(t, "jan@example.com", response["email"])
	assert.Equal(t, "Jan Kowalski", response["name"])
	assert.Equal(t, "access-token", response["token"])
}

func TestHandleRegister_EmailAlreadyExists(t *testing.T) {
	service := &mockAuthService{registerErr: user.ErrEmailAlreadyExists}
	handler := NewHandler(service)

	body, err := json.Marshal(map[string]string{
		"email":    "jan@example.com",
		"name":     "Jan Kowalski",
		"password": "secret123",
	})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.HandleRegister(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	var response map[string]interface{}
	err = json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "error", response["status"])
	assert.Equal(t, user.ErrEmailAlreadyExists.Error(), response["message"])
}

func TestHandleRegister_ValidationErrors(t *testing.T) {
	for _, serviceErr := range []error{user.ErrInvalidEmail, user.ErrNameLength, user.ErrPasswordLength} {
		service := &mockAuthService{registerErr: serviceErr}
		handler := NewHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(`{"email":"x","name":"y","password":"z"}`))
		w := httptest.NewRecorder()

		handler.HandleRegister(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	}
}

func TestHandleRegister_InvalidBody(t *testing.T) {
	handler := NewHandler(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("not json"))
	w := httptest.NewRecorder()

	handler.HandleRegister(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandleLogin_Success(t *testing.T) {
	service := &mockAuthService{
		loginUser: &user.User{ID: "user-1", Email: "jan@example.com", Name: "Jan Kowalski"},
	}
	handler := NewHandler(service)

	body, err := json.Marshal(map[string]string{
		"email":    "jan@example.com",
		"password": "secret123",
	})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.HandleLogin(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]string
	err = json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "access-token", response["token"])
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	service := &mockAuthService{loginErr: ErrInvalidCredentials}
	handler := NewHandler(service)

	body := bytes.NewBufferString(`{"email":"jan@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	w := httptest.NewRecorder()

	handler.HandleLogin(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid credentials", response["message"])
}

func TestHandleLogin_MissingFields(t *testing.T) {
	handler := NewHandler(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"email":"jan@example.com"}`))
	w := httptest.NewRecorder()

	handler.HandleLogin(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandleMe_Success(t *testing.T) {
	service := &mockAuthService{
		getUser: &user.User{ID: "user-1", Email: "jan@example.com", Name: "Jan Kowalski"},
	}
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	ctx := context.WithValue(req.Context(), ContextUserIDKey, "user-1")
	w := httptest.NewRecorder()

	handler.HandleMe(w, req.WithContext(ctx))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]string
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", response["id"])
	assert.Equal(t, "jan@example.com", response["email"])
	assert.Equal(t, "Jan Kowalski", response["name"])
}

func TestHandleMe_WithoutIdentity(t *testing.T) {
	handler := NewHandler(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()

	handler.HandleMe(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestHandleMe_UserDeletedSinceTokenIssued(t *testing.T) {
	handler := NewHandler(&mockAuthService{getUserErr: user.ErrUserNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	ctx := context.WithValue(req.Context(), ContextUserIDKey, "user-1")
	w := httptest.NewRecorder()

	handler.HandleMe(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}
