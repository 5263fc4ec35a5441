package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/FinanceTracker/internal/config"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager(config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour})

	token, err := manager.GenerateAccessJWT("user-1", "jan@example.com", "Jan Kowalski")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jan@example.com", claims.Email)
	assert.Equal(t, "Jan Kowalski", claims.Name)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	issuer := NewJWTManager(config.JWTConfig{Secret: "issuer-secret", AccessTokenTTL: time.Hour})
	verifier := NewJWTManager(config.JWTConfig{Secret: "other-secret", AccessTokenTTL: time.Hour})

	token, err := issuer.GenerateAccessJWT("user-1", "jan@example.com", "Jan Kowalski")
	assert.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := NewJWTManager(config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Hour})

	token, err := manager.GenerateAccessJWT("user-1", "jan@example.com", "Jan Kowalski")
	assert.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredJWTToken)
}

func TestJWTManager_MalformedToken(t *testing.T) {
	manager := NewJWTManager(config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour})

	_, err := manager.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidJWTToken)

	_, err = manager.ValidateAccessToken("")
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}
