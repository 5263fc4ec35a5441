package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost/finance")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_MissingDBConnectionString(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_CONNECTION_STRING", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingDBConnInfo)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost/finance")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost/finance")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_ACCESS_TTL", "2h")
	t.Setenv("DB_MAX_OPEN_CONNS", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost/finance")
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
}
