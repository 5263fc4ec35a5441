package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/sebuszqo/FinanceTracker/internal/config"
)

var (
	ErrInvalidJWTToken = errors.New("JWT token is invalid")
	ErrExpiredJWTToken = errors.New("JWT token is expired")
)

const defaultJWTDuration = 24 * time.Hour

type JWTManagerInterface interface {
	GenerateAccessJWT(userID, email, name string) (string, error)
	ValidateAccessToken(tokenString string) (*AccessTokenCustomClaims, error)
}

// AccessTokenCustomClaims carries the authenticated identity. Handlers read
// it from the request context after the middleware has verified the token.
type AccessTokenCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.StandardClaims
}

type JWTManager struct {
	secret   string
	duration time.Duration
}

func NewJWTManager(cfg config.JWTConfig) JWTManagerInterface {
	duration := cfg.AccessTokenTTL
	if duration == 0 {
		duration = defaultJWTDuration
	}
	return &JWTManager{
		secret:   cfg.Secret,
		duration: duration,
	}
}

func (j *JWTManager) GenerateAccessJWT(userID, email, name string) (string, error) {
	claims := &AccessTokenCustomClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(j.duration).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

func (j *JWTManager) ValidateAccessToken(tokenString string) (*AccessTokenCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessTokenCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidJWTToken
		}
		return []byte(j.secret), nil
	})

	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) {
			if validationErr.Errors&(jwt.ValidationErrorExpired) != 0 {
				return nil, ErrExpiredJWTToken
			}
		}
		return nil, ErrInvalidJWTToken
	}

	claims, ok := token.Claims.(*AccessTokenCustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidJWTToken
	}

	return claims, nil
}
