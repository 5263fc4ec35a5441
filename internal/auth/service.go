package auth

import (
	"errors"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	Register(email, name, password string) (*user.User, string, error)
	Login(email, password string) (*user.User, string, error)
	GetUser(userID string) (*user.User, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Register creates the user and immediately issues an access token, so the
// client is signed in right after registration.
func (s *service) Register(email, name, password string) (*user.User, string, error) {
	newUser, err := s.userService.Register(email, name, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtManager.GenerateAccessJWT(newUser.ID, newUser.Email, newUser.Name)
	if err != nil {
		return nil, "", ErrInternalError
	}

	return newUser, token, nil
}

func (s *service) Login(email, password string) (*user.User, string, error) {
	existingUser, err := s.userService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	token, err := s.jwtManager.GenerateAccessJWT(existingUser.ID, existingUser.Email, existingUser.Name)
	if err != nil {
		return nil, "", ErrInternalError
	}

	return existingUser, token, nil
}

func (s *service) GetUser(userID string) (*user.User, error) {
	return s.userService.GetUserByID(userID)
}
