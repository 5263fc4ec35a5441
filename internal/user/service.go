package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength    = 255
	minNameLength     = 3
	maxNameLength     = 255
	minPasswordLength = 6
	bcryptCost        = 12
)

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrNameLength         = fmt.Errorf("name must be between %d and %d characters", minNameLength, maxNameLength)
	ErrPasswordLength     = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal Server Error")
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Service interface {
	Register(email, name, password string) (*User, error)
	Authenticate(email, password string) (*User, error)
	GetUserByID(userID string) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	if len(email) > maxEmailLength {
		return ErrInvalidEmail
	}
	return nil
}

func (s *service) Register(email, name, password string) (*User, error) {
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}
	if len(name) < minNameLength || len(name) > maxNameLength {
		return nil, ErrNameLength
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordLength
	}

	if _, err := s.repo.getUserByEmail(email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %v", err)
	}

	newUser := &User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}
	if err := s.repo.createUser(newUser); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return newUser, nil
}

func (s *service) Authenticate(email, password string) (*User, error) {
	existingUser, err := s.repo.getUserByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return existingUser, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}
