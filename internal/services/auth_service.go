package services

import (
	"errors"
	"fmt"
	"strings"

	"janji/internal/models"
	"janji/internal/repositories"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// Credentials is the signup/login request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdate is a partial profile change. Nil fields are left untouched;
// an explicit empty paypal_handle clears the stored value.
type ProfileUpdate struct {
	PaypalHandle *string `json:"paypal_handle"`
	Password     *string `json:"password"`
}

// AuthService handles account creation, credential checks, and profile
// updates. Session establishment itself lives at the HTTP layer; this
// service only answers "who is this email".
type AuthService struct {
	userRepo repositories.UserRepository
	validate *validator.Validate
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		validate: newValidator(),
	}
}

// NormalizeEmail lower-cases and trims an email the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new user. The email is normalized before the
// uniqueness check, so "Alice@X.com" conflicts with "alice@x.com".
func (s *AuthService) Signup(creds Credentials) (*models.User, error) {
	creds.Email = NormalizeEmail(creds.Email)
	if err := checkRequired(s.validate, creds); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(creds.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    creds.Email,
		Password: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and returns the matching user. Unknown
// email and wrong password both map to ErrInvalidCredentials.
func (s *AuthService) Login(creds Credentials) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(NormalizeEmail(creds.Email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByEmail resolves the user behind a session email.
func (s *AuthService) GetByEmail(email string) (*models.User, error) {
	return s.userRepo.GetByEmail(NormalizeEmail(email))
}

// UpdateProfile applies a partial profile change for the session user.
// A supplied paypal_handle replaces the stored value, with empty string
// clearing it to null. A supplied password replaces the hash only when
// non-blank after trimming. With nothing recognized the current record
// comes back unchanged.
func (s *AuthService) UpdateProfile(email string, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	changed := false
	if update.PaypalHandle != nil {
		if handle := strings.TrimSpace(*update.PaypalHandle); handle == "" {
			user.PaypalHandle = nil
		} else {
			user.PaypalHandle = &handle
		}
		changed = true
	}
	if update.Password != nil {
		if password := strings.TrimSpace(*update.Password); password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password: %w", err)
			}
			user.Password = string(hash)
			changed = true
		}
	}
	if !changed {
		return user, nil
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
