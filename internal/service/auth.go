package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mzaleska/catalog/internal/apperrors"
	"github.com/mzaleska/catalog/internal/models"
	"github.com/mzaleska/catalog/internal/repository"
	"github.com/mzaleska/catalog/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// loginFailed is the single message for every login failure. Unknown
// email and wrong password must not be distinguishable by the caller.
const loginFailed = "Incorrect email or password"

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService implements account signup and login.
type AuthService struct {
	repo UserRepository
}

// NewAuthService constructs an AuthService using the provided repository.
func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Signup validates the fields, hashes the password, and persists a new
// account. The admin flag is always stored as false: there is no
// self-service admin provisioning.
func (s *AuthService) Signup(ctx context.Context, name, surname, email, password string) (*models.User, error) {
	if name == "" || surname == "" || email == "" || password == "" {
		return nil, apperrors.Validation("You have to properly fill in all the fields")
	}
	if !validation.ValidName(name) {
		return nil, apperrors.Validation("Name must not contain numbers and cannot be just spaces")
	}
	if !validation.ValidName(surname) {
		return nil, apperrors.Validation("Surname must not contain numbers and cannot be just spaces")
	}
	if !validation.ValidEmail(email) {
		return nil, apperrors.Validation("Email is not valid")
	}
	if !validation.StrongPassword(password) {
		return nil, apperrors.Validation("Password is not strong enough")
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Email already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Surname:      surname,
		Email:        email,
		PasswordHash: string(hash),
		Admin:        false,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// The unique index catches the race between the existence
		// check and the insert.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("Email already in use")
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns the account.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.Validation("You have to properly fill in all the fields")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Auth(loginFailed)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Auth(loginFailed)
	}
	return user, nil
}
