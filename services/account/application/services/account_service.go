package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	accountdomain "github.com/ghuser/shipstream/services/account/domain"
	"github.com/ghuser/shipstream/services/account/domain/models"
	"github.com/ghuser/shipstream/services/account/domain/repositories"
)

// AccountService orchestrates registration and credential verification.
// Passwords are hashed with bcrypt; the plaintext is never stored or logged.
type AccountService struct {
	repo repositories.UserRepository
}

// NewAccountService returns an AccountService wired with the given repository.
func NewAccountService(repo repositories.UserRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates a new user with a bcrypt-hashed password.
// Returns ErrInvalidUsername for malformed usernames and ErrUsernameTaken
// when the username is already registered.
func (s *AccountService) Register(ctx context.Context, username, password string) (*models.User, error) {
	name, err := models.NewUsername(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", accountdomain.ErrInvalidUsername, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.NewUser(name, string(hash))
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Authenticate verifies a username/password pair and returns the matching user.
// Returns ErrInvalidCredentials for both unknown usernames and wrong
// passwords so callers cannot probe which usernames exist.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	name, err := models.NewUsername(username)
	if err != nil {
		return nil, accountdomain.ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, name)
	if err != nil {
		if errors.Is(err, accountdomain.ErrUserNotFound) {
			return nil, accountdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, accountdomain.ErrInvalidCredentials
	}
	return user, nil
}

// GetByID retrieves a user by ID. Returns ErrUserNotFound if absent.
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
