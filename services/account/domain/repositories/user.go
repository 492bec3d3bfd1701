package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shipstream/services/account/domain/models"
)

// UserRepository abstracts persistence for the User aggregate.
// Implementations must return the account domain sentinel errors
// (ErrUserNotFound, ErrUsernameTaken) for the documented failure modes.
type UserRepository interface {
	// Save persists a new User. Returns ErrUsernameTaken if the username
	// is already registered.
	Save(ctx context.Context, user *models.User) error

	// GetByID retrieves a User by ID. Returns ErrUserNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetByUsername retrieves a User by its normalized username.
	// Returns ErrUserNotFound if absent.
	GetByUsername(ctx context.Context, username models.Username) (*models.User, error)
}
