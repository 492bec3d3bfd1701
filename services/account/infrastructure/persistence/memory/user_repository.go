// Package memory provides an in-memory UserRepository used by unit tests
// and local development without a database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	accountdomain "github.com/ghuser/shipstream/services/account/domain"
	"github.com/ghuser/shipstream/services/account/domain/models"
)

// UserRepository is a thread-safe in-memory implementation of
// repositories.UserRepository.
type UserRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*models.User
	byName map[models.Username]uuid.UUID
}

// NewUserRepository returns an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:   make(map[uuid.UUID]*models.User),
		byName: make(map[models.Username]uuid.UUID),
	}
}

func (r *UserRepository) Save(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[user.Username]; taken {
		return accountdomain.ErrUsernameTaken
	}
	cp := *user
	r.byID[user.ID] = &cp
	r.byName[user.Username] = user.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, accountdomain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username models.Username) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[username]
	if !ok {
		return nil, accountdomain.ErrUserNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}
