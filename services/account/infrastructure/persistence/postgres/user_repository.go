package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/shipstream/pkg/database"
	accountdomain "github.com/ghuser/shipstream/services/account/domain"
	"github.com/ghuser/shipstream/services/account/domain/models"
)

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given connection pool.
func NewUserRepository(database *database.Database) *UserRepository {
	return &UserRepository{db: database}
}

// Save persists a new User. Returns ErrUsernameTaken on unique constraint violations.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.DB().ExecContext(ctx, query,
		user.ID, user.Username.String(), user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return accountdomain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a User by ID. Returns ErrUserNotFound if absent.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = $1`

	return r.scanUser(r.db.DB().QueryRowContext(ctx, query, id))
}

// GetByUsername retrieves a User by its normalized username.
// Returns ErrUserNotFound if absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username models.Username) (*models.User, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1`

	return r.scanUser(r.db.DB().QueryRowContext(ctx, query, username.String()))
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var username string
	if err := row.Scan(&u.ID, &username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accountdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	u.Username = models.Username(username)
	return &u, nil
}
