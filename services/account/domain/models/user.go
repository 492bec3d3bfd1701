package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the core aggregate for the account bounded context.
// PasswordHash is a bcrypt hash; the plaintext password never leaves the
// application service layer.
type User struct {
	ID           uuid.UUID
	Username     Username
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser constructs a valid User aggregate with generated ID and current timestamp.
func NewUser(username Username, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
