package domain

import "errors"

// Sentinel errors for the account domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates a user with the same username already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials indicates a failed login attempt. The message is
	// deliberately vague so callers cannot distinguish a missing user from a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidUsername indicates the username violates domain constraints.
	ErrInvalidUsername = errors.New("invalid username")
)
