package models

import (
	"fmt"
	"strings"
)

// Username is a value object representing a valid login name.
// Encapsulates validation rules: 3 <= len <= 64, lowercase letters,
// digits, dots, dashes, and underscores only.
type Username string

const (
	minUsernameLength = 3
	maxUsernameLength = 64
)

// NewUsername normalizes s (trims whitespace, lowercases) and validates it.
func NewUsername(s string) (Username, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < minUsernameLength {
		return "", fmt.Errorf("username must be at least %d characters", minUsernameLength)
	}
	if len(s) > maxUsernameLength {
		return "", fmt.Errorf("username must not exceed %d characters", maxUsernameLength)
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '_':
		default:
			return "", fmt.Errorf("username contains invalid character %q", r)
		}
	}
	return Username(s), nil
}

// String returns the underlying string value.
func (u Username) String() string {
	return string(u)
}
