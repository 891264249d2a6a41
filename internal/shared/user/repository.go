package user

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when no user matches the username.
var ErrUserNotFound = errors.New("user not found")

// Repository is the read-only user lookup the vehicle service depends on.
// The vehicle service never mutates users.
type Repository interface {
	// FindByUsername returns ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*User, error)
}
