package out

import (
	"context"

	"chargestation/internal/account/domain"
)

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, u *domain.User) error

	// FindByUsername returns nil, nil when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindByEmail returns nil, nil when no user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
