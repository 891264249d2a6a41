package repo

import (
	"context"
	"errors"
	"fmt"

	"chargestation/internal/account/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, first_name, last_name, date_of_birth, username, email_address, password_hash, role, is_blocked, is_confirmed, created_at, updated_at`

// UserPgRepository is the Postgres implementation of UserRepository.
type UserPgRepository struct {
	pool *pgxpool.Pool
}

func NewUserPgRepository(pool *pgxpool.Pool) *UserPgRepository {
	return &UserPgRepository{pool: pool}
}

func (r *UserPgRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		u.ID,
		u.FirstName,
		u.LastName,
		u.DateOfBirth,
		u.Username,
		u.EmailAddress,
		u.PasswordHash,
		u.Role,
		u.IsBlocked,
		u.IsConfirmed,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserPgRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserPgRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email_address = $1`, email)
}

// findOne treats absence as a nil result, not an error.
func (r *UserPgRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.DateOfBirth,
		&u.Username,
		&u.EmailAddress,
		&u.PasswordHash,
		&u.Role,
		&u.IsBlocked,
		&u.IsConfirmed,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &u, nil
}
