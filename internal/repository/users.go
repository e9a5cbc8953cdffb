package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinelog/cinelog/internal/domain"
)

// UsersRepository provides persistence helpers for user accounts.
type UsersRepository struct {
	pool *pgxpool.Pool
}

// Create registers a new user and returns the stored entity. Uniqueness is
// enforced by the username constraint inside the INSERT itself; a duplicate
// returns ErrDuplicateUsername and leaves no partial row behind.
func (r *UsersRepository) Create(ctx context.Context, username string) (domain.User, error) {
	const query = `
        INSERT INTO users (username)
        VALUES ($1)
        RETURNING id
    `

	user := domain.User{Username: username}
	if err := r.pool.QueryRow(ctx, query, username).Scan(&user.ID); err != nil {
		if isIntegrityError(err, codeUniqueViolation) {
			return domain.User{}, ErrDuplicateUsername
		}
		return domain.User{}, err
	}
	return user, nil
}

// GetByID fetches a user by its identifier.
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	const query = `
        SELECT id, username
        FROM users
        WHERE id = $1
    `

	var user domain.User
	err := r.pool.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
