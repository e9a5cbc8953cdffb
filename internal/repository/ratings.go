package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinelog/cinelog/internal/domain"
)

// RatingsRepository provides persistence helpers for rating submissions.
type RatingsRepository struct {
	pool *pgxpool.Pool
}

// RatingInsertParams captures the payload required to record a rating.
type RatingInsertParams struct {
	UserID  int64
	MovieID int64
	Value   float64
}

// Insert records a rating and returns the assigned identifier. Ratings are
// append-only and not deduplicated per (user, movie); the only integrity
// check is the schema's foreign key on user_id, surfaced as
// ErrConstraintViolation.
func (r *RatingsRepository) Insert(ctx context.Context, params RatingInsertParams) (int64, error) {
	const query = `
        INSERT INTO ratings (user_id, movie_id, rating)
        VALUES ($1,$2,$3)
        RETURNING id
    `

	var id int64
	err := r.pool.QueryRow(ctx, query, params.UserID, params.MovieID, params.Value).Scan(&id)
	if err != nil {
		if isIntegrityError(err, codeForeignKeyViolation) {
			return 0, ErrConstraintViolation
		}
		return 0, err
	}
	return id, nil
}

// ListByUser returns the (movie, value) pairs a user has submitted. A user
// with zero ratings yields ErrNotFound rather than an empty result; callers
// depend on that policy.
func (r *RatingsRepository) ListByUser(ctx context.Context, userID int64) ([]domain.UserRating, error) {
	const query = `
        SELECT movie_id, rating
        FROM ratings
        WHERE user_id = $1
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.UserRating
	for rows.Next() {
		var rating domain.UserRating
		if err := rows.Scan(&rating.MovieID, &rating.Value); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, ErrNotFound
	}
	return ratings, nil
}
