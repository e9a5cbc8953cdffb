package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinelog/cinelog/internal/domain"
)

// MoviesRepository provides persistence helpers for catalog entries.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

// MovieUpsertParams bundles the fields of an externally-sourced catalog
// record.
type MovieUpsertParams struct {
	ID          int64
	Title       string
	ReleaseDate string
	Overview    string
}

// Upsert inserts the movie row only if no row with that identifier exists
// and reports whether an insert occurred. An existing row is never
// overwritten; the conflict check is the primary key itself, so concurrent
// upserts of the same id resolve to exactly one insert.
func (r *MoviesRepository) Upsert(ctx context.Context, params MovieUpsertParams) (bool, error) {
	const query = `
        INSERT INTO movies (id, title, release_date, overview)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (id) DO NOTHING
    `

	tag, err := r.pool.Exec(ctx, query, params.ID, params.Title, params.ReleaseDate, params.Overview)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// List returns all movie rows. No ordering is guaranteed; an empty catalog
// yields an empty slice, not an error.
func (r *MoviesRepository) List(ctx context.Context) ([]domain.Movie, error) {
	const query = `
        SELECT id, title, release_date, overview
        FROM movies
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	for rows.Next() {
		var movie domain.Movie
		if err := rows.Scan(&movie.ID, &movie.Title, &movie.ReleaseDate, &movie.Overview); err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}
