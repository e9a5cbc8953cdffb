// Package ingest merges externally-sourced catalog pages into local storage.
//
// A run is all-or-nothing at the page level: if the provider is unreachable
// or the page cannot be decoded, no writes are attempted. Once a page is in
// hand, the run is all-or-partial: a record that fails validation or
// persistence is counted and logged, and the loop moves on.
package ingest

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cinelog/cinelog/internal/repository"
	"github.com/cinelog/cinelog/internal/tmdb"
)

// Result summarizes one ingestion run.
type Result struct {
	Inserted int
	Skipped  int
	Failed   int
}

// Pipeline pulls catalog pages from a provider and merges them into the
// movies repository via its insert-if-absent upsert, making repeated runs
// over the same page idempotent.
type Pipeline struct {
	source tmdb.Client
	movies *repository.MoviesRepository
	logger *log.Logger
}

// New constructs a Pipeline.
func New(source tmdb.Client, movies *repository.MoviesRepository, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{source: source, movies: movies, logger: logger}
}

// Run fetches one provider page and merges each record into the store.
// Fetch or decode failures abort the run before any write. A bad record is
// counted against Failed and never aborts the batch.
func (p *Pipeline) Run(ctx context.Context, page int) (Result, error) {
	records, err := p.source.NowPlaying(ctx, page)
	if err != nil {
		return Result{}, fmt.Errorf("fetch now_playing page %d: %w", page, err)
	}

	var result Result
	for _, record := range records {
		if err := validateRecord(record); err != nil {
			result.Failed++
			p.logger.Printf("ingest: skipping record id=%d: %v", record.ID, err)
			continue
		}

		inserted, err := p.movies.Upsert(ctx, repository.MovieUpsertParams{
			ID:          record.ID,
			Title:       record.Title,
			ReleaseDate: record.ReleaseDate,
			Overview:    record.Overview,
		})
		if err != nil {
			result.Failed++
			p.logger.Printf("ingest: persist record id=%d: %v", record.ID, err)
			continue
		}
		if inserted {
			result.Inserted++
		} else {
			result.Skipped++
		}
	}

	p.logger.Printf("ingest: page %d done (inserted=%d, skipped=%d, failed=%d)",
		page, result.Inserted, result.Skipped, result.Failed)
	return result, nil
}

func validateRecord(record tmdb.Movie) error {
	if record.ID <= 0 {
		return fmt.Errorf("invalid id %d", record.ID)
	}
	if strings.TrimSpace(record.Title) == "" {
		return fmt.Errorf("empty title")
	}
	return nil
}
