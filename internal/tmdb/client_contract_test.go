package tmdb

import (
	"context"
	"io"
	"log"
	"os"
	"testing"
	"time"
)

// TestHTTPClientSmoke checks the client against a live endpoint (the real
// provider or cmd/tmdb-mock) when one is configured.
func TestHTTPClientSmoke(t *testing.T) {
	baseURL := os.Getenv("TMDB_URL")
	if baseURL == "" {
		t.Skip("TMDB_URL not provided")
	}
	token := os.Getenv("TMDB_API_KEY")
	client, err := NewHTTPClient(baseURL, token, 3*time.Second, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("create http client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	records, err := client.NowPlaying(ctx, 1)
	if err != nil {
		t.Fatalf("fetch now_playing: %v", err)
	}
	if len(records) == 0 {
		t.Fatalf("expected at least one record")
	}
	if records[0].ID <= 0 || records[0].Title == "" {
		t.Fatalf("unexpected record payload: %+v", records[0])
	}
}
