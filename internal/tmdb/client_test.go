package tmdb

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestNowPlaying_DecodesPage(t *testing.T) {
	var gotAuth, gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPage = r.URL.Query().Get("page")
		if r.URL.Path != "/movie/now_playing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
            "page": 2,
            "results": [
                {"id": 42, "title": "Title A", "release_date": "2024-01-01", "overview": "overview"},
                {"id": 43, "title": "Title B", "release_date": "2024-02-01", "overview": ""}
            ]
        }`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "token123", 2*time.Second, testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	records, err := client.NowPlaying(context.Background(), 2)
	if err != nil {
		t.Fatalf("NowPlaying: %v", err)
	}
	if gotAuth != "Bearer token123" {
		t.Fatalf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotPage != "2" {
		t.Fatalf("page param = %q, want 2", gotPage)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].ID != 42 || records[0].Title != "Title A" || records[0].ReleaseDate != "2024-01-01" {
		t.Fatalf("first record = %+v", records[0])
	}
}

func TestNowPlaying_UpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "bad-token", 2*time.Second, testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	_, err = client.NowPlaying(context.Background(), 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}

func TestNowPlaying_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before use

	client, err := NewHTTPClient(srv.URL, "token", 500*time.Millisecond, testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	_, err = client.NowPlaying(context.Background(), 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}

func TestNowPlaying_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page": 1, "results": [`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "token", 2*time.Second, testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	_, err = client.NowPlaying(context.Background(), 1)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("error = %v, want ErrMalformed", err)
	}
}

func TestNowPlaying_BasePathPreserved(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL+"/3", "token", 2*time.Second, testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	if _, err := client.NowPlaying(context.Background(), 1); err != nil {
		t.Fatalf("NowPlaying: %v", err)
	}
	if gotPath != "/3/movie/now_playing" {
		t.Fatalf("request path = %q, want /3/movie/now_playing", gotPath)
	}
}
