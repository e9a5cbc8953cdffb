package tmdb

import (
	"encoding/json"
	"testing"
)

func FuzzDecodePageResponse(f *testing.F) {
	seeds := []string{
		`{"page":1,"results":[{"id":42,"title":"Title A","release_date":"2024-01-01","overview":"x"}]}`,
		`{"page":1,"results":[]}`,
		`{"results":[{"id":-1,"title":""}]}`,
		`{}`,
		`[]`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		var payload pageResponse
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return
		}
		// Decoded records must round-trip without panicking regardless of
		// field contents; validation happens in the ingestion pipeline.
		for _, record := range payload.Results {
			_ = record.ID
			_ = record.Title
		}
	})
}
