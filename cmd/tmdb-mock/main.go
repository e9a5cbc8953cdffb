package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
)

type movieEntry struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
}

type pagePayload struct {
	Page    int          `json:"page"`
	Results []movieEntry `json:"results"`
}

func main() {
	var (
		port = flag.String("port", "9098", "port to listen on")
		data = flag.String("data", "mock-nowplaying.json", "path to mock data file")
	)
	flag.Parse()

	file, err := os.ReadFile(*data)
	if err != nil {
		log.Fatalf("read mock data: %v", err)
	}

	var entries []movieEntry
	if err := json.Unmarshal(file, &entries); err != nil {
		log.Fatalf("parse mock data: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/movie/now_playing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		payload := pagePayload{Page: 1, Results: entries}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	addr := ":" + *port
	log.Printf("mock tmdb listening on %s (%d entries)", addr, len(entries))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
