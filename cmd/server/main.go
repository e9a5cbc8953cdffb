package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cinelog/cinelog/internal/config"
	httpserver "github.com/cinelog/cinelog/internal/http"
	"github.com/cinelog/cinelog/internal/ingest"
	"github.com/cinelog/cinelog/internal/repository"
	"github.com/cinelog/cinelog/internal/store"
	"github.com/cinelog/cinelog/internal/tmdb"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.New(os.Stdout, "[cinelog] ", log.LstdFlags|log.Lshortfile)

	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	storeOpts := store.Options{
		MaxConns:               int32(cfg.DBMaxConns),
		MinConns:               int32(cfg.DBMinConns),
		MaxConnIdleTime:        time.Duration(cfg.DBMaxIdleSecs) * time.Second,
		MaxConnLifetime:        time.Duration(cfg.DBMaxLifeSecs) * time.Second,
		ConnTimeout:            time.Duration(cfg.DBConnTimeout) * time.Second,
		StatementCacheCapacity: cfg.DBStatementCache,
		Logger:                 logger,
	}

	st, err := store.New(dbCtx, cfg.DBURL, storeOpts)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer st.Close()

	catalogClient, err := tmdb.NewHTTPClient(cfg.TMDBURL, cfg.TMDBAPIKey, time.Duration(cfg.TMDBTimeoutSecs)*time.Second, logger)
	if err != nil {
		log.Fatalf("init catalog client: %v", err)
	}

	repo := repository.New(st)

	// Startup ingestion is an explicit pipeline run, not an import-time side
	// effect; a failed run leaves the API serving whatever is already stored.
	if cfg.IngestOnStart {
		pipeline := ingest.New(catalogClient, repo.Movies, logger)
		ingestCtx, ingestCancel := context.WithTimeout(ctx, 30*time.Second)
		result, err := pipeline.Run(ingestCtx, cfg.IngestPage)
		ingestCancel()
		if err != nil {
			logger.Printf("startup ingestion failed: %v", err)
		} else {
			logger.Printf("startup ingestion: inserted=%d skipped=%d failed=%d",
				result.Inserted, result.Skipped, result.Failed)
		}
	}

	server := httpserver.New(cfg, st, repo, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			log.Printf("server error: %v", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("graceful shutdown error: %v", err)
	}
}
