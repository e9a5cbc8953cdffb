package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port             string
	DBURL            string
	TMDBURL          string
	TMDBAPIKey       string
	TMDBTimeoutSecs  int
	IngestOnStart    bool
	IngestPage       int
	ReadTimeoutSecs  int
	WriteTimeoutSecs int
	IdleTimeoutSecs  int
	DBMaxConns       int
	DBMinConns       int
	DBMaxIdleSecs    int
	DBMaxLifeSecs    int
	DBConnTimeout    int
	DBStatementCache int
}

// Load reads configuration from environment variables, applying defaults and
// validation. A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		DBURL:            os.Getenv("DB_URL"),
		TMDBURL:          getEnv("TMDB_URL", "https://api.themoviedb.org/3"),
		TMDBAPIKey:       os.Getenv("TMDB_API_KEY"),
		TMDBTimeoutSecs:  getEnvInt("TMDB_TIMEOUT_SECS", 5),
		IngestOnStart:    getEnvBool("INGEST_ON_START", true),
		IngestPage:       getEnvInt("INGEST_PAGE", 1),
		ReadTimeoutSecs:  getEnvInt("SERVER_READ_TIMEOUT", 15),
		WriteTimeoutSecs: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
		IdleTimeoutSecs:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 20),
		DBMinConns:       getEnvInt("DB_MIN_CONNS", 2),
		DBMaxIdleSecs:    getEnvInt("DB_MAX_CONN_IDLE_SECS", 300),
		DBMaxLifeSecs:    getEnvInt("DB_MAX_CONN_LIFETIME_SECS", 3600),
		DBConnTimeout:    getEnvInt("DB_CONN_TIMEOUT_SECS", 10),
		DBStatementCache: getEnvInt("DB_STATEMENT_CACHE_CAPACITY", 256),
	}

	if cfg.DBURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required")
	}
	if cfg.TMDBAPIKey == "" {
		return Config{}, fmt.Errorf("TMDB_API_KEY is required")
	}
	if cfg.TMDBTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("TMDB_TIMEOUT_SECS must be positive")
	}
	if cfg.IngestPage <= 0 {
		return Config{}, fmt.Errorf("INGEST_PAGE must be positive")
	}
	if cfg.DBMaxConns <= 0 {
		return Config{}, fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if cfg.DBMinConns < 0 {
		return Config{}, fmt.Errorf("DB_MIN_CONNS must be non-negative")
	}
	if cfg.DBMinConns > cfg.DBMaxConns {
		return Config{}, fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
	}
	if cfg.DBStatementCache < 0 {
		return Config{}, fmt.Errorf("DB_STATEMENT_CACHE_CAPACITY must be non-negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}
