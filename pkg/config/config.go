// Package config centralizes the server configuration. Values come
// from environment variables, with .env support for development; the
// command-line flags in cmd override them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every tunable of the staffdir server.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	CORS   CORSConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string
}

// StoreConfig holds the record-store and persistence settings.
type StoreConfig struct {
	DataFile string
	Format   string // "json" or "binary"
	Debounce time.Duration
}

// CORSConfig holds the browser-origin allow list.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load builds a Config from the environment. A .env file is loaded
// first when present; in production real environment variables are
// used.
func Load() (*Config, error) {
	_ = godotenv.Load()

	debounceMS, err := strconv.Atoi(getEnv("STAFFDIR_DEBOUNCE_MS", "250"))
	if err != nil {
		return nil, fmt.Errorf("invalid STAFFDIR_DEBOUNCE_MS: %w", err)
	}
	if debounceMS < 1 {
		return nil, fmt.Errorf("STAFFDIR_DEBOUNCE_MS must be positive, got %d", debounceMS)
	}

	format := getEnv("STAFFDIR_STORE_FORMAT", "json")
	switch format {
	case "json", "binary":
	default:
		return nil, fmt.Errorf("invalid STAFFDIR_STORE_FORMAT: %q (want json or binary)", format)
	}

	return &Config{
		Server: ServerConfig{
			Addr: getEnv("STAFFDIR_ADDR", ":8080"),
		},
		Store: StoreConfig{
			DataFile: getEnv("STAFFDIR_DATA_FILE", "staffdir_data.sdir"),
			Format:   format,
			Debounce: time.Duration(debounceMS) * time.Millisecond,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("STAFFDIR_ALLOWED_ORIGINS", "http://localhost:5173")),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
