package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from the environment with
// an optional .env file for development.
type Config struct {
	Port           string
	StorageBackend string // "sqlite" or "memory"
	DBPath         string
	LogLevel       string
	SessionTTL     time.Duration
	JWTSecret      string
	// DevPasswordHash is a bcrypt hash gating the development login
	// endpoint. Empty means any identity is accepted.
	DevPasswordHash string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("KINNREN_PORT", "8080"),
		StorageBackend:  getEnv("KINNREN_STORAGE", "sqlite"),
		DBPath:          getEnv("KINNREN_DB_PATH", "./data/kinnren.db"),
		LogLevel:        getEnv("KINNREN_LOG_LEVEL", "info"),
		JWTSecret:       os.Getenv("KINNREN_JWT_SECRET"),
		DevPasswordHash: os.Getenv("KINNREN_DEV_PASSWORD_HASH"),
	}

	switch cfg.StorageBackend {
	case "sqlite", "memory":
	default:
		return nil, fmt.Errorf("invalid KINNREN_STORAGE %q: must be sqlite or memory", cfg.StorageBackend)
	}

	ttlHours, err := strconv.Atoi(getEnv("KINNREN_SESSION_TTL_HOURS", "168"))
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("invalid KINNREN_SESSION_TTL_HOURS: %q", os.Getenv("KINNREN_SESSION_TTL_HOURS"))
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
