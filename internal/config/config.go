// Package config loads runtime configuration from the environment. A .env
// file in the working directory is honored when present.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// ErrMissingSecret is returned when no signing secret is configured. The
// secret must be supplied out of band; there is no default and the process
// must not start without one.
var ErrMissingSecret = errors.New("INKWELL_SECRET is required")

// Config holds everything the process needs at startup.
type Config struct {
	Addr       string
	DBPath     string
	Secret     []byte
	TokenTTL   time.Duration
	BcryptCost int
	LogLevel   string
}

// Load reads configuration from the environment, loading .env first when
// one exists.
func Load() (Config, error) {
	// Missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	cfg := Config{
		Addr:       env("INKWELL_ADDR", ":8080"),
		DBPath:     env("INKWELL_DB", "inkwell.db"),
		Secret:     []byte(os.Getenv("INKWELL_SECRET")),
		TokenTTL:   envDuration("INKWELL_TOKEN_TTL", 24*time.Hour),
		BcryptCost: envInt("INKWELL_BCRYPT_COST", bcrypt.DefaultCost),
		LogLevel:   env("INKWELL_LOG_LEVEL", "info"),
	}
	if len(cfg.Secret) == 0 {
		return Config{}, ErrMissingSecret
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
