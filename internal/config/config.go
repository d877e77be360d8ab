// Package config loads application configuration from environment
// variables. A .env file is honored when present so local setups
// do not have to export everything by hand.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field
// corresponds to an environment variable. Both applications share
// the same shape; they differ only in which port they run on.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	APIBaseURL     string        // remote backend base URL, no trailing slash
	JWTSecret      string        // secret used to sign session cookies
	SessionTTLMin  int           // session time-to-live in minutes
	BackendTimeout time.Duration // per-request timeout against the backend
}

// Load reads configuration from the environment. Required
// variables are enforced by must() and missing values cause the
// program to exit with a fatal log message.
func Load() Config {
	// best effort; a missing .env file is not an error
	_ = godotenv.Load()

	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		APIBaseURL:     must("API_BASE_URL"),
		JWTSecret:      must("JWT_SECRET"),
		SessionTTLMin:  mustInt("SESSION_TTL_MIN"),
		BackendTimeout: parseDur(getenv("BACKEND_TIMEOUT", "15s")),
	}
}

// SessionTTL returns the session lifetime as a duration.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMin) * time.Minute
}

// must retrieves the value of a required environment variable. If
// the variable is unset or empty, the application logs a fatal
// error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an
// integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
