package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL        = "http://localhost:8000"
	DefaultLoginPath     = "/api/v1/dj-rest-auth/login/"
	DefaultRegisterPath  = "/api/v1/dj-rest-auth/registration/"
	DefaultPostLoginPath = "/api/v1/"
	DefaultCSRFCookie    = "csrftoken"

	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

// Config holds all configuration for the client.
type Config struct {
	APIURL        string
	LoginPath     string
	RegisterPath  string
	PostLoginPath string
	CSRFCookie    string
	CSRFToken     string
	DataDir       string
	TokenStore    string
	HTTPTimeout   time.Duration
}

// New loads an optional .env file and then reads configuration from the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromLookup(os.Getenv)
}

// FromLookup builds a Config from a getenv-style function, applying defaults.
func FromLookup(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		APIURL:        strings.TrimRight(valueOr(getenv("CHAT_API_URL"), DefaultAPIURL), "/"),
		LoginPath:     valueOr(getenv("CHAT_LOGIN_PATH"), DefaultLoginPath),
		RegisterPath:  valueOr(getenv("CHAT_REGISTER_PATH"), DefaultRegisterPath),
		PostLoginPath: valueOr(getenv("CHAT_POST_LOGIN_PATH"), DefaultPostLoginPath),
		CSRFCookie:    valueOr(getenv("CHAT_CSRF_COOKIE"), DefaultCSRFCookie),
		CSRFToken:     getenv("CHAT_CSRF_TOKEN"),
		DataDir:       getenv("CHAT_DATA_DIR"),
		TokenStore:    valueOr(getenv("CHAT_TOKEN_STORE"), StoreSQLite),
	}

	if raw := getenv("CHAT_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CHAT_HTTP_TIMEOUT %q: %w", raw, err)
		}
		cfg.HTTPTimeout = d
	}

	if cfg.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(homeDir, ".chat-client")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration values that cannot work.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("CHAT_API_URL must be an http(s) URL, got %q", c.APIURL)
	}
	switch c.TokenStore {
	case StoreSQLite, StoreFile:
	default:
		return fmt.Errorf("unknown CHAT_TOKEN_STORE %q (want %q or %q)", c.TokenStore, StoreSQLite, StoreFile)
	}
	return nil
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
