package config

import (
	"errors"
	"os"
)

// ErrMissingJWTSecret aborts startup: the process must refuse to run
// without a signing secret.
var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable is not set")

// Config holds process-wide configuration. It is loaded once at startup
// and treated as immutable read-only state afterwards.
type Config struct {
	AppPort     string
	AppEnv      string
	DatabaseDSN string

	// JWTSecret keys the token codec. Required.
	JWTSecret string
	// AESSecretKey keys the reversible field obfuscation.
	AESSecretKey string
}

// Load reads configuration from the environment. It fails when the signing
// secret is absent; every other value has a development default.
func Load() (*Config, error) {
	cfg := &Config{
		AppPort:      getEnv("PORT", "5000"),
		AppEnv:       getEnv("APP_ENV", "development"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "file:taskflow.db?_pragma=foreign_keys(1)"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AESSecretKey: getEnv("AES_SECRET_KEY", "default-aes-key-32-characters!!"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

// IsProduction reports whether secure-transport-only cookies apply.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
