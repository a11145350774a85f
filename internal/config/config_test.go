package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/taskflow/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("fails without a signing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrMissingJWTSecret)
	})

	t.Run("applies development defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "")
		t.Setenv("APP_ENV", "")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "5000", cfg.AppPort)
		assert.Equal(t, "development", cfg.AppEnv)
		assert.NotEmpty(t, cfg.DatabaseDSN)
		assert.NotEmpty(t, cfg.AESSecretKey)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "8080")
		t.Setenv("APP_ENV", "production")
		t.Setenv("DATABASE_DSN", "file:other.db")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "file:other.db", cfg.DatabaseDSN)
		assert.True(t, cfg.IsProduction())
	})
}
