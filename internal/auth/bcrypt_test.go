package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/taskflow/internal/auth"
)

func TestHashPassword(t *testing.T) {
	t.Run("hashes and verifies", func(t *testing.T) {
		hash, err := auth.HashPassword("secret1")
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		assert.NoError(t, auth.ComparePasswordAndHash("secret1", hash))
		assert.ErrorIs(t, auth.ComparePasswordAndHash("wrong", hash), auth.ErrMismatchedHashAndPassword)
	})

	t.Run("rejects empty passwords", func(t *testing.T) {
		_, err := auth.HashPassword("")
		assert.ErrorIs(t, err, auth.ErrNoEmptyString)
	})
}
