package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskflow/taskflow/internal/auth"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"user", "admin"} {
		role, ok := auth.ParseRole(valid)
		assert.True(t, ok)
		assert.True(t, role.IsValid())
	}

	for _, invalid := range []string{"", "owner", "Admin", "USER", "superuser"} {
		_, ok := auth.ParseRole(invalid)
		assert.Falsef(t, ok, "role %q should be rejected", invalid)
	}
}

func TestAllRoles(t *testing.T) {
	assert.Equal(t, []auth.Role{auth.RoleUser, auth.RoleAdmin}, auth.AllRoles())
}
