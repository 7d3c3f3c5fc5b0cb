package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trimly/permissions"
	"trimly/shared/constant"
)

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	t.Run("listed route returns its roles", func(t *testing.T) {
		p := data.FindPermissions("/v1/barber/stats", http.MethodGet)

		assert.Equal(t, []string{constant.RoleOwner}, p.Permissions)
		assert.False(t, p.Skip)
	})

	t.Run("public route is marked skip", func(t *testing.T) {
		p := data.FindPermissions("/v1/auth/login", http.MethodPost)

		assert.True(t, p.Skip)
	})

	t.Run("unlisted route gets the zero permission", func(t *testing.T) {
		p := data.FindPermissions("/v1/does-not-exist", http.MethodGet)

		assert.Empty(t, p.Permissions)
		assert.False(t, p.Skip)
	})

	t.Run("method is part of the match", func(t *testing.T) {
		p := data.FindPermissions("/v1/barber/stats", http.MethodDelete)

		assert.Empty(t, p.Permissions)
	})
}
