package password_test

import (
	"strings"
	"testing"
	"trimly/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "validPassword123"},
		{name: "special characters", password: "P@ssw0rd!#$%^&*()"},
		{name: "unicode password", password: "пароль123"},
		{name: "72 bytes is the bcrypt ceiling", password: strings.Repeat("a", 72)},
		{name: "empty password", password: "", wantErr: true},
		{name: "over 72 bytes", password: strings.Repeat("a", 100), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2"))
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	validHash, err := password.Hash("testPassword123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "correct password", password: "testPassword123", hash: validHash},
		{name: "wrong password", password: "wrongPassword", hash: validHash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: validHash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "testPassword123", hash: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}

	t.Run("malformed hash is not reported as a wrong password", func(t *testing.T) {
		err := password.Verify("testPassword123", "not-a-bcrypt-hash")

		require.Error(t, err)
		assert.NotErrorIs(t, err, password.ErrInvalidPassword)
	})
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("samePassword")
	require.NoError(t, err)

	second, err := password.Hash("samePassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("samePassword", first))
	assert.NoError(t, password.Verify("samePassword", second))
}
