package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow-api/taskflow/internal/auth"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("123456")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "123456")

	// A second hash of the same password uses a fresh salt.
	hash2, err := auth.HashPassword("123456")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
		wantErr  bool
	}{
		{
			name:     "matching password",
			password: "correct horse battery staple",
			hash:     hash,
			want:     true,
		},
		{
			name:     "wrong password",
			password: "incorrect horse",
			hash:     hash,
			want:     false,
		},
		{
			name:     "empty password against real hash",
			password: "",
			hash:     hash,
			want:     false,
		},
		{
			name:     "malformed hash is an error, not a mismatch",
			password: "anything",
			hash:     "not-a-hash",
			wantErr:  true,
		},
		{
			name:     "wrong algorithm tag",
			password: "anything",
			hash:     "$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
			wantErr:  true,
		},
		{
			name:     "bad base64 salt",
			password: "anything",
			hash:     "$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := auth.VerifyPassword(tt.password, tt.hash)
			if tt.wantErr {
				require.ErrorIs(t, err, auth.ErrMalformedHash)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
