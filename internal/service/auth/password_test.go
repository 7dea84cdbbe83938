package auth

import (
	"testing"

	"github.com/phrazzld/tasklist-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig(secret string, ttlMinutes int) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: ttlMinutes,
	}
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("hash verifies against original password", func(t *testing.T) {
		t.Parallel()
		hash, err := HashPassword("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		verifier := NewBcryptVerifier()
		assert.NoError(t, verifier.Compare(hash, "correct horse battery staple"))
	})

	t.Run("hashing is salted per call", func(t *testing.T) {
		t.Parallel()
		first, err := HashPassword("same password")
		require.NoError(t, err)
		second, err := HashPassword("same password")
		require.NoError(t, err)

		// Different salts, both still verify
		assert.NotEqual(t, first, second)
		verifier := NewBcryptVerifier()
		assert.NoError(t, verifier.Compare(first, "same password"))
		assert.NoError(t, verifier.Compare(second, "same password"))
	})
}

func TestBcryptVerifierCompare(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("the right password")
	require.NoError(t, err)

	verifier := NewBcryptVerifier()

	tests := []struct {
		name     string
		hashed   string
		password string
		wantErr  bool
	}{
		{"matching password", hash, "the right password", false},
		{"wrong password", hash, "the wrong password", true},
		{"empty password", hash, "", true},
		{"malformed hash", "not-a-bcrypt-hash", "anything", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := verifier.Compare(tt.hashed, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
