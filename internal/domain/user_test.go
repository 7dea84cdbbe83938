package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("alice@example.com", "$2a$10$somethinghashed")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "$2a$10$somethinghashed", user.HashedPassword)
		// The store assigns the ID on insert
		assert.Zero(t, user.ID)
	})

	tests := []struct {
		name           string
		email          string
		hashedPassword string
		wantErr        error
	}{
		{"empty email", "", "hash", ErrEmptyEmail},
		{"missing at sign", "alice.example.com", "hash", ErrInvalidEmail},
		{"missing domain dot", "alice@examplecom", "hash", ErrInvalidEmail},
		{"at sign first", "@example.com", "hash", ErrInvalidEmail},
		{"at sign last", "alice@", "hash", ErrInvalidEmail},
		{"empty hash", "alice@example.com", "", ErrEmptyHashedPassword},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUser(tt.email, tt.hashedPassword)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePasswordLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"minimum length", "12345678", nil},
		{"too short", "1234567", ErrPasswordTooShort},
		{"empty", "", ErrPasswordTooShort},
		{"maximum length", string(make([]byte, 72)), nil},
		{"too long", string(make([]byte, 73)), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePasswordLength(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
