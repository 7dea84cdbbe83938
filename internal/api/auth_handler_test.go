package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/tasklist-api/internal/mocks"
	"github.com/phrazzld/tasklist-api/internal/service/auth"
	"github.com/phrazzld/tasklist-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passTx is a TxRunner that executes the unit of work without a real
// transaction; the mock stores ignore WithTx.
func passTx(ctx context.Context, fn store.TxFn) error {
	return fn(ctx, nil)
}

func newTestAuthHandler(userStore store.UserStore) *AuthHandler {
	return NewAuthHandler(
		userStore,
		&mocks.MockJWTService{Token: "test-token"},
		auth.NewBcryptVerifier(),
		passTx,
		nil,
	)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignUp(t *testing.T) {
	t.Parallel()

	t.Run("fresh email succeeds with usable token", func(t *testing.T) {
		t.Parallel()
		handler := newTestAuthHandler(mocks.NewMockUserStore())

		rec := postJSON(t, handler.SignUp, "/api/auth/sign-up", SignUpRequest{
			Email:    "alice@example.com",
			Password: "password123",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "test-token", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("duplicate email yields conflict", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		handler := newTestAuthHandler(userStore)

		first := postJSON(t, handler.SignUp, "/api/auth/sign-up", SignUpRequest{
			Email:    "alice@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(t, handler.SignUp, "/api/auth/sign-up", SignUpRequest{
			Email:    "alice@example.com",
			Password: "different-password",
		})
		assert.Equal(t, http.StatusBadRequest, second.Code)
		assert.Contains(t, second.Body.String(), "Email already registered")
	})

	t.Run("stored password is hashed, not plaintext", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		handler := newTestAuthHandler(userStore)

		rec := postJSON(t, handler.SignUp, "/api/auth/sign-up", SignUpRequest{
			Email:    "alice@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		user := userStore.Users["alice@example.com"]
		require.NotNil(t, user)
		assert.NotEqual(t, "password123", user.HashedPassword)
		assert.NoError(t, auth.NewBcryptVerifier().Compare(user.HashedPassword, "password123"))
	})

	tests := []struct {
		name string
		body SignUpRequest
	}{
		{"missing email", SignUpRequest{Password: "password123"}},
		{"invalid email", SignUpRequest{Email: "not-an-email", Password: "password123"}},
		{"short password", SignUpRequest{Email: "alice@example.com", Password: "short"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := newTestAuthHandler(mocks.NewMockUserStore())
			rec := postJSON(t, handler.SignUp, "/api/auth/sign-up", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSignIn(t *testing.T) {
	t.Parallel()

	// Seed a user through the sign-up path so the stored hash is real.
	signUp := func(t *testing.T) (*AuthHandler, *mocks.MockUserStore) {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		handler := newTestAuthHandler(userStore)
		rec := postJSON(t, handler.SignUp, "/api/auth/sign-up", SignUpRequest{
			Email:    "alice@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		return handler, userStore
	}

	t.Run("correct credentials return a token", func(t *testing.T) {
		t.Parallel()
		handler, _ := signUp(t)

		rec := postJSON(t, handler.SignIn, "/api/auth/sign-in", SignInRequest{
			Email:    "alice@example.com",
			Password: "password123",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "test-token", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		t.Parallel()
		handler, _ := signUp(t)

		wrongPassword := postJSON(t, handler.SignIn, "/api/auth/sign-in", SignInRequest{
			Email:    "alice@example.com",
			Password: "not-the-password",
		})
		unknownEmail := postJSON(t, handler.SignIn, "/api/auth/sign-in", SignInRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
		assert.Equal(t, "Bearer", wrongPassword.Header().Get("WWW-Authenticate"))
		assert.Equal(t, "Bearer", unknownEmail.Header().Get("WWW-Authenticate"))
	})
}
