package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/mocks"
	"github.com/phrazzld/tasklist-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoUser is the terminal handler for the middleware tests. It records
// whether it was reached and which user the gate resolved.
type echoUser struct {
	called bool
	user   *domain.User
}

func (e *echoUser) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.called = true
	e.user, _ = UserFromRequest(r)
	w.WriteHeader(http.StatusOK)
}

func doAuthRequest(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, *echoUser) {
	t.Helper()
	next := &echoUser{}
	handler := m.Authenticate(next)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, next
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid token resolves user", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("alice@example.com", "hashed")
		require.NoError(t, err)
		require.NoError(t, userStore.Create(context.Background(), user))

		jwtService := &mocks.MockJWTService{Claims: &auth.Claims{Subject: "alice@example.com"}}
		m := NewAuthMiddleware(jwtService, userStore)

		rec, next := doAuthRequest(t, m, "Bearer some-valid-token")

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, next.called)
		require.NotNil(t, next.user)
		assert.Equal(t, "alice@example.com", next.user.Email)
	})

	t.Run("token subject no longer resolves", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{Claims: &auth.Claims{Subject: "gone@example.com"}}
		m := NewAuthMiddleware(jwtService, mocks.NewMockUserStore())

		rec, next := doAuthRequest(t, m, "Bearer some-valid-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, next.called)
		assert.Contains(t, rec.Body.String(), "Invalid token")
	})

	tests := []struct {
		name        string
		authHeader  string
		validateErr error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing header",
			authHeader:  "",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authorization header required",
		},
		{
			name:        "wrong scheme",
			authHeader:  "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid authorization format",
		},
		{
			name:        "missing token after scheme",
			authHeader:  "Bearer",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid authorization format",
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired-token",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Token expired",
		},
		{
			name:        "garbage token",
			authHeader:  "Bearer garbage",
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			jwtService := &mocks.MockJWTService{ValidateErr: tt.validateErr}
			m := NewAuthMiddleware(jwtService, mocks.NewMockUserStore())

			rec, next := doAuthRequest(t, m, tt.authHeader)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			assert.False(t, next.called)
		})
	}
}

func TestUserFromRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	user, ok := UserFromRequest(req)
	assert.False(t, ok)
	assert.Nil(t, user)
}
