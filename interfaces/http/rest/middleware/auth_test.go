package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/domain/user"
	"github.com/Zzzisey/hackson/pkg/auth"
	apperrors "github.com/Zzzisey/hackson/pkg/errors"
)

type stubUserStore struct {
	users map[string]*user.User
}

func (s *stubUserStore) Create(_ context.Context, _ *user.User) error { return nil }

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, apperrors.NewNotFoundError("user")
	}
	return u, nil
}

func (s *stubUserStore) SetPersonLink(_ context.Context, _ int64, _ string) error { return nil }

func (s *stubUserStore) List(_ context.Context, _, _ int) ([]*user.User, error) { return nil, nil }

func newTestMiddleware(t *testing.T, users map[string]*user.User) (*AuthMiddleware, *auth.TokenService) {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret", "hackson", 0)
	require.NoError(t, err)
	return NewAuthMiddleware(tokens, &stubUserStore{users: users}, 1000, zap.NewNop()), tokens
}

func echoUserHandler(t *testing.T, sawUser *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*sawUser = auth.UserOrNil(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidToken(t *testing.T) {
	mw, tokens := newTestMiddleware(t, map[string]*user.User{
		"ada@example.com": {ID: 1, Email: "ada@example.com", IsActive: true},
	})
	token, err := tokens.Generate("ada@example.com")
	require.NoError(t, err)

	var sawUser bool
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.Authenticate(echoUserHandler(t, &sawUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawUser)
}

func TestAuthenticateMissingToken(t *testing.T) {
	mw, _ := newTestMiddleware(t, nil)

	var sawUser bool
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	mw.Authenticate(echoUserHandler(t, &sawUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, sawUser)
}

func TestAuthenticateGarbageToken(t *testing.T) {
	mw, _ := newTestMiddleware(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()

	var sawUser bool
	mw.Authenticate(echoUserHandler(t, &sawUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateUnknownSubject(t *testing.T) {
	mw, tokens := newTestMiddleware(t, map[string]*user.User{})
	token, err := tokens.Generate("ghost@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	var sawUser bool
	mw.Authenticate(echoUserHandler(t, &sawUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	mw, tokens := newTestMiddleware(t, map[string]*user.User{
		"ada@example.com": {ID: 1, Email: "ada@example.com", IsActive: false},
	})
	token, err := tokens.Generate("ada@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	var sawUser bool
	mw.Authenticate(echoUserHandler(t, &sawUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptionalDegradesToAnonymous(t *testing.T) {
	mw, tokens := newTestMiddleware(t, map[string]*user.User{
		"inactive@example.com": {ID: 2, Email: "inactive@example.com", IsActive: false},
	})

	inactiveToken, err := tokens.Generate("inactive@example.com")
	require.NoError(t, err)
	ghostToken, err := tokens.Generate("ghost@example.com")
	require.NoError(t, err)

	cases := map[string]string{
		"no header":     "",
		"garbage token": "Bearer nonsense",
		"unknown user":  "Bearer " + ghostToken,
		"inactive user": "Bearer " + inactiveToken,
		"wrong scheme":  "Basic dXNlcjpwYXNz",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			var sawUser bool
			mw.AuthenticateOptional(echoUserHandler(t, &sawUser)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.False(t, sawUser)
		})
	}
}

func TestOptionalResolvesValidUser(t *testing.T) {
	mw, tokens := newTestMiddleware(t, map[string]*user.User{
		"ada@example.com": {ID: 1, Email: "ada@example.com", IsActive: true},
	})
	token, err := tokens.Generate("ada@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	var sawUser bool
	mw.AuthenticateOptional(echoUserHandler(t, &sawUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawUser)
}

func TestClientIP(t *testing.T) {
	cases := map[string]struct {
		remoteAddr string
		want       string
	}{
		"ipv4 with port":    {"192.0.2.1:1234", "192.0.2.1"},
		"bare ipv4":         {"192.0.2.1", "192.0.2.1"},
		"ipv6 with port":    {"[2001:db8::1]:443", "2001:db8::1"},
		"bare ipv6":         {"2001:db8::1", "2001:db8::1"},
		"empty remote addr": {"", "unknown"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr

			assert.Equal(t, tc.want, clientIP(req))
		})
	}
}

func TestRateLimitExceeded(t *testing.T) {
	tokens, err := auth.NewTokenService("test-secret", "hackson", 0)
	require.NoError(t, err)
	mw := NewAuthMiddleware(tokens, &stubUserStore{}, 2, zap.NewNop())

	var sawUser bool
	handler := mw.AuthenticateOptional(echoUserHandler(t, &sawUser))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
