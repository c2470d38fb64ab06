// Package middleware provides HTTP middleware for the REST interface.
package middleware

import (
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/application/ports"
	"github.com/Zzzisey/hackson/domain/user"
	"github.com/Zzzisey/hackson/pkg/auth"
	"github.com/Zzzisey/hackson/pkg/common"
)

// AuthMiddleware resolves bearer tokens to users. It comes in two strengths:
// Authenticate rejects the request on any failure, AuthenticateOptional
// degrades every failure to an anonymous request.
type AuthMiddleware struct {
	tokens  *auth.TokenService
	users   ports.UserStore
	limiter *auth.IPRateLimiter
	logger  *zap.Logger
}

// NewAuthMiddleware creates the middleware with an IP rate limit applied to
// both strengths.
func NewAuthMiddleware(tokens *auth.TokenService, users ports.UserStore, requestsPerMinute int, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:  tokens,
		users:   users,
		limiter: auth.NewIPRateLimiter(requestsPerMinute),
		logger:  logger,
	}
}

// Authenticate requires a valid token resolving to an active user. The three
// failure classes are distinct: a bad or missing token is unauthorized, a
// token whose subject no longer exists is not found, and an inactive account
// is a bad request.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.allowRequest(w, r) {
			return
		}

		u, status, message := m.resolveUser(r)
		if u == nil {
			common.RespondError(w, status, message)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.SetUserInContext(r.Context(), u)))
	})
}

// AuthenticateOptional resolves the user when a valid token is present and
// otherwise passes the request through as anonymous. No failure here is
// surfaced to the client.
func (m *AuthMiddleware) AuthenticateOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.allowRequest(w, r) {
			return
		}

		if u, _, _ := m.resolveUser(r); u != nil {
			r = r.WithContext(auth.SetUserInContext(r.Context(), u))
		}

		next.ServeHTTP(w, r)
	})
}

// resolveUser runs the shared token-to-user pipeline. On failure it returns a
// nil user plus the status and message the strict path would respond with.
func (m *AuthMiddleware) resolveUser(r *http.Request) (u *user.User, status int, message string) {
	token := extractToken(r)
	if token == "" {
		return nil, http.StatusUnauthorized, "not authenticated"
	}

	claims, err := m.tokens.Validate(token)
	if err != nil {
		return nil, http.StatusUnauthorized, "could not validate credentials"
	}

	account, err := m.users.GetByEmail(r.Context(), claims.Email())
	if err != nil {
		return nil, http.StatusNotFound, "user not found"
	}

	if !account.IsActive {
		return nil, http.StatusBadRequest, "inactive user"
	}

	return account, 0, ""
}

func (m *AuthMiddleware) allowRequest(w http.ResponseWriter, r *http.Request) bool {
	allowed, err := m.limiter.Allow(r.Context(), clientIP(r))
	if err != nil || !allowed {
		if err != nil {
			m.logger.Warn("rate limiter failure", zap.Error(err))
		}
		common.RespondError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return false
	}
	return true
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// clientIP prefers the address set by the RealIP middleware, which rewrites
// RemoteAddr to a bare IP without a port.
func clientIP(r *http.Request) string {
	if r.RemoteAddr == "" {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
