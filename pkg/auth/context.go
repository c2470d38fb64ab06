package auth

import (
	"context"
	"errors"

	"github.com/Zzzisey/hackson/domain/user"
)

type contextKey string

const userContextKey contextKey = "user"

// SetUserInContext adds the resolved user to the request context.
func SetUserInContext(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// GetUserFromContext extracts the resolved user from the context. It fails
// when the request went through the optional-auth path as anonymous.
func GetUserFromContext(ctx context.Context) (*user.User, error) {
	u, ok := ctx.Value(userContextKey).(*user.User)
	if !ok || u == nil {
		return nil, errors.New("user not found in context")
	}
	return u, nil
}

// UserOrNil returns the resolved user, or nil for anonymous callers. This is
// the optional-auth accessor: absence is a classification, not an error.
func UserOrNil(ctx context.Context) *user.User {
	u, _ := ctx.Value(userContextKey).(*user.User)
	return u
}
