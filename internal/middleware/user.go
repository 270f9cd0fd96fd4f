package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the request's user name.
	UserIDKey contextKey = "user_id"

	// UserHeader carries the user's display name. It is not verified.
	UserHeader = "X-User-Name"

	// GuestUser scopes requests that do not name a user.
	GuestUser = "guest"
)

// GetUserID extracts the user ID from the context.
// Returns GuestUser if not set.
func GetUserID(ctx context.Context) string {
	if userID, _ := ctx.Value(UserIDKey).(string); userID != "" {
		return userID
	}
	return GuestUser
}

// WithUserID returns a context scoped to the given user.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// UserScope returns an interceptor that reads the user name header into the
// context. Records are namespaced by this name; there is no authentication.
func UserScope() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			userID := strings.TrimSpace(req.Header().Get(UserHeader))
			if userID == "" {
				userID = GuestUser
			}
			return next(WithUserID(ctx, userID), req)
		}
	}
}

// UserHeaderInterceptor returns a client interceptor that sends userID on every call.
func UserHeaderInterceptor(userID string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				req.Header().Set(UserHeader, userID)
			}
			return next(ctx, req)
		}
	}
}
