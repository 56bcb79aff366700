// Package shared holds request scoped values used by both server transports.
package shared

import "context"

type ctxKey string

// UserIDKey is the context key of the authenticated user id.
const UserIDKey ctxKey = "userID"

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}
