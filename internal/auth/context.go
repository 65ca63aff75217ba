package auth

import "context"

type contextKey struct{}

var userIDKey contextKey

// ContextWithUserID stamps the authenticated account id onto the context.
func ContextWithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID returns the account id stored by ContextWithUserID, or "".
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
