package middleware

import (
	"context"
	"net/http"
)

// userIDHeader carries the authenticated user's ID.
// Authentication itself happens upstream (the fronting auth proxy verifies
// the session and sets this header); this middleware only enforces that an
// identity is present and makes it available to handlers.
const userIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// RequireUser rejects requests without a user identity and stores the
// user ID in the request context for handlers to read via UserIDFrom.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck
			w.Write([]byte(`{"error":{"code":"unauthorized","message":"missing user identity"}}`))
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFrom returns the user ID stored by RequireUser, or "" when the
// request did not pass through it.
func UserIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}
