package httputil

import (
	"context"
	"net/http"
)

// Unexported key type keeps request-context values collision-free
type userIDKey struct{}

// WithUserID returns a shallow copy of the request carrying the
// authenticated user id in its context
func WithUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID))
}

// GetUserID returns the authenticated user id, or "" for requests that
// never passed through the auth middleware
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey{}).(string)
	return userID
}
