package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// RequestID tags each request for log correlation. An inbound X-Request-ID
// from a proxy or frontend is kept; otherwise a fresh ID is generated. The
// ID is echoed in the response header and stored in the context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = newRequestID()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// newRequestID returns 12 random bytes as 16 base64url characters.
func newRequestID() string {
	b := make([]byte, 12)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
