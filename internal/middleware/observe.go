package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/wuyazuofeiji919/textfork/internal/metrics"
)

// Observe captures the response status once and feeds both the request log
// and the Prometheus request counter from that single wrap.
func Observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		id := RequestIDFromContext(r.Context())
		if id == "" {
			id = "-"
		}
		slog.Info("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes_in", r.ContentLength,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		metrics.RequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(sw.status)).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}
