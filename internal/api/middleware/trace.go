package middleware

import (
	"log/slog"
	"net/http"

	"github.com/keepnote/keepnote-api/internal/api/shared"
)

// TraceMiddleware attaches a trace ID to the request context so that
// handlers and error responses can correlate with the server logs.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.Debug("request started",
			"trace_id", shared.GetTraceID(ctx),
			"method", r.Method,
			"path", r.URL.Path)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
