package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion events.
// It creates a child logger enriched with the request ID and correlation ID
// from context, stores it via logging.WithLogger for downstream use, and
// logs completion with method, path, status code, and duration.
//
// Completion is logged by an exit guard, so a request whose handler panics
// still gets a completion entry, at warn level with aborted=true.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			aborted := false

			done := guard.OnExit(func() {
				level := slog.LevelInfo
				if aborted {
					level = slog.LevelWarn
				}
				child.Log(ctx, level, "request completed",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", rw.statusCode),
					slog.Int64("bytes", rw.written),
					slog.Bool("aborted", aborted),
					slog.Duration("duration", time.Since(start)),
				)
			}, guard.WithName("http.logging"), guard.WithLogger(child))
			defer done.Close()

			mark := guard.OnFailure(nil, func() { aborted = true }, guard.WithName("http.logging.abort"))
			defer mark.Close()

			next.ServeHTTP(rw, r.WithContext(ctx))
		})
	}
}
