package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
)

// errInternalServer is the generic error returned to clients when a panic is
// recovered. The panic value and stack trace are logged, never returned.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that recovers from panics in downstream handlers.
// An on-failure guard captures the stack at the panic site; the outer recover
// logs it with the panic value and writes an RFC 9457 500 response. A panic
// carried across goroutines by Timeout is logged with its original stack. If the
// response headers have already been written, only the log entry is emitted.
//
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			var stack []byte

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
					panic(v)
				}

				if cp, ok := v.(*carriedPanic); ok {
					v, stack = cp.value, cp.stack
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(stack)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			serveCapturingStack(rw, r, next, logger, &stack)
		})
	}
}

func serveCapturingStack(w http.ResponseWriter, r *http.Request, next http.Handler, logger *slog.Logger, stack *[]byte) {
	g := guard.OnFailure(nil, func() { *stack = debug.Stack() },
		guard.WithName("http.recovery"),
		guard.WithLogger(logger),
	)
	defer g.Close()

	next.ServeHTTP(w, r)
}
