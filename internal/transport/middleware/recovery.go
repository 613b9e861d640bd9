package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/linguaweb/linguaweb-backend/pkg/ctxutil"
)

// Recovery returns middleware that recovers from handler panics, logs the
// panic with its stack and request ID, and responds 500. It sits inside
// RequestID in the chain so the ID is already on the context.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
