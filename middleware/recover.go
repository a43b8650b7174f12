package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// RecoverConfig configures the panic recovery middleware.
type RecoverConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Logger receives panic reports (default: slog.Default())
	Logger *slog.Logger
}

// Recover creates a panic recovery middleware with default configuration.
func Recover() Middleware {
	return RecoverWithConfig(RecoverConfig{})
}

// RecoverWithConfig creates a middleware that converts handler panics into
// 500 responses instead of tearing down the connection.
func RecoverWithConfig(cfg RecoverConfig) Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					cfg.Logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("panic", rec),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
