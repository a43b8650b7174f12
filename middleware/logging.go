package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/WareOnGo/wag-dashboard/core/logger"
	"github.com/WareOnGo/wag-dashboard/pkg/clientip"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Logger receives one record per request (default: slog.Default())
	Logger *slog.Logger
}

// Logging creates a request logging middleware using the default logger.
func Logging() Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithConfig creates a request logging middleware. Each request is
// logged once on completion with method, path, status, and duration; server
// errors are logged at error level.
func LoggingWithConfig(cfg LoggingConfig) Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			attrs := []any{
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(rec.status),
				logger.Duration(time.Since(start)),
				slog.String("ip", clientip.GetIP(r)),
			}
			if id, ok := GetRequestID(r.Context()); ok {
				attrs = append(attrs, logger.RequestID(id))
			}

			if rec.status >= http.StatusInternalServerError {
				cfg.Logger.ErrorContext(r.Context(), "request failed", attrs...)
				return
			}
			cfg.Logger.InfoContext(r.Context(), "request completed", attrs...)
		})
	}
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.written {
		return
	}
	r.status = status
	r.written = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.written = true
	return r.ResponseWriter.Write(b)
}
