// Package middleware provides HTTP middleware for the dashboard server:
// request IDs, request logging, panic recovery, and device capability
// detection from request headers.
//
// Each middleware follows the same pattern: a zero-config constructor plus a
// WithConfig variant whose Config struct supports per-request skipping.
//
//	handler = middleware.Chain(router,
//		middleware.RequestID(),
//		middleware.LoggingWithConfig(middleware.LoggingConfig{Logger: log}),
//		middleware.Recover(),
//		middleware.Device(),
//	)
package middleware
