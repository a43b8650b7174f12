package middleware

import (
	"context"
	"net/http"

	"github.com/WareOnGo/wag-dashboard/core/device"
)

// probeContextKey is used as a key for storing the device probe in request context.
type probeContextKey struct{}

// DeviceConfig configures the device detection middleware.
type DeviceConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
}

// Device creates a middleware that derives a device capability probe from
// request headers and stores it in the request context. Headers carry only a
// coarse picture (user agent plus client hints); handlers that need exact
// capabilities should consume a client-submitted report instead.
func Device() Middleware {
	return DeviceWithConfig(DeviceConfig{})
}

// DeviceWithConfig creates a device detection middleware with custom configuration.
func DeviceWithConfig(cfg DeviceConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			probe := device.NewProbe(device.NewRequestHost(r))
			ctx := context.WithValue(r.Context(), probeContextKey{}, probe)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ProbeFromContext retrieves the device probe stored by Device.
// Returns the probe and a boolean indicating whether it was found.
func ProbeFromContext(ctx context.Context) (*device.Probe, bool) {
	probe, ok := ctx.Value(probeContextKey{}).(*device.Probe)
	return probe, ok
}
