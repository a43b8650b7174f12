package dashboard

import (
	"context"
	"net/http"

	"github.com/WareOnGo/wag-dashboard/core/logger"
)

// health answers 200 when every dependency check passes, 503 otherwise.
func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	for name, check := range h.checks {
		if err := check(r.Context()); err != nil {
			h.log.ErrorContext(r.Context(), "healthcheck failed",
				logger.Component(name), logger.Error(err))
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"failed": name,
			})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// healthChecks maps a dependency name to its probe.
type healthChecks map[string]func(context.Context) error
