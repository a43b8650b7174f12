package dashboard

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/WareOnGo/wag-dashboard/middleware"
	"github.com/WareOnGo/wag-dashboard/pkg/jwt"
)

// handlers bundles every HTTP handler's dependencies.
type handlers struct {
	warehouses warehouseService
	photos     photoSigner
	auth       *jwt.Service
	checks     healthChecks
	log        *slog.Logger

	loginURL   string
	cookieName string
	sessionTTL time.Duration
}

// newRouter wires all routes and shared middleware into one handler.
func newRouter(h *handlers) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/warehouses", h.listWarehouses).Methods(http.MethodGet)
	r.HandleFunc("/warehouses", h.createWarehouse).Methods(http.MethodPost)
	r.HandleFunc("/warehouses/presigned-url", h.presignPhotoUpload).Methods(http.MethodPost)
	r.HandleFunc("/warehouses/{id}", h.getWarehouse).Methods(http.MethodGet)
	r.HandleFunc("/warehouses/{id}", h.updateWarehouse).Methods(http.MethodPut)
	r.HandleFunc("/warehouses/{id}", h.deleteWarehouse).Methods(http.MethodDelete)

	r.HandleFunc("/auth/callback", h.authCallback).Methods(http.MethodGet)

	r.HandleFunc("/device/styles.css", h.deviceStyles).Methods(http.MethodGet)
	r.HandleFunc("/device/bootstrap", h.deviceBootstrap).Methods(http.MethodGet)
	r.HandleFunc("/device/report", h.deviceReport).Methods(http.MethodPost)

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	return middleware.Chain(r,
		middleware.Recover(),
		middleware.RequestID(),
		middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: h.log,
			Skip:   func(r *http.Request) bool { return r.URL.Path == "/health" },
		}),
		middleware.Device(),
	)
}
