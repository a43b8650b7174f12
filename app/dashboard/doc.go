// Package dashboard assembles the warehouse listing dashboard service:
// the JSON warehouse API, the photo upload presign flow, the auth callback,
// device-adaptive styling endpoints, and health checks, served over one
// gorilla/mux router with shared middleware.
package dashboard
