package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/WareOnGo/wag-dashboard/core/device"
	"github.com/WareOnGo/wag-dashboard/core/presentation"
	"github.com/WareOnGo/wag-dashboard/middleware"
)

// bootstrapResponse carries everything the page needs to adapt itself
// before any client script runs.
type bootstrapResponse struct {
	presentation.Bundle
	ClassAttr string `json:"classAttr"`
}

// requestBundle derives the presentation bundle for the current request,
// preferring the probe placed in context by the device middleware.
func requestBundle(r *http.Request) presentation.Bundle {
	probe, ok := middleware.ProbeFromContext(r.Context())
	if !ok {
		probe = device.NewProbe(device.NewRequestHost(r))
	}
	return presentation.ForProbe(probe)
}

// deviceStyles serves a per-device stylesheet: CSS custom properties under
// :root derived from the request's capability snapshot.
func (h *handlers) deviceStyles(w http.ResponseWriter, r *http.Request) {
	sheet := presentation.NewStyleSheet()
	presentation.Apply(requestBundle(r), sheet)

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	// Snapshots vary per device, never cache across clients.
	w.Header().Set("Cache-Control", "private, max-age=300")
	_, _ = w.Write([]byte(sheet.Render()))
}

// deviceBootstrap serves the bundle plus a ready-to-use class attribute as JSON.
func (h *handlers) deviceBootstrap(w http.ResponseWriter, r *http.Request) {
	bundle := requestBundle(r)

	sheet := presentation.NewStyleSheet()
	presentation.Apply(bundle, sheet)

	respondJSON(w, http.StatusOK, bootstrapResponse{
		Bundle:    bundle,
		ClassAttr: sheet.ClassAttr(),
	})
}

// deviceReport accepts a client-measured capability report and answers with
// the bundle derived from it. Header-based probing only approximates the
// device; the report is the authoritative snapshot.
func (h *handlers) deviceReport(w http.ResponseWriter, r *http.Request) {
	var report device.Report
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	probe := device.NewProbe(device.NewReportHost(report))

	sheet := presentation.NewStyleSheet()
	bundle := presentation.ForProbe(probe)
	presentation.Apply(bundle, sheet)

	respondJSON(w, http.StatusOK, bootstrapResponse{
		Bundle:    bundle,
		ClassAttr: sheet.ClassAttr(),
	})
}
