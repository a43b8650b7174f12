package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/WareOnGo/wag-dashboard/core/warehouse"
)

// errorResponse is the uniform error shape for the JSON API.
type errorResponse struct {
	Error  string            `json:"error"`
	Issues []warehouse.Issue `json:"issues,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// respondError maps domain errors to wire status codes. Unknown errors are
// reported as opaque 500s so internals never leak to the client.
func respondError(w http.ResponseWriter, err error) {
	var ve *warehouse.ValidationError
	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Issues: ve.Issues})
	case errors.Is(err, warehouse.ErrInvalidInput):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid input"})
	case errors.Is(err, warehouse.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "warehouse not found"})
	default:
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
