package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/WareOnGo/wag-dashboard/core/warehouse"
	"github.com/WareOnGo/wag-dashboard/integration/storage/s3"
)

// warehouseService is the slice of warehouse operations the handlers use.
type warehouseService interface {
	List(ctx context.Context, f warehouse.Filter) (warehouse.Page, error)
	Get(ctx context.Context, id uuid.UUID) (warehouse.Warehouse, error)
	Create(ctx context.Context, in warehouse.Input) (warehouse.Warehouse, error)
	Update(ctx context.Context, id uuid.UUID, in warehouse.Input) (warehouse.Warehouse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// photoSigner issues presigned upload tickets for warehouse photos.
type photoSigner interface {
	PresignUpload(ctx context.Context, key, contentType string) (*s3.UploadTicket, error)
}

func (h *handlers) listWarehouses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := warehouse.Filter{
		Search: q.Get("q"),
		City:   q.Get("city"),
		State:  q.Get("state"),
		Status: warehouse.Status(q.Get("status")),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = page
	}
	if perPage, err := strconv.Atoi(q.Get("perPage")); err == nil {
		filter.PerPage = perPage
	}

	page, err := h.warehouses.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (h *handlers) getWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := warehouseID(w, r)
	if !ok {
		return
	}

	wh, err := h.warehouses.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, wh)
}

func (h *handlers) createWarehouse(w http.ResponseWriter, r *http.Request) {
	var in warehouse.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	wh, err := h.warehouses.Create(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, wh)
}

func (h *handlers) updateWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := warehouseID(w, r)
	if !ok {
		return
	}

	var in warehouse.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	wh, err := h.warehouses.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, wh)
}

func (h *handlers) deleteWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := warehouseID(w, r)
	if !ok {
		return
	}

	if err := h.warehouses.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// presignedURLRequest asks for an upload slot for one photo.
type presignedURLRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

func (h *handlers) presignPhotoUpload(w http.ResponseWriter, r *http.Request) {
	var req presignedURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	if req.FileName == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "fileName is required"})
		return
	}
	if req.ContentType == "" {
		req.ContentType = "application/octet-stream"
	}

	// A random prefix keeps uploads from colliding and from guessing each
	// other's URLs.
	key := "warehouses/" + uuid.New().String() + "/" + req.FileName

	ticket, err := h.photos.PresignUpload(r.Context(), key, req.ContentType)
	if err != nil {
		if errors.Is(err, s3.ErrInvalidKey) {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid file name"})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ticket)
}

// warehouseID extracts and validates the {id} path variable.
func warehouseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid warehouse id"})
		return uuid.Nil, false
	}
	return id, true
}
