package warehouse

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the listing lifecycle state of a warehouse record.
type Status string

const (
	StatusAvailable Status = "available"
	StatusLeased    Status = "leased"
	StatusInactive  Status = "inactive"
)

func (s Status) valid() bool {
	switch s {
	case StatusAvailable, StatusLeased, StatusInactive:
		return true
	}
	return false
}

// Warehouse is one listing record.
type Warehouse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	AreaSqFt     int       `json:"areaSqFt"`
	PricePerSqFt float64   `json:"pricePerSqFt"`
	ContactName  string    `json:"contactName"`
	ContactPhone string    `json:"contactPhone"`
	PhotoURLs    []string  `json:"photoUrls"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Input is the create/update payload for a warehouse record.
type Input struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	AreaSqFt     int      `json:"areaSqFt"`
	PricePerSqFt float64  `json:"pricePerSqFt"`
	ContactName  string   `json:"contactName"`
	ContactPhone string   `json:"contactPhone"`
	PhotoURLs    []string `json:"photoUrls"`
	Status       Status   `json:"status"`
}

// Validate checks the payload and returns a ValidationError carrying
// per-field issues, or nil when the input is acceptable.
func (in Input) Validate() error {
	var issues []Issue

	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if strings.TrimSpace(in.Name) == "" {
		add("name", "name is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		add("address", "address is required")
	}
	if strings.TrimSpace(in.City) == "" {
		add("city", "city is required")
	}
	if in.AreaSqFt <= 0 {
		add("areaSqFt", "area must be a positive number of square feet")
	}
	if in.PricePerSqFt < 0 {
		add("pricePerSqFt", "price cannot be negative")
	}
	if in.Status != "" && !in.Status.valid() {
		add("status", "status must be one of: available, leased, inactive")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// apply copies the payload onto an existing record, leaving identity and
// creation time untouched.
func (in Input) apply(w *Warehouse) {
	w.Name = in.Name
	w.Address = in.Address
	w.City = in.City
	w.State = in.State
	w.Zip = in.Zip
	w.AreaSqFt = in.AreaSqFt
	w.PricePerSqFt = in.PricePerSqFt
	w.ContactName = in.ContactName
	w.ContactPhone = in.ContactPhone
	w.PhotoURLs = in.PhotoURLs
	if in.Status != "" {
		w.Status = in.Status
	}
}
