package warehouse

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/WareOnGo/wag-dashboard/core/logger"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// Filter narrows and paginates a listing query. Zero values mean "no filter".
type Filter struct {
	Search  string
	City    string
	State   string
	Status  Status
	Page    int
	PerPage int
}

// normalized clamps pagination to sane bounds.
func (f Filter) normalized() Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = defaultPerPage
	}
	if f.PerPage > maxPerPage {
		f.PerPage = maxPerPage
	}
	return f
}

// Offset returns the row offset implied by the pagination fields.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// Page is one page of listing results.
type Page struct {
	Items   []Warehouse `json:"items"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"perPage"`
}

// Store is the persistence boundary for warehouse records.
type Store interface {
	List(ctx context.Context, f Filter) ([]Warehouse, int, error)
	Get(ctx context.Context, id uuid.UUID) (Warehouse, error)
	Create(ctx context.Context, w Warehouse) error
	Update(ctx context.Context, w Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error

	// InTx runs fn atomically: store calls made with the context fn
	// receives join a single transaction, rolled back when fn errors.
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ListCache caches whole listing pages. Implementations are best-effort:
// a cache failure must degrade to a store read, never to a request failure.
type ListCache interface {
	Get(ctx context.Context, f Filter) (Page, bool)
	Set(ctx context.Context, f Filter, page Page)
	Invalidate(ctx context.Context)
}

// Service implements the warehouse operations over a Store with an optional
// listing cache.
type Service struct {
	store Store
	cache ListCache
	log   *slog.Logger
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithCache attaches a listing cache. Writes invalidate it.
func WithCache(cache ListCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithLogger sets the service logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a warehouse service over the given store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of records matching the filter.
func (s *Service) List(ctx context.Context, f Filter) (Page, error) {
	f = f.normalized()

	if s.cache != nil {
		if page, ok := s.cache.Get(ctx, f); ok {
			return page, nil
		}
	}

	items, total, err := s.store.List(ctx, f)
	if err != nil {
		return Page{}, err
	}

	page := Page{Items: items, Total: total, Page: f.Page, PerPage: f.PerPage}
	if s.cache != nil {
		s.cache.Set(ctx, f, page)
	}
	return page, nil
}

// Get returns a single record by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Warehouse, error) {
	return s.store.Get(ctx, id)
}

// Create validates the payload and stores a new record.
func (s *Service) Create(ctx context.Context, in Input) (Warehouse, error) {
	if err := in.Validate(); err != nil {
		return Warehouse{}, err
	}

	now := s.now().UTC()
	w := Warehouse{
		ID:        uuid.New(),
		Status:    StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.apply(&w)

	if err := s.store.Create(ctx, w); err != nil {
		return Warehouse{}, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "warehouse created", logger.WarehouseID(w.ID.String()))
	return w, nil
}

// Update validates the payload and replaces an existing record. The read
// and the write run in one store transaction so concurrent updates cannot
// interleave between them.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (Warehouse, error) {
	if err := in.Validate(); err != nil {
		return Warehouse{}, err
	}

	var w Warehouse
	err := s.store.InTx(ctx, func(ctx context.Context) error {
		var err error
		w, err = s.store.Get(ctx, id)
		if err != nil {
			return err
		}

		in.apply(&w)
		w.UpdatedAt = s.now().UTC()

		return s.store.Update(ctx, w)
	})
	if err != nil {
		return Warehouse{}, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "warehouse updated", logger.WarehouseID(w.ID.String()))
	return w, nil
}

// Delete removes a record by id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "warehouse deleted", logger.WarehouseID(id.String()))
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
