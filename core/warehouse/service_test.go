package warehouse_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WareOnGo/wag-dashboard/core/warehouse"
)

// memStore is an in-memory Store for service tests.
type memStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]warehouse.Warehouse
	listErr error
	txCalls int
	inTxOps int
}

// txMarker flags contexts handed to InTx callbacks so reads and writes can
// report whether they ran inside the transaction.
type txMarker struct{}

func (s *memStore) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	s.txCalls++
	s.mu.Unlock()
	return fn(context.WithValue(ctx, txMarker{}, true))
}

func (s *memStore) noteTxOp(ctx context.Context) {
	if ctx.Value(txMarker{}) != nil {
		s.inTxOps++
	}
}

func newMemStore() *memStore {
	return &memStore{records: make(map[uuid.UUID]warehouse.Warehouse)}
}

func (s *memStore) List(_ context.Context, f warehouse.Filter) ([]warehouse.Warehouse, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	items := make([]warehouse.Warehouse, 0, len(s.records))
	for _, w := range s.records {
		items = append(items, w)
	}
	total := len(items)
	// Crude pagination is fine here; SQL-level behavior belongs to PgStore.
	if f.Offset() >= len(items) {
		return nil, total, nil
	}
	end := min(f.Offset()+f.PerPage, len(items))
	return items[f.Offset():end], total, nil
}

func (s *memStore) Get(ctx context.Context, id uuid.UUID) (warehouse.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.noteTxOp(ctx)
	w, ok := s.records[id]
	if !ok {
		return warehouse.Warehouse{}, warehouse.ErrNotFound
	}
	return w, nil
}

func (s *memStore) Create(_ context.Context, w warehouse.Warehouse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[w.ID] = w
	return nil
}

func (s *memStore) Update(ctx context.Context, w warehouse.Warehouse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.noteTxOp(ctx)
	if _, ok := s.records[w.ID]; !ok {
		return warehouse.ErrNotFound
	}
	s.records[w.ID] = w
	return nil
}

func (s *memStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return warehouse.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// memCache records cache traffic for assertions.
type memCache struct {
	mu          sync.Mutex
	pages       map[warehouse.Filter]warehouse.Page
	invalidated int
}

func newMemCache() *memCache {
	return &memCache{pages: make(map[warehouse.Filter]warehouse.Page)}
}

func (c *memCache) Get(_ context.Context, f warehouse.Filter) (warehouse.Page, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	page, ok := c.pages[f]
	return page, ok
}

func (c *memCache) Set(_ context.Context, f warehouse.Filter, page warehouse.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[f] = page
}

func (c *memCache) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	c.pages = make(map[warehouse.Filter]warehouse.Page)
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("assigns identity and timestamps", func(t *testing.T) {
		t.Parallel()
		fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		store := newMemStore()
		svc := warehouse.NewService(store, warehouse.WithClock(func() time.Time { return fixed }))

		created, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, fixed, created.CreatedAt)
		assert.Equal(t, fixed, created.UpdatedAt)
		assert.Equal(t, warehouse.StatusAvailable, created.Status)

		stored, err := store.Get(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, stored)
	})

	t.Run("rejects invalid payload without touching the store", func(t *testing.T) {
		t.Parallel()
		store := newMemStore()
		svc := warehouse.NewService(store)

		_, err := svc.Create(context.Background(), warehouse.Input{})
		require.ErrorIs(t, err, warehouse.ErrInvalidInput)
		assert.Empty(t, store.records)
	})

	t.Run("invalidates the listing cache", func(t *testing.T) {
		t.Parallel()
		cache := newMemCache()
		svc := warehouse.NewService(newMemStore(), warehouse.WithCache(cache))

		_, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)
		assert.Equal(t, 1, cache.invalidated)
	})
}

func TestServiceList(t *testing.T) {
	t.Parallel()

	t.Run("normalizes pagination", func(t *testing.T) {
		t.Parallel()
		svc := warehouse.NewService(newMemStore())

		page, err := svc.List(context.Background(), warehouse.Filter{Page: -3, PerPage: 0})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PerPage)
	})

	t.Run("caps per-page at the maximum", func(t *testing.T) {
		t.Parallel()
		svc := warehouse.NewService(newMemStore())

		page, err := svc.List(context.Background(), warehouse.Filter{PerPage: 5000})
		require.NoError(t, err)
		assert.Equal(t, 100, page.PerPage)
	})

	t.Run("serves from cache on a hit", func(t *testing.T) {
		t.Parallel()
		store := newMemStore()
		cache := newMemCache()
		svc := warehouse.NewService(store, warehouse.WithCache(cache))

		filter := warehouse.Filter{City: "Bhiwandi", Page: 1, PerPage: 10}
		cached := warehouse.Page{Total: 42, Page: 1, PerPage: 10}
		cache.Set(context.Background(), filter, cached)

		store.listErr = assert.AnError // cache hit must not reach the store
		page, err := svc.List(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, cached, page)
	})

	t.Run("fills the cache on a miss", func(t *testing.T) {
		t.Parallel()
		cache := newMemCache()
		svc := warehouse.NewService(newMemStore(), warehouse.WithCache(cache))

		_, err := svc.List(context.Background(), warehouse.Filter{})
		require.NoError(t, err)

		_, ok := cache.Get(context.Background(), warehouse.Filter{Page: 1, PerPage: 10})
		assert.True(t, ok, "normalized filter must be the cache key")
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("replaces fields and bumps updated_at", func(t *testing.T) {
		t.Parallel()
		current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		svc := warehouse.NewService(newMemStore(), warehouse.WithClock(func() time.Time { return current }))

		created, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)

		current = current.Add(time.Hour)
		in := validInput()
		in.Name = "Bhiwandi Hub A (renovated)"
		in.Status = warehouse.StatusLeased

		updated, err := svc.Update(context.Background(), created.ID, in)
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Bhiwandi Hub A (renovated)", updated.Name)
		assert.Equal(t, warehouse.StatusLeased, updated.Status)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		t.Parallel()
		svc := warehouse.NewService(newMemStore())
		_, err := svc.Update(context.Background(), uuid.New(), validInput())
		assert.ErrorIs(t, err, warehouse.ErrNotFound)
	})

	t.Run("read and write share one transaction", func(t *testing.T) {
		t.Parallel()
		store := newMemStore()
		svc := warehouse.NewService(store)

		created, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)
		require.Zero(t, store.txCalls, "create is a single write, no transaction")

		_, err = svc.Update(context.Background(), created.ID, validInput())
		require.NoError(t, err)

		assert.Equal(t, 1, store.txCalls)
		assert.Equal(t, 2, store.inTxOps, "both the read and the write ran inside it")
	})
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("removes the record and invalidates cache", func(t *testing.T) {
		t.Parallel()
		cache := newMemCache()
		svc := warehouse.NewService(newMemStore(), warehouse.WithCache(cache))

		created, err := svc.Create(context.Background(), validInput())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), created.ID))
		_, err = svc.Get(context.Background(), created.ID)
		assert.ErrorIs(t, err, warehouse.ErrNotFound)
		assert.Equal(t, 2, cache.invalidated, "create and delete each invalidate")
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		t.Parallel()
		svc := warehouse.NewService(newMemStore())
		assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), warehouse.ErrNotFound)
	})
}
