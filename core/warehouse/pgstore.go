package warehouse

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WareOnGo/wag-dashboard/integration/database/pg"
)

// PgStore is the PostgreSQL-backed Store implementation.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore creates a store over an established connection pool.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

// querier is the subset of pgx operations shared by pools and transactions.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// db returns the transaction carried by ctx, if any, so callers can group
// store operations atomically. Falls back to the pool.
func (s *PgStore) db(ctx context.Context) querier {
	if tx, ok := pg.TxFromContext(ctx); ok {
		return tx
	}
	return s.pool
}

// InTx begins a transaction, carries it on the context via pg.WithTx, and
// runs fn. Every store call inside fn therefore shares the transaction.
func (s *PgStore) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(pg.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Compile-time check that PgStore implements Store.
var _ Store = (*PgStore)(nil)

const warehouseColumns = `id, name, address, city, state, zip, area_sqft, price_per_sqft,
	contact_name, contact_phone, photo_urls, status, created_at, updated_at`

// List runs the filtered, paginated listing query plus a matching count.
func (s *PgStore) List(ctx context.Context, f Filter) ([]Warehouse, int, error) {
	where, args := buildListWhere(f)

	var total int
	countQuery := "SELECT COUNT(*) FROM warehouses" + where
	if err := s.db(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count warehouses: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM warehouses%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		warehouseColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, f.PerPage, f.Offset())

	rows, err := s.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var items []Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list warehouses: %w", err)
	}

	return items, total, nil
}

// buildListWhere renders the WHERE clause for the filter with positional args.
func buildListWhere(f Filter) (string, []any) {
	var clauses []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		clauses = append(clauses, fmt.Sprintf("(name ILIKE %s OR address ILIKE %s OR city ILIKE %s)", p, p, p))
	}
	if f.City != "" {
		clauses = append(clauses, "city ILIKE "+arg(f.City))
	}
	if f.State != "" {
		clauses = append(clauses, "state ILIKE "+arg(f.State))
	}
	if f.Status != "" {
		clauses = append(clauses, "status = "+arg(string(f.Status)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// Get fetches one record by id.
func (s *PgStore) Get(ctx context.Context, id uuid.UUID) (Warehouse, error) {
	row := s.db(ctx).QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM warehouses WHERE id = $1", warehouseColumns), id)

	w, err := scanWarehouse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Warehouse{}, ErrNotFound
		}
		return Warehouse{}, err
	}
	return w, nil
}

// Create inserts a new record.
func (s *PgStore) Create(ctx context.Context, w Warehouse) error {
	_, err := s.db(ctx).Exec(ctx, `
		INSERT INTO warehouses (`+warehouseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		w.ID, w.Name, w.Address, w.City, w.State, w.Zip, w.AreaSqFt, w.PricePerSqFt,
		w.ContactName, w.ContactPhone, w.PhotoURLs, w.Status, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// Update replaces an existing record.
func (s *PgStore) Update(ctx context.Context, w Warehouse) error {
	tag, err := s.db(ctx).Exec(ctx, `
		UPDATE warehouses SET
			name = $2, address = $3, city = $4, state = $5, zip = $6,
			area_sqft = $7, price_per_sqft = $8, contact_name = $9,
			contact_phone = $10, photo_urls = $11, status = $12, updated_at = $13
		WHERE id = $1`,
		w.ID, w.Name, w.Address, w.City, w.State, w.Zip, w.AreaSqFt, w.PricePerSqFt,
		w.ContactName, w.ContactPhone, w.PhotoURLs, w.Status, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record by id.
func (s *PgStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db(ctx).Exec(ctx, "DELETE FROM warehouses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWarehouse(row rowScanner) (Warehouse, error) {
	var w Warehouse
	err := row.Scan(
		&w.ID, &w.Name, &w.Address, &w.City, &w.State, &w.Zip,
		&w.AreaSqFt, &w.PricePerSqFt, &w.ContactName, &w.ContactPhone,
		&w.PhotoURLs, &w.Status, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Warehouse{}, err
		}
		return Warehouse{}, fmt.Errorf("scan warehouse: %w", err)
	}
	return w, nil
}
