// Package pg provides PostgreSQL connection management with migrations and
// health checking.
//
// It wraps the pgx driver with retry logic on connect, connection pool
// tuning, and goose-based schema migrations. Configuration is read from
// environment variables through the Config struct:
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, logger); err != nil {
//		log.Fatal(err)
//	}
//
// Healthcheck returns a probe function for readiness endpoints:
//
//	check := pg.Healthcheck(pool)
//	if err := check(r.Context()); err != nil {
//		http.Error(w, "database unhealthy", http.StatusServiceUnavailable)
//	}
//
// The error classification helpers (IsNotFoundError, IsDuplicateKeyError,
// IsForeignKeyViolationError, IsTxClosedError) give type-safe checks for the
// common PostgreSQL failure patterns so storage code does not need to match
// on SQLSTATE codes directly.
//
// WithTx and TxFromContext propagate a pgx.Tx through context so storage
// implementations can participate in a caller-owned transaction.
package pg
