package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/WareOnGo/wag-dashboard/core/config"
	"github.com/WareOnGo/wag-dashboard/core/logger"
	"github.com/WareOnGo/wag-dashboard/core/presentation"
	"github.com/WareOnGo/wag-dashboard/core/server"
	"github.com/WareOnGo/wag-dashboard/core/warehouse"
	"github.com/WareOnGo/wag-dashboard/integration/database/pg"
	"github.com/WareOnGo/wag-dashboard/integration/database/redis"
	"github.com/WareOnGo/wag-dashboard/integration/storage/s3"
	"github.com/WareOnGo/wag-dashboard/pkg/jwt"
)

// App owns the long-lived application state: configuration, connections,
// and the HTTP server.
type App struct {
	config  Config
	logger  *slog.Logger
	server  *server.Server
	handler http.Handler
	cleanup []func()
}

// NewApp loads configuration from the environment and wires every component:
// database, cache, photo storage, auth, routes.
func NewApp(ctx context.Context) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(
			slog.String("app", cfg.AppName),
			slog.String("env", cfg.Env),
		),
	)

	app := &App{config: cfg, logger: log}

	pool, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	app.cleanup = append(app.cleanup, pool.Close)

	if err := pg.Migrate(ctx, pool, cfg.DB, log); err != nil && !errors.Is(err, pg.ErrMigrationsDirNotFound) {
		app.close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("redis: %w", err)
	}
	app.cleanup = append(app.cleanup, func() { _ = redisClient.Close() })

	photos, err := s3.New(ctx, cfg.S3)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("s3: %w", err)
	}

	auth, err := jwt.NewFromString(cfg.AuthSecret)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("auth: %w", err)
	}

	// The shared list cache serves mixed clients, so it uses the
	// conservative TTL; low-end sessions must never read long-stale pages.
	cache := warehouse.NewRedisListCache(redisClient, presentation.CacheMinimal)
	warehouses := warehouse.NewService(
		warehouse.NewPgStore(pool),
		warehouse.WithCache(cache),
		warehouse.WithLogger(log),
	)

	app.handler = newRouter(&handlers{
		warehouses: warehouses,
		photos:     photos,
		auth:       auth,
		log:        log,
		loginURL:   cfg.LoginURL,
		cookieName: cfg.SessionCookie,
		sessionTTL: cfg.SessionTTL,
		checks: healthChecks{
			"postgres": pg.Healthcheck(pool),
			"redis":    redis.Healthcheck(redisClient),
		},
	})

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		app.close()
		return nil, err
	}
	app.server = srv

	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled, then shuts
// down gracefully and releases connections.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.logger.InfoContext(ctx, "dashboard starting",
		slog.String("addr", a.config.Server.Addr))

	err := a.server.Start(ctx, a.handler)
	if stopErr := a.server.Stop(); stopErr != nil {
		a.logger.Error("server stop", logger.Error(stopErr))
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}
