// Package server runs the dashboard's HTTP listener with graceful shutdown,
// environment-based configuration, and optional file-based TLS.
//
// Typical startup with config loaded from the environment:
//
//	var cfg server.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	if err := srv.Start(ctx, handler); err != nil && !errors.Is(err, context.Canceled) {
//		log.Fatal(err)
//	}
//	_ = srv.Stop()
package server
