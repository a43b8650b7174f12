package server

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/WareOnGo/wag-dashboard/core/logger"
)

// Server owns one http.Server lifecycle. Start blocks until the context is
// canceled or the listener fails; Stop drains in-flight requests within the
// configured shutdown timeout. Safe for concurrent use.
type Server struct {
	mu              sync.Mutex
	addr            string
	logger          *slog.Logger
	shutdownTimeout time.Duration
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	maxHeaderBytes  int
	tlsConfig       *tls.Config

	httpServer *http.Server
	running    bool
}

// New creates a server listening on addr. Without options it logs nowhere
// and uses the package default timeouts.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:            addr,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdownTimeout: DefaultShutdownTimeout,
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		idleTimeout:     DefaultIdleTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start serves handler until ctx is canceled or the listener fails, and
// returns ctx.Err() on cancellation. Callers pair it with Stop to drain
// in-flight requests. A second Start on a running server returns
// ErrServerAlreadyRunning.
func (s *Server) Start(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	s.running = true
	s.httpServer = &http.Server{
		Addr:           s.addr,
		Handler:        handler,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		TLSConfig:      s.tlsConfig,
	}
	srv := s.httpServer
	useTLS := s.tlsConfig != nil
	s.mu.Unlock()

	failed := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "server listening", logger.Addr(s.addr), slog.Bool("tls", useTLS))

		var err error
		if useTLS {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop drains the server within the configured shutdown timeout. Stopping a
// server that never started is a no-op.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.httpServer == nil {
		return nil
	}

	s.logger.Info("draining server", logger.Duration(s.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.running = false
	if err != nil {
		s.logger.Error("server shutdown", logger.Error(err))
		return err
	}

	s.logger.Info("server stopped")
	return nil
}
