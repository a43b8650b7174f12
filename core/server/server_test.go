package server_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WareOnGo/wag-dashboard/core/server"
)

// freeAddr reserves an ephemeral port and returns it as a listen address.
func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func waitForServer(t *testing.T, url string) *http.Response {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			return resp
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server at %s did not come up", url)
	return nil
}

func TestServerStartStop(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)
	srv := server.New(addr, server.WithShutdownTimeout(time.Second))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx, handler) }()

	resp := waitForServer(t, "http://"+addr+"/")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	err = <-done
	assert.ErrorIs(t, err, context.Canceled)
	require.NoError(t, srv.Stop())
}

func TestServerDoubleStart(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)
	srv := server.New(addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = srv.Start(ctx, http.NewServeMux()) }()
	waitForServer(t, "http://"+addr+"/")

	err := srv.Start(ctx, http.NewServeMux())
	assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)

	cancel()
	require.NoError(t, srv.Stop())
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing address", func(t *testing.T) {
		t.Parallel()
		_, err := server.NewFromConfig(server.Config{})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("defaults build a server", func(t *testing.T) {
		t.Parallel()
		srv, err := server.NewFromConfig(server.DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})
}

func TestServerStopBeforeStart(t *testing.T) {
	t.Parallel()

	srv := server.New(freeAddr(t))
	assert.NoError(t, srv.Stop(), "stopping a server that never started is a no-op")
}
