package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/gqlblog/internal/logging"
	"github.com/dmitrijs2005/gqlblog/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.StorageBackend = config.BackendMemory
	c.SessionBackend = config.BackendMemory
	return c
}

func TestNewApp_UnknownBackends(t *testing.T) {
	c := memoryConfig()
	c.StorageBackend = "sqlite"
	_, err := newApp(context.Background(), c, logging.NewNopLogger())
	assert.ErrorContains(t, err, "unknown storage backend")

	c = memoryConfig()
	c.SessionBackend = "memcached"
	_, err = newApp(context.Background(), c, logging.NewNopLogger())
	assert.ErrorContains(t, err, "unknown session backend")
}

func TestNewApp_BadLogLevel(t *testing.T) {
	c := memoryConfig()
	c.LogLevel = "loud"
	_, err := NewApp(context.Background(), c)
	assert.ErrorContains(t, err, "unknown log level")
}

func TestNewApp_RedisUnavailable(t *testing.T) {
	c := memoryConfig()
	c.SessionBackend = config.BackendRedis
	c.RedisAddr = "127.0.0.1:1"

	_, err := newApp(context.Background(), c, logging.NewNopLogger())
	assert.Error(t, err)
}

func TestApp_ReadyWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	c := memoryConfig()
	c.SessionBackend = config.BackendRedis
	c.RedisAddr = mr.Addr()

	app, err := newApp(context.Background(), c, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(app.close)

	assert.NoError(t, app.ready(context.Background()))

	mr.Close()
	assert.Error(t, app.ready(context.Background()))
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := newApp(context.Background(), memoryConfig(), logging.NewNopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestApp_RunFailsWhenHTTPPortTaken(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lis.Close() })

	c := memoryConfig()
	c.EndpointAddrHTTP = lis.Addr().String()
	app, err := newApp(context.Background(), c, logging.NewNopLogger())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "http server")
	case <-time.After(5 * time.Second):
		t.Fatal("app kept running with a failed HTTP server")
	}
}
