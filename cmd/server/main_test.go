package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/oraculo/internal/config"
	"github.com/vanshika/oraculo/internal/logging"
)

func testConfig(port int) config.Config {
	return config.Config{
		HTTP: config.HTTPConfig{
			Host:            "127.0.0.1",
			Port:            port,
			ShutdownTimeout: time.Second,
		},
		Users: config.UsersConfig{Driver: "memory"},
	}
}

func TestRunStopsWhenContextIsDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, testConfig(0), logging.Discard()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestRunReturnsStartupErrors(t *testing.T) {
	cfg := testConfig(0)
	cfg.Users = config.UsersConfig{Driver: "oracle", DSN: "x"}

	err := run(context.Background(), cfg, logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open user store")
}

func TestRunReturnsListenErrors(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	err = run(context.Background(), testConfig(port), logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server stopped unexpectedly")
}
