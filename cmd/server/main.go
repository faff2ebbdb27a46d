package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vanshika/oraculo/internal/config"
	"github.com/vanshika/oraculo/internal/graph"
	"github.com/vanshika/oraculo/internal/logging"
	"github.com/vanshika/oraculo/internal/metrics"
	"github.com/vanshika/oraculo/internal/repository"
	"github.com/vanshika/oraculo/internal/server"
	"github.com/vanshika/oraculo/internal/service"
	"github.com/vanshika/oraculo/internal/telemetry"
	"github.com/vanshika/oraculo/internal/userstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run serves until ctx is done or the listener fails. Every resource it opens
// is released before it returns.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("flushing traces failed", "error", err)
		}
	}()

	graphClient, err := buildGraphClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create graph client: %w", err)
	}
	defer func() {
		if graphClient != nil {
			if err := graphClient.Close(context.Background()); err != nil {
				logger.Warn("closing graph client failed", "error", err)
			}
		}
	}()

	users, err := userstore.Open(ctx, cfg.Users.Driver, cfg.Users.DSN)
	if err != nil {
		return fmt.Errorf("open user store (driver %s): %w", cfg.Users.Driver, err)
	}
	defer func() {
		if err := users.Close(); err != nil {
			logger.Warn("closing user store failed", "error", err)
		}
	}()

	m := metrics.New()

	var archive service.ReadingArchive
	if graphClient != nil {
		archive = repository.New(graphClient)
	} else {
		logger.Info("reading archive disabled", "reason", "GRAPH_URI not set")
	}

	readingService := service.NewReadingService(archive, logger, m)
	userService := service.NewUserService(users, logger, m)

	var metricsHandler http.Handler
	if cfg.HTTP.MetricsEnabled {
		metricsHandler = m.Handler()
	}

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           server.GraphHealthService{Client: graphClient},
		Readings:         server.NewReadingHandlers(logger, readingService),
		Users:            server.NewUserHandlers(logger, userService),
		Metrics:          metricsHandler,
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowCredentials: true,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case serveErr = <-errCh:
		if serveErr != nil {
			serveErr = fmt.Errorf("server stopped unexpectedly: %w", serveErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	return serveErr
}

// buildGraphClient returns nil when no graph is configured.
func buildGraphClient(ctx context.Context, cfg config.Config) (graph.Client, error) {
	if !cfg.Graph.Enabled() {
		return nil, nil
	}

	opts := graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	}
	return graph.NewNeo4jClient(ctx, opts)
}
