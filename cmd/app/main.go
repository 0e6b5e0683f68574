package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pizzeria/cmd"
	httpin "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/adapters/out/redis"
	"pizzeria/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		log.Fatalf("Service stopped: %v", err)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	db, err := postgres.Open(configs.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer sqlDB.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	publisher, closePublisher, err := cmd.NewEventPublisher(configs, registry, logger)
	if err != nil {
		return fmt.Errorf("create event publisher: %w", err)
	}
	defer func() {
		if err := closePublisher(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	cursor, closeCursor, err := dispatchCursor(ctx, configs)
	if err != nil {
		return err
	}
	defer closeCursor()

	app, err := cmd.NewCompositionRoot(configs, db, publisher, cursor, logger)
	if err != nil {
		return fmt.Errorf("compose application: %w", err)
	}

	e, err := httpin.NewRouter(app.CreateServer(), registry, logger)
	if err != nil {
		return fmt.Errorf("create router: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return startWebServer(e, configs.HTTPPort, logger)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP server")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func startWebServer(e *echo.Echo, port string, logger *slog.Logger) error {
	addr := fmt.Sprintf("0.0.0.0:%s", port)
	logger.Info("HTTP server listening", "addr", addr)

	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// dispatchCursor returns nil for the Postgres backend; the unit of work then
// uses its transactional cursor.
func dispatchCursor(ctx context.Context, configs cmd.Config) (ports.DispatchCursor, func(), error) {
	if configs.CursorBackend != cmd.CursorBackendRedis {
		return nil, func() {}, nil
	}

	client, err := redis.NewClient(ctx, configs.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	return redis.NewDispatchCursor(client), func() { _ = client.Close() }, nil
}
