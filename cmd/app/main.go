package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/migrations"
	"fulfillment/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const serviceName = "fulfillment"

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := logging.New(configs.LogLevel)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, logger); err != nil {
		logger.Fatal("service stopped", zap.Error(err))
	}
}

func run(ctx context.Context, configs cmd.Config, logger *zap.Logger) error {
	shutdownTracing, err := cmd.InitTracing(ctx, serviceName, configs.OtelEnabled)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if shutdownErr := shutdownTracing(context.Background()); shutdownErr != nil {
			logger.Warn("flush traces", zap.Error(shutdownErr))
		}
	}()

	if err = migrations.Up(ctx, configs.DSN()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Warn("close event sink", zap.Error(closeErr))
		}
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	server, err := app.CreateServer()
	if err != nil {
		return err
	}
	e, err := httpin.NewRouter(server, logger)
	if err != nil {
		return err
	}

	return startWebServer(ctx, e, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("port", port))
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down http server")
	return e.Shutdown(shutdownCtx)
}
