package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jengzang/borough-records-go/internal/api"
	"github.com/jengzang/borough-records-go/internal/config"
	"github.com/jengzang/borough-records-go/internal/dataset"
	"github.com/jengzang/borough-records-go/internal/loader"
	"github.com/jengzang/borough-records-go/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := loader.Open(cfg.DataSource, cfg.DataPath, cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeSource()

	provider := dataset.NewProvider(source, logger)

	// Load up front so a broken source fails at startup rather than on the first request
	if _, err := provider.Snapshot(); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gin.SetMode(gin.ReleaseMode)
	router := api.SetupRouter(ctx, cfg, api.Dependencies{
		Logger:   logger,
		Provider: provider,
		Registry: registry,
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"addr", cfg.Port,
			"source", cfg.DataSource,
			"auth", cfg.AuthEnabled(),
			"rate_limit", cfg.RateLimit)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
