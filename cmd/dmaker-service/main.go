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

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	httpapi "github.com/forsitet/developer-maker/internal/api/http"
	"github.com/forsitet/developer-maker/internal/config"
	"github.com/forsitet/developer-maker/internal/metrics"
	"github.com/forsitet/developer-maker/internal/repo/postgres"
	"github.com/forsitet/developer-maker/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("developer service stopped with error", "error", err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.ParseConfig()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)
	logger.Info("developer service starting", "addr", cfg.HTTPAddr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(connectCtx, cfg.DB, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := postgres.OpenDB(pool)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close db", "error", err.Error())
		}
	}()

	if err := postgres.RunMigrations(connectCtx, db, logger); err != nil {
		return err
	}

	developerRepo := postgres.NewDeveloperRepo(pool)
	retiredRepo := postgres.NewRetiredDeveloperRepo(pool)
	txManager := postgres.NewTxManager(pool)
	m := metrics.New(prometheus.DefaultRegisterer)

	app := service.NewApp(
		service.NewDeveloperService(developerRepo, retiredRepo, txManager, m, time.Now),
		service.NewStatsService(developerRepo, txManager),
	)

	server := httpapi.NewServer(app, logger)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           httpapi.NewRouter(server, logger, m, prometheus.DefaultGatherer),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("developer service stopped")
	return nil
}
