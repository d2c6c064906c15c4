package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"poolbalance/internal/calculator"
	"poolbalance/internal/config"
	"poolbalance/internal/observability"
	"poolbalance/internal/pools"
	"poolbalance/internal/server"
	"poolbalance/internal/store"
)

func main() {

	ctx := context.Background()

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	// Logger, tracing, OTLP log export
	telemetryShutdown, err := observability.Setup(ctx, observability.Options{
		LogLevel:    cfg.Service.LogLevel,
		OTLPEnabled: cfg.Service.OtelEnabled,
	})
	if err != nil {
		panic(err)
	}
	defer telemetryShutdown(ctx)

	// Metrics
	if err := initMetrics(); err != nil {
		observability.Logger.Fatal("init metrics", zap.Error(err))
	}

	// Store
	db, err := store.InitDB(cfg)
	if err != nil {
		observability.Logger.Fatal("init database", zap.Error(err))
	}
	s := store.NewStore(db)
	defer s.Close()

	if err := s.Migrate(); err != nil {
		observability.Logger.Fatal("migrate database", zap.Error(err))
	}

	if err := observability.RegisterCollector(pools.NewStoredProfilesCollector(s.Pool())); err != nil {
		observability.Logger.Fatal("register collectors", zap.Error(err))
	}

	// Router
	router := server.NewRouter(server.Dependencies{
		Calculator:  calculator.NewHandler(s.Pool(), cfg.Service.NotesLanguage),
		Pools:       pools.NewHandler(s.Pool()),
		CORSOrigins: cfg.Service.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Service.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("address", cfg.Service.Address),
			zap.String("database", cfg.Database.Type),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv, cfg.Service.ShutdownTimeout)
}

func waitForShutdown(srv *http.Server, timeout time.Duration) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Error("graceful shutdown failed", zap.Error(err))
	}
	observability.Logger.Info("server stopped")
}
