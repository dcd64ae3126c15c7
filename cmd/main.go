package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwrk-planet/board-service/internal/config"
	"github.com/cwrk-planet/board-service/internal/pg"
	"github.com/cwrk-planet/board-service/internal/repository/postgres"
	httpserver "github.com/cwrk-planet/board-service/internal/server/http"
	"github.com/cwrk-planet/board-service/internal/service"
	transport "github.com/cwrk-planet/board-service/internal/transport/http"
	"github.com/cwrk-planet/board-service/pkg/logger"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func main() {
	// 1) config
	cfg, err := config.LoadConfig()
	if err != nil {
		println("failed to load config:", err.Error())
		os.Exit(1)
	}

	// 2) logger (slog.SetDefault)
	logger.Init(logger.Config{
		Env:       logger.ParseEnv(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		Level:     logger.ParseLevel(cfg.Logging.Level),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting board-service", "env", cfg.Logging.Env, "version", cfg.Logging.Version)

	// 2.1) tracing: без экспортера, span-ы нужны для trace_id в логах
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	defer func() {
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(shCtx)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3) postgres
	if cfg.Postgres.Migrate {
		if err := pg.Migrate(cfg.Postgres.DSN); err != nil {
			slog.Error("postgres migrate failed", "err", err)
			os.Exit(1)
		}
	}
	pool, err := pg.NewPool(ctx, cfg.Postgres.ToPGConfig())
	if err != nil {
		slog.Error("postgres connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 4) repos + services
	accounts := service.NewAccountService(postgres.NewAccountRepoFromPool(pool))
	messages := service.NewMessageService(postgres.NewMessageRepoFromPool(pool))

	// 5) router + server
	router := transport.NewRouter(transport.Deps{
		Accounts:       accounts,
		Messages:       messages,
		DB:             pool,
		Tracer:         tp,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})

	srv := httpserver.New(httpserver.Config{
		Addr:            cfg.HTTP.Addr,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		IdleTimeout:     cfg.HTTP.IdleTimeout,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}, router)

	// 6) graceful shutdown
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server stopped with error", "err", err)
		os.Exit(1)
	}

	slog.Info("board-service stopped")
}
