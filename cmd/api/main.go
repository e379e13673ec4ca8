package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskhive/todo-api/internal/api"
	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/infrastructure/config"
	mongodb "github.com/taskhive/todo-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhive/todo-api/internal/infrastructure/db/redis"
	"github.com/taskhive/todo-api/internal/infrastructure/queue"
	"github.com/taskhive/todo-api/pkg/logger"
)

// @title           Todo Service API
// @version         1.0
// @description     Multi-tenant todo service with token authentication and role-gated admin access.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	policy, err := domain.ParsePolicy(cfg.AuthPolicy)
	if err != nil {
		log.Fatal().Err(err).Str("policy", cfg.AuthPolicy).Msg("invalid AUTH_POLICY")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// Redis only backs the login throttle, which fails open; a missing
	// redis degrades the service instead of stopping it.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, mongodb.NewAuditRepository(db), log)
	dispatcher.Start(runCtx)

	e := api.NewRouter(db, rdb, dispatcher, policy, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("policy", string(policy)).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	cancel()
}
