package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/campushq/student-admin-api/internal/api"
	"github.com/campushq/student-admin-api/internal/infrastructure/config"
	mongodb "github.com/campushq/student-admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campushq/student-admin-api/internal/infrastructure/db/redis"
	"github.com/campushq/student-admin-api/internal/infrastructure/queue"
	"github.com/campushq/student-admin-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Store handles: created once, released on shutdown ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	// Unique indexes are the authoritative guard for the email/username
	// uniqueness invariants; create them before serving traffic.
	if err := mongodb.NewAuthRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewStudentRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("student index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Audit trail workers ---
	// The workers run on their own context so a shutdown signal does not kill
	// them while the HTTP server is still draining requests; Stop flushes the
	// buffered events once Echo has stopped.
	auditRepo := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewDispatcher(0, auditRepo, log)
	dispatcher.Start(context.Background())

	e := api.NewRouter(db, rdb, cfg.CORSOrigin, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	dispatcher.Stop()
}
