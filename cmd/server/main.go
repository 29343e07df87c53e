package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trendythreads/storefront/internal/api"
	"github.com/trendythreads/storefront/internal/core/service"
	storemongo "github.com/trendythreads/storefront/internal/infrastructure/db/mongo"
	storeredis "github.com/trendythreads/storefront/internal/infrastructure/db/redis"
	"github.com/trendythreads/storefront/internal/pkg/config"
	"github.com/trendythreads/storefront/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A failed ping is logged but not fatal: the driver reconnects lazily
	// and the storefront keeps serving while the store recovers.
	client, db, err := storemongo.Connect(ctx, storemongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		if client == nil {
			log.Fatal().Err(err).Msg("mongodb client could not be built")
		}
		log.Error().Err(err).Msg("mongodb unreachable at startup, continuing")
	}
	defer func() {
		if client != nil {
			_ = client.Disconnect(context.Background())
		}
	}()

	rdb, err := storeredis.Connect(ctx, storeredis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Error().Err(err).Msg("redis unreachable at startup, continuing")
	}
	defer func() { _ = rdb.Close() }()

	// Index bootstrap and catalog seeding are best-effort at startup;
	// both are idempotent.
	users := storemongo.NewUserRepository(db)
	carts := storemongo.NewCartRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("user index bootstrap failed")
	}
	if err := carts.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("cart index bootstrap failed")
	}

	catalog := service.NewCatalogService(storemongo.NewProductRepository(db), log)
	if err := catalog.EnsureSeeded(ctx); err != nil {
		log.Warn().Err(err).Msg("catalog seeding failed")
	}

	e, err := api.NewRouter(api.Deps{
		Mongo:         db,
		Redis:         rdb,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		Logger:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("storefront listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
