// Package main is the entry point for the TrailConnect web gateway.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trailconnect/web-gateway/internal/api"
	"github.com/trailconnect/web-gateway/internal/infrastructure/backend"
	"github.com/trailconnect/web-gateway/internal/infrastructure/config"
	infraredis "github.com/trailconnect/web-gateway/internal/infrastructure/db/redis"
	"github.com/trailconnect/web-gateway/internal/infrastructure/queue"
	"github.com/trailconnect/web-gateway/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := infraredis.Connect(ctx, cfg.Redis, logger.For("redis"))
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger.For("backend"))
	cache := infraredis.NewDirectoryCache(rdb, cfg.Redis.CacheTTL, logger.For("cache"))

	guideAPI := backend.NewGuideAPI(client)
	trekAPI := backend.NewTrekAPI(client)
	refresher := queue.NewRefresher(0, guideAPI, trekAPI, cache, cfg.Redis.RefreshInterval, logger.For("refresher"))
	refresher.Start(ctx)

	e := api.NewRouter(cfg, client, rdb, cache, logger.For("api"))

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
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
