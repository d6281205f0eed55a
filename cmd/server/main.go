package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sportshop/shop-system/internal/api"
	"github.com/sportshop/shop-system/internal/infrastructure/config"
	mongoshop "github.com/sportshop/shop-system/internal/infrastructure/db/mongo"
	redisshop "github.com/sportshop/shop-system/internal/infrastructure/db/redis"
	"github.com/sportshop/shop-system/internal/infrastructure/loginlog"
	"github.com/sportshop/shop-system/internal/infrastructure/queue"
	"github.com/sportshop/shop-system/pkg/logger"
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

	if cfg.JWTSecret == config.InsecureDefaultSecret {
		log.Warn().Msg("JWT_SECRET not set, running with the insecure default secret")
	}

	client, db, err := mongoshop.Connect(ctx, mongoshop.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisshop.Connect(ctx, redisshop.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	if err := mongoshop.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index bootstrap failed")
	}

	sink := loginlog.NewFileSink(cfg.LoginLogPath)
	dispatcher := queue.NewDispatcher(0, sink, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("auth_mode", cfg.AuthMode).Msg("shop server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
