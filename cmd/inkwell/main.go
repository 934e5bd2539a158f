package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	adapthttp "inkwell/internal/adapter/http"
	"inkwell/internal/adapter/sqlite"
	"inkwell/internal/app"
	"inkwell/internal/config"
	"inkwell/internal/httpserver"
	"inkwell/internal/logutil"
	"inkwell/internal/token"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("db", cfg.DBPath).Msg("open store")
	}
	defer func() { _ = store.Close() }()

	codec := token.New(cfg.Secret, cfg.TokenTTL)
	authSvc := app.NewAuthService(store, codec, cfg.BcryptCost)
	postSvc := app.NewPostService(store.Posts())

	srv := adapthttp.New(authSvc, postSvc, codec, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logutil.WithLogger(ctx, logger)

	if err := httpserver.Serve(ctx, cfg.Addr, srv.Handler()); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
