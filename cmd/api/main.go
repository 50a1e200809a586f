package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	api "todoapi/internal/adapter/http"
	"todoapi/pkg/config"
	"todoapi/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.Run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
