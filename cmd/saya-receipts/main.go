package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/saya-shop/internal/app/receipts"
	"github.com/magabrotheeeer/saya-shop/internal/config"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	logger := sl.NewLogger(cfg.Env, os.Stdout)

	logger.Info("starting receipts worker", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := receipts.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize receipts app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("receipts app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("receipts app stopped gracefully")
}
