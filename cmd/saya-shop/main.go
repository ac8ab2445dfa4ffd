// Package main Saya Shop API
//
// @title           Saya Shop API
// @version         1.0
// @description     Витрина игровой валюты с демонстрационной оплатой
// @termsOfService  http://swagger.io/terms/

// @contact.name   Saya Support
// @contact.email  gogleplaydonat1@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and visitor token.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/magabrotheeeer/saya-shop/docs"
	sayashop "github.com/magabrotheeeer/saya-shop/internal/app/saya-shop"
	"github.com/magabrotheeeer/saya-shop/internal/config"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	logger := sl.NewLogger(cfg.Env, os.Stdout)

	logger.Info("starting saya-shop", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := sayashop.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("saya-shop stopped gracefully")
}
