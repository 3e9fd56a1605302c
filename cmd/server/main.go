package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pricelab/sales-tax-service/internal/config"
	"github.com/pricelab/sales-tax-service/internal/handlers"
	"github.com/pricelab/sales-tax-service/internal/logging"
	"github.com/pricelab/sales-tax-service/internal/server"
	"github.com/pricelab/sales-tax-service/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLogger := logging.New("sales-tax-service", "info", "json")
		bootLogger.Fatal().Err(err).Msg("Failed to load config")
	}

	logger := logging.New(cfg.App.Name, cfg.Log.Level, cfg.Log.Format)

	receiptService := service.NewReceiptService(logger)
	h := handlers.NewHandlers(receiptService, cfg, logger)
	srv := server.New(h, cfg, logger)

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Server starting")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
