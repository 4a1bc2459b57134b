package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"standeal-backend/config"
	"standeal-backend/internal/delivery/web"
	"standeal-backend/pkg/httpserver"
	"standeal-backend/pkg/leadclient"
	"standeal-backend/pkg/logger"
	"syscall"
	"time"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	if err := run(cfg); err != nil {
		logger.Log.Error("Web shell stopped", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Web shell exiting")
}

func run(cfg *config.Config) error {
	logger.Log.Info("Starting Standeal web shell", "port", cfg.WebPort, "backend", cfg.BackendURL)

	client := leadclient.New(cfg.BackendURL, leadclient.WithLogger(logger.Log))
	shell := web.NewShell(client, logger.Log)

	// Company info is read once; a failure leaves the page in its loading state
	fetchCtx, cancelFetch := context.WithTimeout(context.Background(), 10*time.Second)
	shell.LoadCompanyInfo(fetchCtx)
	cancelFetch()

	router, err := web.NewRouter(shell)
	if err != nil {
		return fmt.Errorf("build web router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.WebPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := httpserver.Serve(ctx, srv, 5*time.Second); err != nil {
		return err
	}
	logger.Log.Info("Shutting down web shell...")
	return nil
}
