package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"standeal-backend/config"
	"standeal-backend/internal/notify"
	"standeal-backend/pkg/email"
	"standeal-backend/pkg/logger"
	"standeal-backend/pkg/redis"
	"syscall"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	redisOpts, err := redis.AsynqOptions(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		logger.Log.Error("The notification worker needs REDIS_URL", "error", err)
		os.Exit(1)
	}

	mailer := email.NewMailer(cfg, logger.Log)
	worker, err := notify.NewWorker(notify.WorkerConfig{
		RedisOpts: redisOpts,
		Logger:    logger.Log,
		Handler:   notify.NewEmailHandler(mailer, logger.Log),
	})
	if err != nil {
		logger.Log.Error("Failed to build worker", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := worker.Run(ctx); err != nil {
		logger.Log.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Worker exiting")
}
