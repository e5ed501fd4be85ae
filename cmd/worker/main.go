package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go-clothing-store/internal/app"
	"go-clothing-store/internal/config"
	"go-clothing-store/internal/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	l, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer l.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunWorker(ctx, cfg, l); err != nil {
		l.Fatal("worker failed", zap.Error(err))
	}
}
