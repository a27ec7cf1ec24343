package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"go-resume-finder/internal/config"
	"go-resume-finder/internal/finder"
	"go-resume-finder/internal/logger"
	"go-resume-finder/internal/telegram"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zl.Sync()
	slog := zl.Sugar()

	if cfg.TelegramToken == "" {
		slog.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	bot, err := telegram.New(cfg.TelegramToken, finder.New(cfg, slog), slog)
	if err != nil {
		slog.Fatalw("failed to init bot", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Fatalw("bot stopped", "error", err)
	}
}
