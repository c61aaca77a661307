// Command mailworker drains the outbound mail queue into SMTP.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/infra/mailer"
	"room-reservation/internal/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := mailer.NewWorker(mailer.NewSMTPSender(cfg.Mail), logger)
	if err := worker.Consume(ctx, cfg.Mail.AMQPURL, cfg.Mail.Queue); err != nil && ctx.Err() == nil {
		logger.Error("mail worker stopped", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
	logger.Info("mail worker stopped")
}
