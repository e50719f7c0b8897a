// Command notifier consumes booking and contact events from RabbitMQ and
// writes the resulting mails to the outbox file.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"guesthouse-booking/internal/handler/middleware"
	"guesthouse-booking/internal/infra/messaging"
	"guesthouse-booking/internal/notify"
	"guesthouse-booking/internal/pkg/config"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// settings is the subset of the API configuration the notifier needs, so
// PORT and JWT_SECRET are not required here.
type settings struct {
	Log    config.LogConfig
	AMQP   config.AMQPConfig
	Outbox config.OutboxConfig
}

func loadConfig() (settings, error) {
	var s settings
	err := envconfig.Process("", &s)
	return s, err
}

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if cfg.AMQP.URL == "" {
		logger.Error("AMQP_URL is required")
		os.Exit(1)
	}

	outbox := notify.NewOutbox(cfg.Outbox)
	defer outbox.Close()
	n := notify.NewNotifier(outbox, cfg.Outbox.AdminEmail, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("notifier started", "queue", cfg.AMQP.Queue, "outbox", cfg.Outbox.Path)
	if err := messaging.NewConsumer(cfg.AMQP, logger).Run(ctx, n.Handle); err != nil {
		logger.Error("consumer failed", "error", err)
		os.Exit(1)
	}
	logger.Info("notifier stopped")
}
