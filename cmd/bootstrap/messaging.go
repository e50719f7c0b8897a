package bootstrap

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/infra/messaging"
	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/pkg/config"
	"guesthouse-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL not set, events are only logged")
		return messaging.NewLogPublisher(logger), nil
	}

	p, err := messaging.NewPublisher(cfg.AMQP, clk, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}
