package shared

import (
	"context"
	"log/slog"
)

// Publish sends an event after the write it describes has committed.
// Failures are logged and never reach the caller.
func Publish(ctx context.Context, publisher EventPublisher, logger *slog.Logger, topic string, payload any) {
	if err := publisher.Publish(ctx, topic, payload); err != nil {
		logger.WarnContext(ctx, "event publish failed", slog.String("topic", topic), slog.String("error", err.Error()))
	}
}
