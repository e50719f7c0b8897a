package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"guesthouse-booking/internal/pkg/config"
	"guesthouse-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes one envelope. Returning an error drops the message.
type Handler func(ctx context.Context, env Envelope) error

type Consumer struct {
	url      string
	queue    string
	prefetch int
	logger   *slog.Logger
}

func NewConsumer(cfg config.AMQPConfig, logger *slog.Logger) *Consumer {
	return &Consumer{url: cfg.URL, queue: cfg.Queue, prefetch: 50, logger: logger}
}

// Run consumes until ctx is done, reconnecting with backoff when the broker
// goes away.
func (c *Consumer) Run(ctx context.Context, h Handler) error {
	backoff := time.Second
	for {
		err := c.consume(ctx, h)
		if ctx.Err() != nil {
			return nil
		}
		c.logger.Warn("consumer disconnected",
			slog.String("error", errString(err)),
			slog.Duration("retry_in", backoff))

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func (c *Consumer) consume(ctx context.Context, h Handler) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return errs.Wrap(err, "amqp dial")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "amqp channel")
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "amqp queue declare")
	}
	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return errs.Wrap(err, "amqp qos")
	}
	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "amqp consume")
	}
	c.logger.Info("consuming", slog.String("queue", c.queue))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errs.New("delivery channel closed")
			}
			c.handle(ctx, d, h)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery, h Handler) {
	var env Envelope
	if err := json.Unmarshal(d.Body, &env); err != nil {
		c.logger.Error("malformed message", slog.String("error", err.Error()))
		_ = d.Nack(false, false)
		return
	}
	if err := h(ctx, env); err != nil {
		c.logger.Error("handler failed",
			slog.String("topic", env.Topic),
			slog.String("error", err.Error()))
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
