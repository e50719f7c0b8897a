package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/pkg/config"
	"guesthouse-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	url    string
	queue  string
	clock  clock.Clock
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher dials the broker and declares the durable events queue.
func NewPublisher(cfg config.AMQPConfig, clk clock.Clock, logger *slog.Logger) (*Publisher, error) {
	p := &Publisher{url: cfg.URL, queue: cfg.Queue, clock: clk, logger: logger}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "amqp dial")
	}
	p.conn = conn
	if err := p.openChannel(); err != nil {
		_ = conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

func (p *Publisher) openChannel() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "amqp channel")
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return errs.Wrap(err, "amqp queue declare")
	}
	p.ch = ch
	return nil
}

// ensureChannel redials after a connection loss and reopens the channel
// after a channel-level exception, which leaves the connection open.
func (p *Publisher) ensureChannel() error {
	if p.conn == nil || p.conn.IsClosed() {
		return p.connect()
	}
	if p.ch == nil || p.ch.IsClosed() {
		p.logger.Warn("reopening amqp channel", slog.String("queue", p.queue))
		return p.openChannel()
	}
	return nil
}

func (p *Publisher) Publish(ctx context.Context, topic string, payload any) error {
	env, err := NewEnvelope(topic, payload, p.clock.Now())
	if err != nil {
		return errs.Wrap(err, "encode event payload")
	}
	body, err := json.Marshal(env)
	if err != nil {
		return errs.Wrap(err, "encode envelope")
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         topic,
		Timestamp:    env.At,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for attempt := 0; ; attempt++ {
		if err := p.ensureChannel(); err != nil {
			return err
		}
		err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
		if err == nil {
			return nil
		}
		// the channel may have died since the check; one more try on a fresh one
		if attempt > 0 || !errs.Is(err, amqp.ErrClosed) {
			return errs.Wrapf(err, "publish %s", topic)
		}
	}
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn.Close()
	}
	return nil
}

// LogPublisher stands in for the broker when AMQP_URL is empty.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "encode event payload")
	}
	p.logger.InfoContext(ctx, "event", slog.String("topic", topic), slog.String("payload", string(raw)))
	return nil
}
