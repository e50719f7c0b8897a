// Package notify turns domain events into guest and admin mails. Mails are
// written to a rotating outbox file that the mail relay picks up.
package notify

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"text/template"

	"guesthouse-booking/internal/infra/messaging"
	"guesthouse-booking/internal/pkg/config"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/shared"

	"gopkg.in/natefinch/lumberjack.v2"
)

const separator = "----------------------------------------\n"

type Notifier struct {
	out        io.Writer
	adminEmail string
	logger     *slog.Logger
	mu         sync.Mutex
}

func NewOutbox(cfg config.OutboxConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
}

func NewNotifier(out io.Writer, adminEmail string, logger *slog.Logger) *Notifier {
	return &Notifier{out: out, adminEmail: adminEmail, logger: logger}
}

// Handle matches messaging.Handler. Unknown topics are acknowledged and
// skipped.
func (n *Notifier) Handle(ctx context.Context, env messaging.Envelope) error {
	switch env.Topic {
	case shared.TopicBookingCreated:
		var ev shared.BookingCreatedEvent
		if err := env.Decode(&ev); err != nil {
			return errs.Wrap(err, "decode booking.created")
		}
		data := struct {
			shared.BookingCreatedEvent
			AdminEmail string
		}{ev, n.adminEmail}
		return n.write(mail{guestBookingTmpl, data}, mail{adminBookingTmpl, data})

	case shared.TopicBookingStatusChanged:
		var ev shared.BookingStatusChangedEvent
		if err := env.Decode(&ev); err != nil {
			return errs.Wrap(err, "decode booking.status_changed")
		}
		return n.write(mail{guestStatusTmpl, ev})

	case shared.TopicContactReceived:
		var ev shared.ContactReceivedEvent
		if err := env.Decode(&ev); err != nil {
			return errs.Wrap(err, "decode contact.received")
		}
		data := struct {
			shared.ContactReceivedEvent
			AdminEmail string
		}{ev, n.adminEmail}
		return n.write(mail{adminContactTmpl, data})

	default:
		n.logger.DebugContext(ctx, "ignoring event", slog.String("topic", env.Topic))
		return nil
	}
}

type mail struct {
	tmpl *template.Template
	data any
}

// write renders all mails before touching the outbox so a template error
// never leaves half an entry behind.
func (n *Notifier) write(mails ...mail) error {
	var b strings.Builder
	for _, m := range mails {
		if err := m.tmpl.Execute(&b, m.data); err != nil {
			return errs.Wrapf(err, "render %s", m.tmpl.Name())
		}
		b.WriteString(separator)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := io.WriteString(n.out, b.String()); err != nil {
		return errs.Wrap(err, "write outbox")
	}
	return nil
}
