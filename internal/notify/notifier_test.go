//go:build unit

package notify_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"guesthouse-booking/internal/infra/messaging"
	"guesthouse-booking/internal/notify"
	"guesthouse-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope(t *testing.T, topic string, payload any) messaging.Envelope {
	t.Helper()
	env, err := messaging.NewEnvelope(topic, payload, time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return env
}

func TestNotifier_Handle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	id := uuid.MustParse("7b1e3c2a-4d5f-4a6b-8c9d-0e1f2a3b4c5d")

	t.Run("booking created writes guest and admin mails", func(t *testing.T) {
		var out bytes.Buffer
		n := notify.NewNotifier(&out, "desk@guesthouse.tn", logger)

		err := n.Handle(context.Background(), envelope(t, shared.TopicBookingCreated, shared.BookingCreatedEvent{
			BookingID:  id,
			RoomID:     "ch-11",
			CheckIn:    "2024-07-05",
			CheckOut:   "2024-07-07",
			GuestName:  "Amel",
			GuestEmail: "amel@example.com",
			GuestPhone: "+21620123456",
			Total:      400000,
		}))
		require.NoError(t, err)

		got := out.String()
		assert.Contains(t, got, "To: amel@example.com")
		assert.Contains(t, got, "To: desk@guesthouse.tn")
		assert.Contains(t, got, "Total: 400.000 TND")
		assert.Equal(t, 2, strings.Count(got, "-----\n"))
	})

	t.Run("status change writes guest mail", func(t *testing.T) {
		var out bytes.Buffer
		n := notify.NewNotifier(&out, "desk@guesthouse.tn", logger)

		err := n.Handle(context.Background(), envelope(t, shared.TopicBookingStatusChanged, shared.BookingStatusChangedEvent{
			BookingID:  id,
			RoomID:     "ch-11",
			CheckIn:    "2024-07-05",
			CheckOut:   "2024-07-07",
			GuestName:  "Amel",
			GuestEmail: "amel@example.com",
			From:       "pending",
			To:         "confirmed",
		}))
		require.NoError(t, err)
		assert.Contains(t, out.String(), "is now confirmed")
	})

	t.Run("contact message omits empty phone", func(t *testing.T) {
		var out bytes.Buffer
		n := notify.NewNotifier(&out, "desk@guesthouse.tn", logger)

		err := n.Handle(context.Background(), envelope(t, shared.TopicContactReceived, shared.ContactReceivedEvent{
			MessageID: id,
			Name:      "Sami",
			Email:     "sami@example.com",
			Message:   "Do you have parking?",
		}))
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Reply-To: sami@example.com")
		assert.NotContains(t, out.String(), "Phone:")
	})

	t.Run("unknown topic is skipped", func(t *testing.T) {
		var out bytes.Buffer
		n := notify.NewNotifier(&out, "desk@guesthouse.tn", logger)

		require.NoError(t, n.Handle(context.Background(), envelope(t, "room.painted", map[string]string{})))
		assert.Empty(t, out.String())
	})

	t.Run("malformed payload", func(t *testing.T) {
		var out bytes.Buffer
		n := notify.NewNotifier(&out, "desk@guesthouse.tn", logger)

		env := messaging.Envelope{Topic: shared.TopicBookingCreated, Payload: []byte(`"oops"`)}
		assert.Error(t, n.Handle(context.Background(), env))
		assert.Empty(t, out.String())
	})
}
