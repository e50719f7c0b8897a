package booking

import (
	"time"

	"github.com/google/uuid"
)

const ActorGuest = "guest"

// Event is one row of a booking's audit trail. From is empty on creation.
type Event struct {
	BookingID uuid.UUID
	From      Status
	To        Status
	Actor     string
	At        time.Time
}

func CreatedEvent(p *Period) Event {
	return Event{
		BookingID: p.ID(),
		To:        p.Status(),
		Actor:     ActorGuest,
		At:        p.CreatedAt(),
	}
}

func StatusChangedEvent(p *Period, from Status, actor string) Event {
	return Event{
		BookingID: p.ID(),
		From:      from,
		To:        p.Status(),
		Actor:     actor,
		At:        p.UpdatedAt(),
	}
}
