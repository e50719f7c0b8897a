package availability

import (
	"errors"
	"strings"
	"time"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"

	"github.com/google/uuid"
)

var ErrReasonTooLong = errors.New("maintenance reason must be at most 200 characters")

// Maintenance blocks a room over a window of nights regardless of bookings.
type Maintenance struct {
	id        uuid.UUID
	roomID    room.ID
	window    booking.Stay
	reason    string
	createdAt time.Time
}

func NewMaintenance(roomID room.ID, window booking.Stay, reason string, now time.Time) (*Maintenance, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) > 200 {
		return nil, ErrReasonTooLong
	}
	if window.IsZero() {
		return nil, booking.ErrCheckOutNotAfter
	}
	return &Maintenance{
		id:        uuid.New(),
		roomID:    roomID,
		window:    window,
		reason:    reason,
		createdAt: now,
	}, nil
}

func ReconstructMaintenance(id uuid.UUID, roomID room.ID, window booking.Stay, reason string, createdAt time.Time) *Maintenance {
	return &Maintenance{id: id, roomID: roomID, window: window, reason: reason, createdAt: createdAt}
}

func (m *Maintenance) ID() uuid.UUID        { return m.id }
func (m *Maintenance) RoomID() room.ID      { return m.roomID }
func (m *Maintenance) Window() booking.Stay { return m.window }
func (m *Maintenance) Reason() string       { return m.reason }
func (m *Maintenance) CreatedAt() time.Time { return m.createdAt }
