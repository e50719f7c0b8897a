package booking

import (
	"time"

	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/room"

	"github.com/google/uuid"
)

// Period is one reservation of a room over a stay.
type Period struct {
	id        uuid.UUID
	roomID    room.ID
	stay      Stay
	guest     Guest
	status    Status
	total     money.Money
	promoCode string
	createdAt time.Time
	updatedAt time.Time
}

func NewPeriod(roomID room.ID, stay Stay, guest Guest, total money.Money, promoCode string, now time.Time) (*Period, error) {
	if stay.IsZero() {
		return nil, ErrCheckOutNotAfter
	}
	if total.IsNegative() {
		return nil, money.ErrNegativeAmount
	}
	return &Period{
		id:        uuid.New(),
		roomID:    roomID,
		stay:      stay,
		guest:     guest,
		status:    StatusPending,
		total:     total,
		promoCode: promoCode,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPeriod(
	id uuid.UUID,
	roomID room.ID,
	stay Stay,
	guest Guest,
	status Status,
	total money.Money,
	promoCode string,
	createdAt, updatedAt time.Time,
) *Period {
	return &Period{
		id:        id,
		roomID:    roomID,
		stay:      stay,
		guest:     guest,
		status:    status,
		total:     total,
		promoCode: promoCode,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// TransitionTo moves the period to next. Availability for
// pending->confirmed is the caller's job, under the room lock.
func (p *Period) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !p.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	p.status = next
	p.updatedAt = now
	return nil
}

func (p *Period) IsActive() bool {
	return p.status.IsActive()
}

func (p *Period) Clone() *Period {
	c := *p
	return &c
}

func (p *Period) ID() uuid.UUID        { return p.id }
func (p *Period) RoomID() room.ID      { return p.roomID }
func (p *Period) Stay() Stay           { return p.stay }
func (p *Period) Guest() Guest         { return p.guest }
func (p *Period) Status() Status       { return p.status }
func (p *Period) Total() money.Money   { return p.total }
func (p *Period) PromoCode() string    { return p.promoCode }
func (p *Period) CreatedAt() time.Time { return p.createdAt }
func (p *Period) UpdatedAt() time.Time { return p.updatedAt }
