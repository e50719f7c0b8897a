// Package workflow drives one guest through date selection, room
// selection and contact details up to a submitted booking.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStep  = errors.New("action not allowed in the current booking step")
	ErrRoomRequired = errors.New("room id is required")
)

type State string

const (
	StateSelectingDates       State = "selecting_dates"
	StateSelectingRoom        State = "selecting_room"
	StateEnteringCustomerInfo State = "entering_customer_info"
	StateSubmitting           State = "submitting"
	StateConfirmed            State = "confirmed"
	StateFailed               State = "failed"
)

func (s State) String() string {
	return string(s)
}

type Request struct {
	RoomID    room.ID
	Stay      booking.Stay
	Guest     booking.Guest
	PromoCode string
}

type Submitter interface {
	Submit(ctx context.Context, req Request) (uuid.UUID, error)
}

type SubmitterFunc func(ctx context.Context, req Request) (uuid.UUID, error)

func (f SubmitterFunc) Submit(ctx context.Context, req Request) (uuid.UUID, error) {
	return f(ctx, req)
}

// Workflow is not safe for concurrent use; one instance serves one guest.
type Workflow struct {
	state     State
	stay      booking.Stay
	roomID    room.ID
	guest     booking.Guest
	promoCode string
	bookingID uuid.UUID
	message   string
	lastErr   error
}

func New() *Workflow {
	return &Workflow{state: StateSelectingDates}
}

func (w *Workflow) State() State         { return w.state }
func (w *Workflow) Stay() booking.Stay   { return w.stay }
func (w *Workflow) RoomID() room.ID      { return w.roomID }
func (w *Workflow) Guest() booking.Guest { return w.guest }
func (w *Workflow) BookingID() uuid.UUID { return w.bookingID }
func (w *Workflow) Message() string      { return w.message }
func (w *Workflow) Err() error           { return w.lastErr }

func (w *Workflow) SelectDates(checkIn, checkOut, today time.Time) error {
	if w.state != StateSelectingDates && w.state != StateSelectingRoom {
		return ErrInvalidStep
	}
	stay, err := booking.NewStay(checkIn, checkOut)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	if err := stay.ValidateStartsFrom(today); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	w.stay = stay
	w.message = ""
	w.state = StateSelectingRoom
	return nil
}

func (w *Workflow) SelectRoom(id room.ID) error {
	if w.state != StateSelectingRoom && w.state != StateEnteringCustomerInfo {
		return ErrInvalidStep
	}
	if id == "" {
		return errs.Mark(ErrRoomRequired, errs.ErrValidation)
	}
	w.roomID = id
	w.state = StateEnteringCustomerInfo
	return nil
}

func (w *Workflow) EnterCustomerInfo(name, email, phone, promoCode string) error {
	if w.state != StateEnteringCustomerInfo {
		return ErrInvalidStep
	}
	g, err := booking.NewGuest(name, email, phone)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	w.guest = g
	w.promoCode = promoCode
	return nil
}

// Submit creates the booking. A conflict sends the guest back to room
// selection; any other error leaves the workflow Failed so it can be
// submitted again.
func (w *Workflow) Submit(ctx context.Context, s Submitter) error {
	if w.state != StateEnteringCustomerInfo && w.state != StateFailed {
		return ErrInvalidStep
	}
	if w.guest == (booking.Guest{}) {
		return ErrInvalidStep
	}

	w.state = StateSubmitting
	w.lastErr = nil
	id, err := s.Submit(ctx, Request{RoomID: w.roomID, Stay: w.stay, Guest: w.guest, PromoCode: w.promoCode})
	if err != nil {
		w.lastErr = err
		var conflict *availability.ConflictError
		if errs.As(err, &conflict) {
			w.message = conflictMessage(conflict)
			w.state = StateSelectingRoom
			return err
		}
		w.message = "booking could not be completed, please try again"
		w.state = StateFailed
		return err
	}

	w.bookingID = id
	w.message = ""
	w.state = StateConfirmed
	return nil
}

// Back moves one step towards the start. It is refused once submission started.
func (w *Workflow) Back() error {
	switch w.state {
	case StateSelectingRoom:
		w.stay = booking.Stay{}
		w.state = StateSelectingDates
	case StateEnteringCustomerInfo:
		w.guest = booking.Guest{}
		w.promoCode = ""
		w.roomID = ""
		w.state = StateSelectingRoom
	default:
		return ErrInvalidStep
	}
	return nil
}

// Cancel discards everything collected so far.
func (w *Workflow) Cancel() error {
	switch w.state {
	case StateSubmitting, StateConfirmed:
		return ErrInvalidStep
	}
	*w = *New()
	return nil
}

func conflictMessage(c *availability.ConflictError) string {
	dates := c.UnavailableDates()
	if len(dates) == 0 {
		return fmt.Sprintf("room %s is no longer available for %s, please pick other dates", c.RoomID, c.Requested)
	}
	first, last := dates[0], dates[len(dates)-1]
	if first.Equal(last) {
		return fmt.Sprintf("room %s is not available on %s, please pick other dates", c.RoomID, booking.FormatDate(first))
	}
	return fmt.Sprintf("room %s is not available from %s to %s, please pick other dates",
		c.RoomID, booking.FormatDate(first), booking.FormatDate(last))
}
