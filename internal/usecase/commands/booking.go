package commands

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/domain/workflow"
	reqdto "guesthouse-booking/internal/handler/dto/request"
	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitBookingResult struct {
	State     workflow.State
	BookingID uuid.UUID
	Message   string
}

type BookingCommands interface {
	// SubmitBooking runs the whole booking workflow for one request.
	SubmitBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*SubmitBookingResult, error)
	CreateBooking(ctx context.Context, req workflow.Request) (uuid.UUID, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, next booking.Status, actor string) (*booking.Period, error)
	ToggleBookingStatus(ctx context.Context, id uuid.UUID, actor string) (*booking.Period, error)
}

type bookingCommandsImpl struct {
	repo      shared.AvailabilityRepository
	prices    *shared.PriceBook
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewBookingCommands(
	repo shared.AvailabilityRepository,
	prices *shared.PriceBook,
	publisher shared.EventPublisher,
	clock clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:      repo,
		prices:    prices,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

func (b *bookingCommandsImpl) SubmitBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*SubmitBookingResult, error) {
	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	roomID, err := room.NewID(req.RoomID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	w := workflow.New()
	if err := w.SelectDates(checkIn, checkOut, booking.DateOf(b.clock.Now())); err != nil {
		return nil, err
	}
	if err := w.SelectRoom(roomID); err != nil {
		return nil, err
	}
	if err := w.EnterCustomerInfo(req.GuestName, req.GuestEmail, req.GuestPhone, req.PromoCode); err != nil {
		return nil, err
	}

	err = w.Submit(ctx, workflow.SubmitterFunc(b.CreateBooking))
	result := &SubmitBookingResult{
		State:     w.State(),
		BookingID: w.BookingID(),
		Message:   w.Message(),
	}
	return result, err
}

func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, req workflow.Request) (uuid.UUID, error) {
	if err := req.Stay.ValidateStartsFrom(booking.DateOf(b.clock.Now())); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}
	quote, err := b.prices.Quote(ctx, req.RoomID, req.Stay, req.PromoCode)
	if err != nil {
		return uuid.Nil, err
	}

	var created *booking.Period
	err = shared.RetryUnavailable(ctx, b.logger, "booking.create", func() error {
		return shared.ToDomainErr(b.repo.WithinRoom(ctx, req.RoomID, func(ctx context.Context, tx shared.RoomTx) error {
			cal, err := tx.Calendar(ctx)
			if err != nil {
				return err
			}
			if err := cal.CheckAvailable(req.Stay, uuid.Nil); err != nil {
				return err
			}

			p, err := booking.NewPeriod(req.RoomID, req.Stay, req.Guest, quote.Total, quote.PromoCode, b.clock.Now())
			if err != nil {
				return errs.Mark(err, errs.ErrValidation)
			}
			if err := tx.InsertBooking(ctx, p); err != nil {
				return err
			}
			if err := tx.AppendEvent(ctx, booking.CreatedEvent(p)); err != nil {
				return err
			}
			created = p
			return nil
		}))
	})
	if err != nil {
		return uuid.Nil, asConflict(err, req.RoomID, req.Stay)
	}

	b.logger.InfoContext(ctx, "booking created",
		slog.String("booking_id", created.ID().String()),
		slog.String("room_id", created.RoomID().String()),
		slog.String("stay", created.Stay().String()))

	shared.Publish(ctx, b.publisher, b.logger, shared.TopicBookingCreated, shared.BookingCreatedEvent{
		BookingID:  created.ID(),
		RoomID:     created.RoomID().String(),
		CheckIn:    booking.FormatDate(created.Stay().CheckIn()),
		CheckOut:   booking.FormatDate(created.Stay().CheckOut()),
		GuestName:  created.Guest().Name(),
		GuestEmail: created.Guest().Email(),
		GuestPhone: created.Guest().Phone(),
		Total:      created.Total().Millimes(),
		CreatedAt:  created.CreatedAt(),
	})
	return created.ID(), nil
}

func (b *bookingCommandsImpl) UpdateBookingStatus(ctx context.Context, id uuid.UUID, next booking.Status, actor string) (*booking.Period, error) {
	if !next.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidStatus, errs.ErrValidation)
	}
	return b.changeStatus(ctx, id, actor, func(booking.Status) (booking.Status, error) {
		return next, nil
	})
}

func (b *bookingCommandsImpl) ToggleBookingStatus(ctx context.Context, id uuid.UUID, actor string) (*booking.Period, error) {
	return b.changeStatus(ctx, id, actor, func(current booking.Status) (booking.Status, error) {
		next, err := current.Toggled()
		if err != nil {
			return "", errs.Mark(err, errs.ErrValidation)
		}
		return next, nil
	})
}

// changeStatus reads the booking again under the room lock, so decide sees
// the status no other writer can change before the save.
func (b *bookingCommandsImpl) changeStatus(
	ctx context.Context,
	id uuid.UUID,
	actor string,
	decide func(current booking.Status) (booking.Status, error),
) (*booking.Period, error) {
	var (
		updated *booking.Period
		from    booking.Status
	)
	err := shared.RetryUnavailable(ctx, b.logger, "booking.status", func() error {
		current, err := b.repo.FindBooking(ctx, id)
		if err != nil {
			return shared.ToDomainErr(err)
		}

		return shared.ToDomainErr(b.repo.WithinRoom(ctx, current.RoomID(), func(ctx context.Context, tx shared.RoomTx) error {
			p, err := tx.Booking(ctx, id)
			if err != nil {
				return err
			}
			from = p.Status()

			next, err := decide(from)
			if err != nil {
				return err
			}
			if !from.CanTransitionTo(next) {
				return errs.Mark(errs.Wrapf(booking.ErrInvalidTransition, "%s to %s", from, next), errs.ErrValidation)
			}

			if next == booking.StatusConfirmed {
				cal, err := tx.Calendar(ctx)
				if err != nil {
					return err
				}
				if err := cal.CheckAvailable(p.Stay(), p.ID()); err != nil {
					return err
				}
			}

			if err := p.TransitionTo(next, b.clock.Now()); err != nil {
				return errs.Mark(err, errs.ErrValidation)
			}
			if err := tx.SaveBookingStatus(ctx, p); err != nil {
				return err
			}
			if err := tx.AppendEvent(ctx, booking.StatusChangedEvent(p, from, actor)); err != nil {
				return err
			}
			updated = p
			return nil
		}))
	})
	if err != nil {
		var conflict *availability.ConflictError
		if errs.As(err, &conflict) {
			return nil, errs.Mark(err, errs.ErrConflict)
		}
		return nil, err
	}

	b.logger.InfoContext(ctx, "booking status changed",
		slog.String("booking_id", id.String()),
		slog.String("from", from.String()),
		slog.String("to", updated.Status().String()),
		slog.String("actor", actor))

	shared.Publish(ctx, b.publisher, b.logger, shared.TopicBookingStatusChanged, shared.BookingStatusChangedEvent{
		BookingID:  updated.ID(),
		RoomID:     updated.RoomID().String(),
		CheckIn:    booking.FormatDate(updated.Stay().CheckIn()),
		CheckOut:   booking.FormatDate(updated.Stay().CheckOut()),
		GuestName:  updated.Guest().Name(),
		GuestEmail: updated.Guest().Email(),
		From:       from.String(),
		To:         updated.Status().String(),
		Actor:      actor,
		At:         updated.UpdatedAt(),
	})
	return updated, nil
}

// asConflict gives every overlap the same shape, including the ones only
// the database constraint caught.
func asConflict(err error, roomID room.ID, stay booking.Stay) error {
	var conflict *availability.ConflictError
	if errs.As(err, &conflict) {
		return errs.Mark(err, errs.ErrConflict)
	}
	if errs.Is(err, errs.ErrConflict) {
		return errs.Mark(&availability.ConflictError{
			RoomID:    roomID,
			Requested: stay,
			Reason:    availability.ReasonBooked,
		}, errs.ErrConflict)
	}
	return err
}
