package queries

import (
	"context"
	"log/slog"
	"time"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/usecase/shared"
)

type AvailabilityQueries interface {
	// IsRoomAvailable is false when an active booking or a maintenance
	// window overlaps stay.
	IsRoomAvailable(ctx context.Context, roomID room.ID, stay booking.Stay) (bool, error)
	GetRoomStatus(ctx context.Context, roomID room.ID, date time.Time) (room.Status, error)
}

type availabilityQueriesImpl struct {
	repo   shared.AvailabilityRepository
	prices *shared.PriceBook
	logger *slog.Logger
}

func NewAvailabilityQueries(repo shared.AvailabilityRepository, prices *shared.PriceBook, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, prices: prices, logger: logger}
}

func (q *availabilityQueriesImpl) IsRoomAvailable(ctx context.Context, roomID room.ID, stay booking.Stay) (bool, error) {
	if _, err := q.prices.Room(roomID); err != nil {
		return false, err
	}
	var available bool
	err := shared.RetryUnavailable(ctx, q.logger, "availability.check", func() error {
		cal, err := q.repo.Calendar(ctx, roomID)
		if err != nil {
			return shared.ToDomainErr(err)
		}
		available = cal.IsAvailable(stay)
		return nil
	})
	return available, err
}

func (q *availabilityQueriesImpl) GetRoomStatus(ctx context.Context, roomID room.ID, date time.Time) (room.Status, error) {
	if _, err := q.prices.Room(roomID); err != nil {
		return "", err
	}
	var status room.Status
	err := shared.RetryUnavailable(ctx, q.logger, "availability.status", func() error {
		cal, err := q.repo.Calendar(ctx, roomID)
		if err != nil {
			return shared.ToDomainErr(err)
		}
		status = cal.StatusOn(booking.DateOf(date))
		return nil
	})
	return status, err
}
