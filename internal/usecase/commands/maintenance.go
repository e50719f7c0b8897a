package commands

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/room"
	reqdto "guesthouse-booking/internal/handler/dto/request"
	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaintenanceCommands manages the manual maintenance list. A window may
// cover nights that are already booked; those bookings stay untouched but
// can no longer be confirmed.
type MaintenanceCommands interface {
	AddMaintenance(ctx context.Context, roomID room.ID, req reqdto.CreateMaintenanceRequest) (*availability.Maintenance, error)
	RemoveMaintenance(ctx context.Context, id uuid.UUID) error
}

type maintenanceCommandsImpl struct {
	repo   shared.AvailabilityRepository
	prices *shared.PriceBook
	clock  clock.Clock
	logger *slog.Logger
}

func NewMaintenanceCommands(repo shared.AvailabilityRepository, prices *shared.PriceBook, clock clock.Clock, logger *slog.Logger) MaintenanceCommands {
	return &maintenanceCommandsImpl{repo: repo, prices: prices, clock: clock, logger: logger}
}

func (m *maintenanceCommandsImpl) AddMaintenance(ctx context.Context, roomID room.ID, req reqdto.CreateMaintenanceRequest) (*availability.Maintenance, error) {
	if _, err := m.prices.Room(roomID); err != nil {
		return nil, err
	}
	window, err := req.Window()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	mw, err := availability.NewMaintenance(roomID, window, req.Reason, m.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = shared.RetryUnavailable(ctx, m.logger, "maintenance.add", func() error {
		return shared.ToDomainErr(m.repo.WithinRoom(ctx, roomID, func(ctx context.Context, tx shared.RoomTx) error {
			return tx.InsertMaintenance(ctx, mw)
		}))
	})
	if err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "maintenance window added",
		slog.String("id", mw.ID().String()),
		slog.String("room_id", roomID.String()),
		slog.String("window", window.String()))
	return mw, nil
}

func (m *maintenanceCommandsImpl) RemoveMaintenance(ctx context.Context, id uuid.UUID) error {
	return shared.RetryUnavailable(ctx, m.logger, "maintenance.remove", func() error {
		mw, err := m.repo.FindMaintenance(ctx, id)
		if err != nil {
			return shared.ToDomainErr(err)
		}
		return shared.ToDomainErr(m.repo.WithinRoom(ctx, mw.RoomID(), func(ctx context.Context, tx shared.RoomTx) error {
			return tx.DeleteMaintenance(ctx, id)
		}))
	})
}
