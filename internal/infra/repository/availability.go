package repository

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/infra"
	"guesthouse-booking/internal/infra/db"
	"guesthouse-booking/internal/infra/repository/converter"
	"guesthouse-booking/internal/infra/uow"
	"guesthouse-booking/internal/pkg/pgconv"
	"guesthouse-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, room_id, check_in, check_out, guest_name, guest_email, guest_phone,
	status, total_millimes, promo_code, created_at, updated_at`

const (
	lockRoomSQL = `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`

	activeBookingsByRoomSQL = `SELECT ` + bookingColumns + `
	FROM booking_periods
	WHERE room_id = $1 AND status <> 'cancelled'
	ORDER BY check_in`

	maintenanceByRoomSQL = `SELECT id, room_id, starts_on, ends_on, reason, created_at
	FROM maintenance_windows
	WHERE room_id = $1
	ORDER BY starts_on`

	findBookingSQL = `SELECT ` + bookingColumns + ` FROM booking_periods WHERE id = $1`

	findBookingInRoomSQL = `SELECT ` + bookingColumns + ` FROM booking_periods WHERE id = $1 AND room_id = $2`

	listBookingsSQL = `SELECT ` + bookingColumns + `
	FROM booking_periods
	WHERE ($1::text IS NULL OR room_id = $1)
	  AND ($2::text IS NULL OR status = $2)
	  AND ($3::date IS NULL OR check_out > $3)
	  AND ($4::date IS NULL OR check_in < $4)
	ORDER BY check_in, created_at`

	insertBookingSQL = `INSERT INTO booking_periods (` + bookingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	updateBookingStatusSQL = `UPDATE booking_periods SET status = $2, updated_at = $3 WHERE id = $1`

	insertEventSQL = `INSERT INTO booking_events (booking_id, from_status, to_status, actor, at)
	VALUES ($1, $2, $3, $4, $5)`

	listEventsSQL = `SELECT booking_id, from_status, to_status, actor, at
	FROM booking_events WHERE booking_id = $1 ORDER BY at, id`

	findMaintenanceSQL = `SELECT id, room_id, starts_on, ends_on, reason, created_at
	FROM maintenance_windows WHERE id = $1`

	insertMaintenanceSQL = `INSERT INTO maintenance_windows (id, room_id, starts_on, ends_on, reason, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	deleteMaintenanceSQL = `DELETE FROM maintenance_windows WHERE id = $1 AND room_id = $2`
)

type AvailabilityRepository struct {
	uow    *uow.PostgresUoW
	logger *slog.Logger
}

func NewAvailabilityRepository(u *uow.PostgresUoW, logger *slog.Logger) *AvailabilityRepository {
	return &AvailabilityRepository{uow: u, logger: logger}
}

// WithinRoom locks the room row for the rest of the transaction. The
// EXCLUDE constraint on booking_periods backs the lock up.
func (r *AvailabilityRepository) WithinRoom(ctx context.Context, roomID room.ID, fn func(ctx context.Context, tx shared.RoomTx) error) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var locked string
		if err := tx.QueryRow(ctx, lockRoomSQL, roomID.String()).Scan(&locked); err != nil {
			return infra.WrapPgErr(r.logger, "failed to lock room "+roomID.String(), err)
		}
		return fn(ctx, &pgRoomTx{tx: tx, roomID: roomID, logger: r.logger})
	})
}

func (r *AvailabilityRepository) Calendar(ctx context.Context, roomID room.ID) (*availability.Calendar, error) {
	var cal *availability.Calendar
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1)`, roomID.String()).Scan(&exists); err != nil {
			return infra.WrapPgErr(r.logger, "failed to check room", err)
		}
		if !exists {
			return infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found: "+roomID.String(), nil)
		}
		var err error
		cal, err = loadCalendar(ctx, tx, roomID, r.logger)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cal, nil
}

func (r *AvailabilityRepository) FindBooking(ctx context.Context, id uuid.UUID) (*booking.Period, error) {
	return queryBooking(ctx, r.uow.Pool(), r.logger, findBookingSQL, id)
}

func (r *AvailabilityRepository) ListBookings(ctx context.Context, filter shared.BookingFilter) ([]*booking.Period, error) {
	var roomID, status *string
	if filter.RoomID != nil {
		s := filter.RoomID.String()
		roomID = &s
	}
	if filter.Status != nil {
		s := filter.Status.String()
		status = &s
	}
	var from, to any
	if filter.From != nil {
		from = pgconv.DateToPgtype(*filter.From)
	}
	if filter.To != nil {
		to = pgconv.DateToPgtype(*filter.To)
	}

	rows, err := r.uow.Pool().Query(ctx, listBookingsSQL, roomID, status, from, to)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list bookings", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.BookingRow])
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to scan bookings", err)
	}
	return converter.BookingsFromRows(collected)
}

func (r *AvailabilityRepository) BookingEvents(ctx context.Context, bookingID uuid.UUID) ([]booking.Event, error) {
	if _, err := r.FindBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	rows, err := r.uow.Pool().Query(ctx, listEventsSQL, bookingID)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list booking events", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.EventRow])
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to scan booking events", err)
	}
	events := make([]booking.Event, 0, len(collected))
	for _, row := range collected {
		events = append(events, converter.EventFromRow(row))
	}
	return events, nil
}

func (r *AvailabilityRepository) FindMaintenance(ctx context.Context, id uuid.UUID) (*availability.Maintenance, error) {
	rows, err := r.uow.Pool().Query(ctx, findMaintenanceSQL, id)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find maintenance window", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.MaintenanceRow])
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find maintenance window", err)
	}
	return converter.MaintenanceFromRow(row)
}

type pgRoomTx struct {
	tx       pgx.Tx
	roomID   room.ID
	logger   *slog.Logger
	calendar *availability.Calendar
}

// Calendar is loaded once per transaction, after the room lock, and kept
// in step with this transaction's own writes.
func (t *pgRoomTx) Calendar(ctx context.Context) (*availability.Calendar, error) {
	if t.calendar != nil {
		return t.calendar, nil
	}
	cal, err := loadCalendar(ctx, t.tx, t.roomID, t.logger)
	if err != nil {
		return nil, err
	}
	t.calendar = cal
	return cal, nil
}

func (t *pgRoomTx) Booking(ctx context.Context, id uuid.UUID) (*booking.Period, error) {
	return queryBooking(ctx, t.tx, t.logger, findBookingInRoomSQL, id, t.roomID.String())
}

func (t *pgRoomTx) InsertBooking(ctx context.Context, p *booking.Period) error {
	row := converter.BookingToRow(p)
	_, err := t.tx.Exec(ctx, insertBookingSQL,
		row.ID, row.RoomID, row.CheckIn, row.CheckOut, row.GuestName, row.GuestEmail, row.GuestPhone,
		row.Status, row.TotalMillimes, row.PromoCode, row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return infra.WrapPgErr(t.logger, "failed to insert booking", err)
	}
	if t.calendar != nil {
		t.calendar.Apply(p.Clone())
	}
	return nil
}

func (t *pgRoomTx) SaveBookingStatus(ctx context.Context, p *booking.Period) error {
	tag, err := t.tx.Exec(ctx, updateBookingStatusSQL, p.ID(), p.Status().String(), p.UpdatedAt())
	if err != nil {
		return infra.WrapPgErr(t.logger, "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(t.logger, infra.KindNotFound, "booking not found", nil)
	}
	if t.calendar != nil {
		t.calendar.Apply(p.Clone())
	}
	return nil
}

func (t *pgRoomTx) AppendEvent(ctx context.Context, e booking.Event) error {
	_, err := t.tx.Exec(ctx, insertEventSQL, e.BookingID, converter.StatusToPgtype(e.From), e.To.String(), e.Actor, e.At)
	if err != nil {
		return infra.WrapPgErr(t.logger, "failed to append booking event", err)
	}
	return nil
}

func (t *pgRoomTx) InsertMaintenance(ctx context.Context, m *availability.Maintenance) error {
	_, err := t.tx.Exec(ctx, insertMaintenanceSQL,
		m.ID(), m.RoomID().String(),
		pgconv.DateToPgtype(m.Window().CheckIn()), pgconv.DateToPgtype(m.Window().CheckOut()),
		m.Reason(), m.CreatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(t.logger, "failed to insert maintenance window", err)
	}
	if t.calendar != nil {
		t.calendar.AddMaintenance(m)
	}
	return nil
}

func (t *pgRoomTx) DeleteMaintenance(ctx context.Context, id uuid.UUID) error {
	tag, err := t.tx.Exec(ctx, deleteMaintenanceSQL, id, t.roomID.String())
	if err != nil {
		return infra.WrapPgErr(t.logger, "failed to delete maintenance window", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(t.logger, infra.KindNotFound, "maintenance window not found", nil)
	}
	if t.calendar != nil {
		t.calendar.RemoveMaintenance(id)
	}
	return nil
}

func loadCalendar(ctx context.Context, q db.DBTX, roomID room.ID, logger *slog.Logger) (*availability.Calendar, error) {
	rows, err := q.Query(ctx, activeBookingsByRoomSQL, roomID.String())
	if err != nil {
		return nil, infra.WrapPgErr(logger, "failed to load room bookings", err)
	}
	bookingRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.BookingRow])
	if err != nil {
		return nil, infra.WrapPgErr(logger, "failed to scan room bookings", err)
	}
	periods, err := converter.BookingsFromRows(bookingRows)
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "invalid stored booking", err)
	}

	rows, err = q.Query(ctx, maintenanceByRoomSQL, roomID.String())
	if err != nil {
		return nil, infra.WrapPgErr(logger, "failed to load maintenance windows", err)
	}
	maintenanceRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.MaintenanceRow])
	if err != nil {
		return nil, infra.WrapPgErr(logger, "failed to scan maintenance windows", err)
	}
	windows, err := converter.MaintenanceFromRows(maintenanceRows)
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "invalid stored maintenance window", err)
	}

	return availability.NewCalendar(roomID, periods, windows), nil
}

func queryBooking(ctx context.Context, q db.DBTX, logger *slog.Logger, sql string, args ...any) (*booking.Period, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapPgErr(logger, "failed to find booking", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.BookingRow])
	if err != nil {
		return nil, infra.WrapPgErr(logger, "failed to find booking", err)
	}
	p, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "invalid stored booking", err)
	}
	return p, nil
}
