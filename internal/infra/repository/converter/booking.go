package converter

import (
	"time"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRow struct {
	ID            uuid.UUID   `db:"id"`
	RoomID        string      `db:"room_id"`
	CheckIn       pgtype.Date `db:"check_in"`
	CheckOut      pgtype.Date `db:"check_out"`
	GuestName     string      `db:"guest_name"`
	GuestEmail    string      `db:"guest_email"`
	GuestPhone    string      `db:"guest_phone"`
	Status        string      `db:"status"`
	TotalMillimes int64       `db:"total_millimes"`
	PromoCode     pgtype.Text `db:"promo_code"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

func BookingToRow(p *booking.Period) BookingRow {
	var promo *string
	if p.PromoCode() != "" {
		code := p.PromoCode()
		promo = &code
	}
	return BookingRow{
		ID:            p.ID(),
		RoomID:        p.RoomID().String(),
		CheckIn:       pgconv.DateToPgtype(p.Stay().CheckIn()),
		CheckOut:      pgconv.DateToPgtype(p.Stay().CheckOut()),
		GuestName:     p.Guest().Name(),
		GuestEmail:    p.Guest().Email(),
		GuestPhone:    p.Guest().Phone(),
		Status:        p.Status().String(),
		TotalMillimes: p.Total().Millimes(),
		PromoCode:     pgconv.StringPtrToPgtype(promo),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func BookingFromRow(row BookingRow) (*booking.Period, error) {
	stay, err := booking.NewStay(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	var promo string
	if p := pgconv.StringPtrFromPgtype(row.PromoCode); p != nil {
		promo = *p
	}
	return booking.ReconstructPeriod(
		row.ID,
		room.ID(row.RoomID),
		stay,
		booking.ReconstructGuest(row.GuestName, row.GuestEmail, row.GuestPhone),
		status,
		money.New(row.TotalMillimes),
		promo,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}

func BookingsFromRows(rows []BookingRow) ([]*booking.Period, error) {
	out := make([]*booking.Period, 0, len(rows))
	for _, row := range rows {
		p, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

type EventRow struct {
	BookingID  uuid.UUID   `db:"booking_id"`
	FromStatus pgtype.Text `db:"from_status"`
	ToStatus   string      `db:"to_status"`
	Actor      string      `db:"actor"`
	At         time.Time   `db:"at"`
}

func EventFromRow(row EventRow) booking.Event {
	var from booking.Status
	if s := pgconv.StringPtrFromPgtype(row.FromStatus); s != nil {
		from = booking.Status(*s)
	}
	return booking.Event{
		BookingID: row.BookingID,
		From:      from,
		To:        booking.Status(row.ToStatus),
		Actor:     row.Actor,
		At:        row.At,
	}
}

func StatusToPgtype(s booking.Status) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s.String(), Valid: true}
}

type MaintenanceRow struct {
	ID        uuid.UUID   `db:"id"`
	RoomID    string      `db:"room_id"`
	StartsOn  pgtype.Date `db:"starts_on"`
	EndsOn    pgtype.Date `db:"ends_on"`
	Reason    string      `db:"reason"`
	CreatedAt time.Time   `db:"created_at"`
}

func MaintenanceFromRow(row MaintenanceRow) (*availability.Maintenance, error) {
	window, err := booking.NewStay(pgconv.DateFromPgtype(row.StartsOn), pgconv.DateFromPgtype(row.EndsOn))
	if err != nil {
		return nil, err
	}
	return availability.ReconstructMaintenance(row.ID, room.ID(row.RoomID), window, row.Reason, row.CreatedAt), nil
}

func MaintenanceFromRows(rows []MaintenanceRow) ([]*availability.Maintenance, error) {
	out := make([]*availability.Maintenance, 0, len(rows))
	for _, row := range rows {
		m, err := MaintenanceFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
