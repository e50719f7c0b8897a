package converter

import (
	"time"

	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type PricingRow struct {
	RoomID            string      `db:"room_id"`
	LowSeason         pgtype.Int8 `db:"low_season"`
	HighSeason        pgtype.Int8 `db:"high_season"`
	Weekend           pgtype.Int8 `db:"weekend"`
	Weekly            pgtype.Int8 `db:"weekly"`
	BreakfastIncluded bool        `db:"breakfast_included"`
	CityTax           int64       `db:"city_tax"`
	ExtraBed          int64       `db:"extra_bed"`
	UpdatedAt         time.Time   `db:"updated_at"`
}

func PricingToRow(o *pricing.Override) PricingRow {
	return PricingRow{
		RoomID:            o.RoomID().String(),
		LowSeason:         moneyToPgtype(o.LowSeason()),
		HighSeason:        moneyToPgtype(o.HighSeason()),
		Weekend:           moneyToPgtype(o.Weekend()),
		Weekly:            moneyToPgtype(o.Weekly()),
		BreakfastIncluded: o.BreakfastIncluded(),
		CityTax:           o.CityTax().Millimes(),
		ExtraBed:          o.ExtraBed().Millimes(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

func PricingFromRow(row PricingRow) *pricing.Override {
	return pricing.ReconstructOverride(
		room.ID(row.RoomID),
		moneyFromPgtype(row.LowSeason),
		moneyFromPgtype(row.HighSeason),
		moneyFromPgtype(row.Weekend),
		moneyFromPgtype(row.Weekly),
		row.BreakfastIncluded,
		money.New(row.CityTax),
		money.New(row.ExtraBed),
		row.UpdatedAt,
	)
}

type PromoRow struct {
	Code         string             `db:"code"`
	NightlyPrice int64              `db:"nightly_price"`
	RoomID       pgtype.Text        `db:"room_id"`
	ValidFrom    pgtype.Timestamptz `db:"valid_from"`
	ValidTo      pgtype.Timestamptz `db:"valid_to"`
	CreatedAt    time.Time          `db:"created_at"`
}

func PromoToRow(p *pricing.Promo) PromoRow {
	var roomID *string
	if p.RoomID() != nil {
		s := p.RoomID().String()
		roomID = &s
	}
	return PromoRow{
		Code:         p.Code().String(),
		NightlyPrice: p.NightlyPrice().Millimes(),
		RoomID:       pgconv.StringPtrToPgtype(roomID),
		ValidFrom:    pgconv.TimePtrToPgtype(p.ValidFrom()),
		ValidTo:      pgconv.TimePtrToPgtype(p.ValidTo()),
		CreatedAt:    p.CreatedAt(),
	}
}

func PromoFromRow(row PromoRow) *pricing.Promo {
	var roomID *room.ID
	if s := pgconv.StringPtrFromPgtype(row.RoomID); s != nil {
		id := room.ID(*s)
		roomID = &id
	}
	return pricing.ReconstructPromo(
		pricing.PromoCode(row.Code),
		money.New(row.NightlyPrice),
		roomID,
		pgconv.TimePtrFromPgtype(row.ValidFrom),
		pgconv.TimePtrFromPgtype(row.ValidTo),
		row.CreatedAt,
	)
}

func moneyToPgtype(m *money.Money) pgtype.Int8 {
	if m == nil {
		return pgconv.Int8PtrToPgtype(nil)
	}
	v := m.Millimes()
	return pgconv.Int8PtrToPgtype(&v)
}

func moneyFromPgtype(v pgtype.Int8) *money.Money {
	n := pgconv.Int64PtrFromPgtype(v)
	if n == nil {
		return nil
	}
	m := money.New(*n)
	return &m
}
