package repository

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/infra"
	"guesthouse-booking/internal/infra/repository/converter"
	"guesthouse-booking/internal/infra/uow"

	"github.com/jackc/pgx/v5"
)

const pricingColumns = `room_id, low_season, high_season, weekend, weekly,
	breakfast_included, city_tax, extra_bed, updated_at`

const (
	// A room without a pricing row reads as an empty override.
	getPricingSQL = `SELECT r.id AS room_id, p.low_season, p.high_season, p.weekend, p.weekly,
		COALESCE(p.breakfast_included, false) AS breakfast_included,
		COALESCE(p.city_tax, 0) AS city_tax,
		COALESCE(p.extra_bed, 0) AS extra_bed,
		COALESCE(p.updated_at, r.updated_at) AS updated_at
	FROM rooms r
	LEFT JOIN room_pricing p ON p.room_id = r.id`

	ensurePricingSQL = `INSERT INTO room_pricing (room_id, updated_at) VALUES ($1, now())
	ON CONFLICT (room_id) DO NOTHING`

	lockPricingSQL = `SELECT ` + pricingColumns + ` FROM room_pricing WHERE room_id = $1 FOR UPDATE`

	savePricingSQL = `UPDATE room_pricing SET
		low_season = $2, high_season = $3, weekend = $4, weekly = $5,
		breakfast_included = $6, city_tax = $7, extra_bed = $8, updated_at = $9
	WHERE room_id = $1`
)

type PricingRepository struct {
	uow    *uow.PostgresUoW
	logger *slog.Logger
}

func NewPricingRepository(u *uow.PostgresUoW, logger *slog.Logger) *PricingRepository {
	return &PricingRepository{uow: u, logger: logger}
}

func (r *PricingRepository) Get(ctx context.Context, roomID room.ID) (*pricing.Override, error) {
	rows, err := r.uow.Pool().Query(ctx, getPricingSQL+` WHERE r.id = $1`, roomID.String())
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get room pricing", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.PricingRow])
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get room pricing", err)
	}
	return converter.PricingFromRow(row), nil
}

func (r *PricingRepository) List(ctx context.Context) ([]*pricing.Override, error) {
	rows, err := r.uow.Pool().Query(ctx, getPricingSQL+` ORDER BY r.id`)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list room pricing", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.PricingRow])
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to scan room pricing", err)
	}
	out := make([]*pricing.Override, 0, len(collected))
	for _, row := range collected {
		out = append(out, converter.PricingFromRow(row))
	}
	return out, nil
}

// Update upserts the row then locks it, so concurrent admins apply their
// patches one after the other.
func (r *PricingRepository) Update(ctx context.Context, roomID room.ID, fn func(o *pricing.Override) error) (*pricing.Override, error) {
	var updated *pricing.Override
	err := r.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, ensurePricingSQL, roomID.String()); err != nil {
			return infra.WrapPgErr(r.logger, "failed to create room pricing", err)
		}

		rows, err := tx.Query(ctx, lockPricingSQL, roomID.String())
		if err != nil {
			return infra.WrapPgErr(r.logger, "failed to lock room pricing", err)
		}
		row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.PricingRow])
		if err != nil {
			return infra.WrapPgErr(r.logger, "failed to lock room pricing", err)
		}

		o := converter.PricingFromRow(row)
		if err := fn(o); err != nil {
			return err
		}

		next := converter.PricingToRow(o)
		_, err = tx.Exec(ctx, savePricingSQL,
			next.RoomID, next.LowSeason, next.HighSeason, next.Weekend, next.Weekly,
			next.BreakfastIncluded, next.CityTax, next.ExtraBed, next.UpdatedAt,
		)
		if err != nil {
			return infra.WrapPgErr(r.logger, "failed to save room pricing", err)
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
