package repository

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/infra"
	"guesthouse-booking/internal/infra/db"
	"guesthouse-booking/internal/infra/repository/converter"

	"github.com/jackc/pgx/v5"
)

type PromoRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPromoRepository(q db.DBTX, logger *slog.Logger) *PromoRepository {
	return &PromoRepository{db: q, logger: logger}
}

func (r *PromoRepository) Create(ctx context.Context, p *pricing.Promo) error {
	row := converter.PromoToRow(p)
	_, err := r.db.Exec(ctx,
		`INSERT INTO promos (code, nightly_price, room_id, valid_from, valid_to, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		row.Code, row.NightlyPrice, row.RoomID, row.ValidFrom, row.ValidTo, row.CreatedAt,
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to create promo", err)
	}
	return nil
}

func (r *PromoRepository) FindByCode(ctx context.Context, code pricing.PromoCode) (*pricing.Promo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT code, nightly_price, room_id, valid_from, valid_to, created_at FROM promos WHERE code = $1`,
		code.String(),
	)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find promo", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.PromoRow])
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find promo", err)
	}
	return converter.PromoFromRow(row), nil
}
