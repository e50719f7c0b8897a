package repository

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/infra"
	"guesthouse-booking/internal/infra/uow"

	"github.com/jackc/pgx/v5"
)

const upsertRoomSQL = `INSERT INTO rooms (id, number, category, capacity, base_price, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (id) DO UPDATE SET
	number = EXCLUDED.number,
	category = EXCLUDED.category,
	capacity = EXCLUDED.capacity,
	base_price = EXCLUDED.base_price,
	updated_at = now()`

// SyncCatalog mirrors the compiled-in catalog into the rooms table so that
// every room has a row to lock.
func SyncCatalog(ctx context.Context, u *uow.PostgresUoW, catalog *room.Catalog, logger *slog.Logger) error {
	return u.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, r := range catalog.All() {
			batch.Queue(upsertRoomSQL, r.ID().String(), r.Number(), r.Category().String(), r.Capacity(), r.BasePrice().Millimes())
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return infra.WrapPgErr(logger, "failed to sync room catalog", err)
		}
		logger.Info("room catalog synced", slog.Int("rooms", catalog.Len()))
		return nil
	})
}
