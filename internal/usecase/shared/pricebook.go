package shared

import (
	"context"
	"log/slog"
	"strings"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/pkg/errs"
)

var ErrRoomNotFound = errs.New("room not found")

// PriceBook is the single place prices are computed, so the catalog, the
// quote endpoint and the stored booking total always agree.
type PriceBook struct {
	catalog  *room.Catalog
	pricing  PricingRepository
	cache    PricingCache
	promos   PromoRepository
	resolver *pricing.Resolver
	logger   *slog.Logger
}

func NewPriceBook(
	catalog *room.Catalog,
	pricingRepo PricingRepository,
	cache PricingCache,
	promos PromoRepository,
	resolver *pricing.Resolver,
	logger *slog.Logger,
) *PriceBook {
	return &PriceBook{
		catalog:  catalog,
		pricing:  pricingRepo,
		cache:    cache,
		promos:   promos,
		resolver: resolver,
		logger:   logger,
	}
}

func (b *PriceBook) Catalog() *room.Catalog      { return b.catalog }
func (b *PriceBook) Resolver() *pricing.Resolver { return b.resolver }

func (b *PriceBook) Room(id room.ID) (*room.Room, error) {
	rm, ok := b.catalog.Find(id)
	if !ok {
		return nil, errs.Mark(errs.Wrapf(ErrRoomNotFound, "room %s", id), errs.ErrNotFound)
	}
	return rm, nil
}

// Override reads through the cache. Cache failures are logged and the
// repository is used instead.
func (b *PriceBook) Override(ctx context.Context, roomID room.ID) (*pricing.Override, error) {
	o, hit, err := b.cache.Get(ctx, roomID)
	if err != nil {
		b.logger.WarnContext(ctx, "pricing cache read failed", slog.String("room_id", roomID.String()), slog.String("error", err.Error()))
	}
	if hit {
		return o, nil
	}

	err = RetryUnavailable(ctx, b.logger, "pricing.get", func() error {
		var getErr error
		o, getErr = b.pricing.Get(ctx, roomID)
		return ToDomainErr(getErr)
	})
	if err != nil {
		return nil, err
	}
	if err := b.cache.Set(ctx, o); err != nil {
		b.logger.WarnContext(ctx, "pricing cache write failed", slog.String("room_id", roomID.String()), slog.String("error", err.Error()))
	}
	return o, nil
}

// Promo resolves an optional code for the stay. An empty code yields nil.
func (b *PriceBook) Promo(ctx context.Context, code string, roomID room.ID, stay booking.Stay) (*pricing.Promo, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	pc, err := pricing.NewPromoCode(code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	promo, err := b.promos.FindByCode(ctx, pc)
	if err != nil {
		err = ToDomainErr(err)
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Mark(errs.Wrapf(pricing.ErrPromoNotValid, "promo %s", pc), errs.ErrValidation)
		}
		return nil, err
	}
	if err := promo.ValidateUsage(roomID, stay); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return promo, nil
}

func (b *PriceBook) Quote(ctx context.Context, roomID room.ID, stay booking.Stay, promoCode string) (pricing.Quote, error) {
	rm, err := b.Room(roomID)
	if err != nil {
		return pricing.Quote{}, err
	}
	o, err := b.Override(ctx, roomID)
	if err != nil {
		return pricing.Quote{}, err
	}
	promo, err := b.Promo(ctx, promoCode, roomID, stay)
	if err != nil {
		return pricing.Quote{}, err
	}
	return b.resolver.Quote(rm, o, promo, stay), nil
}

// Refresh stores an override the admin just saved. Deleting the entry
// instead would let a reader that loaded the previous override before the
// update write it back; Set refuses that older value.
func (b *PriceBook) Refresh(ctx context.Context, o *pricing.Override) {
	err := b.cache.Set(ctx, o)
	if err == nil {
		return
	}
	b.logger.WarnContext(ctx, "pricing cache refresh failed", slog.String("room_id", o.RoomID().String()), slog.String("error", err.Error()))
	if err := b.cache.Invalidate(ctx, o.RoomID()); err != nil {
		b.logger.ErrorContext(ctx, "pricing cache invalidation failed", slog.String("room_id", o.RoomID().String()), slog.String("error", err.Error()))
	}
}
