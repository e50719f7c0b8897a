package queries

import (
	"context"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/usecase/shared"
)

type CatalogQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	GetRoom(ctx context.Context, id room.ID) (*RoomView, error)
	Quote(ctx context.Context, id room.ID, stay booking.Stay, promoCode string) (*QuoteView, error)
	GetPricing(ctx context.Context, id room.ID) (*PricingView, error)
}

type catalogQueriesImpl struct {
	prices *shared.PriceBook
	clock  clock.Clock
}

func NewCatalogQueries(prices *shared.PriceBook, clock clock.Clock) CatalogQueries {
	return &catalogQueriesImpl{prices: prices, clock: clock}
}

func (q *catalogQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	rooms := q.prices.Catalog().All()
	out := make([]*RoomView, 0, len(rooms))
	for _, r := range rooms {
		v, err := q.roomView(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (q *catalogQueriesImpl) GetRoom(ctx context.Context, id room.ID) (*RoomView, error) {
	r, err := q.prices.Room(id)
	if err != nil {
		return nil, err
	}
	return q.roomView(ctx, r)
}

// roomView shows tonight's price, resolved the same way a quote would.
func (q *catalogQueriesImpl) roomView(ctx context.Context, r *room.Room) (*RoomView, error) {
	o, err := q.prices.Override(ctx, r.ID())
	if err != nil {
		return nil, err
	}
	display := q.prices.Resolver().DisplayPrice(r, o, q.clock.Now())
	return toRoomView(r, o, display), nil
}

func (q *catalogQueriesImpl) Quote(ctx context.Context, id room.ID, stay booking.Stay, promoCode string) (*QuoteView, error) {
	quote, err := q.prices.Quote(ctx, id, stay, promoCode)
	if err != nil {
		return nil, err
	}
	return toQuoteView(quote), nil
}

func (q *catalogQueriesImpl) GetPricing(ctx context.Context, id room.ID) (*PricingView, error) {
	if _, err := q.prices.Room(id); err != nil {
		return nil, err
	}
	o, err := q.prices.Override(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPricingView(o), nil
}
