package memstore

import (
	"context"

	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/infra"
)

type PricingRepository struct {
	s *Store
}

func NewPricingRepository(s *Store) *PricingRepository {
	return &PricingRepository{s: s}
}

func (r *PricingRepository) Get(_ context.Context, roomID room.ID) (*pricing.Override, error) {
	if _, ok := r.s.catalog.Find(roomID); !ok {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "room not found: "+roomID.String(), nil)
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if o, ok := r.s.overrides[roomID]; ok {
		return o.Clone(), nil
	}
	return pricing.EmptyOverride(roomID), nil
}

func (r *PricingRepository) List(_ context.Context) ([]*pricing.Override, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*pricing.Override, 0, r.s.catalog.Len())
	for _, rm := range r.s.catalog.All() {
		if o, ok := r.s.overrides[rm.ID()]; ok {
			out = append(out, o.Clone())
			continue
		}
		out = append(out, pricing.EmptyOverride(rm.ID()))
	}
	return out, nil
}

func (r *PricingRepository) Update(_ context.Context, roomID room.ID, fn func(o *pricing.Override) error) (*pricing.Override, error) {
	if _, ok := r.s.catalog.Find(roomID); !ok {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "room not found: "+roomID.String(), nil)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.overrides[roomID]
	if !ok {
		current = pricing.EmptyOverride(roomID)
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	r.s.overrides[roomID] = next
	return next.Clone(), nil
}
