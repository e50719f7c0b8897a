package memstore

import (
	"context"

	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/infra"
)

type PromoRepository struct {
	s *Store
}

func NewPromoRepository(s *Store) *PromoRepository {
	return &PromoRepository{s: s}
}

func (r *PromoRepository) Create(_ context.Context, p *pricing.Promo) error {
	if p.RoomID() != nil {
		if _, ok := r.s.catalog.Find(*p.RoomID()); !ok {
			return infra.WrapRepoErr(r.s.logger, infra.KindForeignKeyViolated, "promo room not found", nil)
		}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.promos[p.Code()]; exists {
		return infra.WrapRepoErr(r.s.logger, infra.KindDuplicateKey, "promo code already exists", nil)
	}
	r.s.promos[p.Code()] = p
	return nil
}

func (r *PromoRepository) FindByCode(_ context.Context, code pricing.PromoCode) (*pricing.Promo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.promos[code]
	if !ok {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "promo not found", nil)
	}
	return p, nil
}
