package response

import (
	"time"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

type PromoResponse struct {
	Code         string    `json:"code"`
	NightlyPrice int64     `json:"nightlyPrice"`
	RoomID       *string   `json:"roomId,omitempty"`
	ValidFrom    *string   `json:"validFrom,omitempty"`
	ValidTo      *string   `json:"validTo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromPromo(p *pricing.Promo) *PromoResponse {
	res := &PromoResponse{
		Code:         p.Code().String(),
		NightlyPrice: p.NightlyPrice().Millimes(),
		ValidFrom:    optionalDate(p.ValidFrom()),
		ValidTo:      optionalDate(p.ValidTo()),
		CreatedAt:    p.CreatedAt(),
	}
	if id := p.RoomID(); id != nil {
		s := id.String()
		res.RoomID = &s
	}
	return res
}

func optionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := booking.FormatDate(*t)
	return &s
}

type ContactResponse struct {
	ID uuid.UUID `json:"id"`
}
