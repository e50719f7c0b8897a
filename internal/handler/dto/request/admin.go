package request

import (
	"time"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/pricing"
)

// Amounts are in millimes. Omitted fields keep their value; 0 clears an
// optional tier.
type UpdatePricingRequest struct {
	LowSeason         *int64 `json:"lowSeason" binding:"omitempty,min=0"`
	HighSeason        *int64 `json:"highSeason" binding:"omitempty,min=0"`
	Weekend           *int64 `json:"weekend" binding:"omitempty,min=0"`
	Weekly            *int64 `json:"weekly" binding:"omitempty,min=0"`
	BreakfastIncluded *bool  `json:"breakfastIncluded"`
	CityTax           *int64 `json:"cityTax" binding:"omitempty,min=0"`
	ExtraBed          *int64 `json:"extraBed" binding:"omitempty,min=0"`
}

func (r UpdatePricingRequest) ToDomain() pricing.Patch {
	return pricing.Patch{
		LowSeason:         r.LowSeason,
		HighSeason:        r.HighSeason,
		Weekend:           r.Weekend,
		Weekly:            r.Weekly,
		BreakfastIncluded: r.BreakfastIncluded,
		CityTax:           r.CityTax,
		ExtraBed:          r.ExtraBed,
	}
}

type CreateMaintenanceRequest struct {
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
	Reason string `json:"reason" binding:"max=200"`
}

func (r CreateMaintenanceRequest) Window() (booking.Stay, error) {
	return booking.ParseStay(r.From, r.To)
}

type CreatePromoRequest struct {
	Code         string  `json:"code" binding:"required"`
	NightlyPrice int64   `json:"nightlyPrice" binding:"min=0"`
	RoomID       *string `json:"roomId,omitempty" binding:"omitempty,roomid"`
	ValidFrom    *string `json:"validFrom,omitempty"`
	ValidTo      *string `json:"validTo,omitempty"`
}

func (r CreatePromoRequest) Window() (*time.Time, *time.Time, error) {
	from, err := optionalDate(r.ValidFrom)
	if err != nil {
		return nil, nil, err
	}
	to, err := optionalDate(r.ValidTo)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := booking.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
