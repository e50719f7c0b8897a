package pricing

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/room"
)

var (
	ErrInvalidPromoCode   = errors.New("invalid promo code format")
	ErrInvalidPromoPrice  = errors.New("promo nightly price must be positive")
	ErrInvalidPromoWindow = errors.New("promo validity window is invalid")
	ErrPromoNotValid      = errors.New("promo code is not valid for this stay")
)

var promoCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type PromoCode string

func NewPromoCode(code string) (PromoCode, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !promoCodeRegex.MatchString(code) {
		return "", ErrInvalidPromoCode
	}
	return PromoCode(code), nil
}

func (c PromoCode) String() string {
	return string(c)
}

// Promo replaces every nightly price of a stay with a fixed amount.
type Promo struct {
	code         PromoCode
	nightlyPrice money.Money
	roomID       *room.ID
	validFrom    *time.Time
	validTo      *time.Time
	createdAt    time.Time
}

func NewPromo(code PromoCode, nightly money.Money, roomID *room.ID, validFrom, validTo *time.Time, now time.Time) (*Promo, error) {
	if nightly.Millimes() <= 0 {
		return nil, ErrInvalidPromoPrice
	}
	if validFrom != nil && validTo != nil && !validTo.After(*validFrom) {
		return nil, ErrInvalidPromoWindow
	}
	return &Promo{
		code:         code,
		nightlyPrice: nightly,
		roomID:       roomID,
		validFrom:    validFrom,
		validTo:      validTo,
		createdAt:    now,
	}, nil
}

func ReconstructPromo(code PromoCode, nightly money.Money, roomID *room.ID, validFrom, validTo *time.Time, createdAt time.Time) *Promo {
	return &Promo{
		code:         code,
		nightlyPrice: nightly,
		roomID:       roomID,
		validFrom:    validFrom,
		validTo:      validTo,
		createdAt:    createdAt,
	}
}

// AppliesTo reports whether the promo covers roomID and every night of stay.
func (p *Promo) AppliesTo(roomID room.ID, stay booking.Stay) bool {
	if p.roomID != nil && *p.roomID != roomID {
		return false
	}
	if p.validFrom != nil && stay.CheckIn().Before(booking.DateOf(*p.validFrom)) {
		return false
	}
	if p.validTo != nil && stay.CheckOut().After(booking.DateOf(*p.validTo)) {
		return false
	}
	return true
}

func (p *Promo) ValidateUsage(roomID room.ID, stay booking.Stay) error {
	if !p.AppliesTo(roomID, stay) {
		return ErrPromoNotValid
	}
	return nil
}

func (p *Promo) Code() PromoCode           { return p.code }
func (p *Promo) NightlyPrice() money.Money { return p.nightlyPrice }
func (p *Promo) RoomID() *room.ID          { return p.roomID }
func (p *Promo) ValidFrom() *time.Time     { return p.validFrom }
func (p *Promo) ValidTo() *time.Time       { return p.validTo }
func (p *Promo) CreatedAt() time.Time      { return p.createdAt }
