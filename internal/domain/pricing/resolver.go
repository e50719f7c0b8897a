package pricing

import (
	"time"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/room"
)

// WeeklyStayNights is the only stay length the weekly price applies to.
const WeeklyStayNights = 7

type Source string

const (
	SourcePromo   Source = "promo"
	SourceWeekend Source = "weekend"
	SourceSeason  Source = "season"
	SourceBase    Source = "base"
)

type NightPrice struct {
	Date   time.Time
	Price  money.Money
	Source Source
}

type Quote struct {
	RoomID            room.ID
	Stay              booking.Stay
	Nights            []NightPrice
	NightlySum        money.Money
	WeeklyApplied     bool
	Lodging           money.Money
	CityTax           money.Money
	BreakfastIncluded bool
	PromoCode         string
	Total             money.Money
}

type Resolver struct {
	policy Policy
}

func NewResolver(policy Policy) *Resolver {
	return &Resolver{policy: policy}
}

func (r *Resolver) Policy() Policy {
	return r.policy
}

// NightlyPrice resolves one night: promo, then weekend, then season, then base.
func (r *Resolver) NightlyPrice(rm *room.Room, o *Override, promo *Promo, night time.Time) NightPrice {
	n := NightPrice{Date: night}
	switch {
	case promo != nil:
		n.Price, n.Source = promo.NightlyPrice(), SourcePromo
	case o != nil && o.Weekend() != nil && r.policy.IsWeekend(night):
		n.Price, n.Source = *o.Weekend(), SourceWeekend
	case o != nil && r.seasonal(o, night) != nil:
		n.Price, n.Source = *r.seasonal(o, night), SourceSeason
	default:
		n.Price, n.Source = rm.BasePrice(), SourceBase
	}
	return n
}

func (r *Resolver) seasonal(o *Override, night time.Time) *money.Money {
	if r.policy.SeasonOf(night) == SeasonHigh {
		return o.HighSeason()
	}
	return o.LowSeason()
}

// Quote prices every night of stay independently and sums them. A weekly
// price replaces the sum only for a stay of exactly WeeklyStayNights.
// promo must already be validated for the room and stay.
func (r *Resolver) Quote(rm *room.Room, o *Override, promo *Promo, stay booking.Stay) Quote {
	q := Quote{
		RoomID: rm.ID(),
		Stay:   stay,
		Nights: make([]NightPrice, 0, stay.Nights()),
	}
	stay.EachNight(func(night time.Time) {
		n := r.NightlyPrice(rm, o, promo, night)
		q.Nights = append(q.Nights, n)
		q.NightlySum = q.NightlySum.Add(n.Price)
	})

	q.Lodging = q.NightlySum
	if promo != nil {
		q.PromoCode = promo.Code().String()
	} else if o != nil && o.Weekly() != nil && stay.Nights() == WeeklyStayNights {
		q.Lodging = *o.Weekly()
		q.WeeklyApplied = true
	}

	if o != nil {
		q.CityTax = o.CityTax().Mul(stay.Nights())
		q.BreakfastIncluded = o.BreakfastIncluded()
	}
	q.Total = q.Lodging.Add(q.CityTax)
	return q
}

// DisplayPrice is the nightly price shown in the catalog for a given date.
func (r *Resolver) DisplayPrice(rm *room.Room, o *Override, date time.Time) money.Money {
	return r.NightlyPrice(rm, o, nil, booking.DateOf(date)).Price
}
