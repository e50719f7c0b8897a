package pricing

import (
	"time"

	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/pkg/patch"
)

// Override is the single pricing record of a room. Unset tiers fall
// through to the next rule.
type Override struct {
	roomID            room.ID
	lowSeason         *money.Money
	highSeason        *money.Money
	weekend           *money.Money
	weekly            *money.Money
	breakfastIncluded bool
	cityTax           money.Money
	extraBed          money.Money
	updatedAt         time.Time
}

// EmptyOverride is the record a room has before any admin edit.
func EmptyOverride(roomID room.ID) *Override {
	return &Override{roomID: roomID}
}

func ReconstructOverride(
	roomID room.ID,
	lowSeason, highSeason, weekend, weekly *money.Money,
	breakfastIncluded bool,
	cityTax, extraBed money.Money,
	updatedAt time.Time,
) *Override {
	return &Override{
		roomID:            roomID,
		lowSeason:         lowSeason,
		highSeason:        highSeason,
		weekend:           weekend,
		weekly:            weekly,
		breakfastIncluded: breakfastIncluded,
		cityTax:           cityTax,
		extraBed:          extraBed,
		updatedAt:         updatedAt,
	}
}

// Patch carries a partial update. Nil fields keep their value; a zero
// amount on an optional tier clears it.
type Patch struct {
	LowSeason         *int64
	HighSeason        *int64
	Weekend           *int64
	Weekly            *int64
	BreakfastIncluded *bool
	CityTax           *int64
	ExtraBed          *int64
}

func (p Patch) IsEmpty() bool {
	return p.LowSeason == nil && p.HighSeason == nil && p.Weekend == nil && p.Weekly == nil &&
		p.BreakfastIncluded == nil && p.CityTax == nil && p.ExtraBed == nil
}

func (o *Override) Apply(p Patch, now time.Time) error {
	for _, v := range []*int64{p.LowSeason, p.HighSeason, p.Weekend, p.Weekly, p.CityTax, p.ExtraBed} {
		if v != nil && *v < 0 {
			return money.ErrNegativeAmount
		}
	}

	o.lowSeason = tier(p.LowSeason, o.lowSeason)
	o.highSeason = tier(p.HighSeason, o.highSeason)
	o.weekend = tier(p.Weekend, o.weekend)
	o.weekly = tier(p.Weekly, o.weekly)
	o.breakfastIncluded = patch.Coalesce(p.BreakfastIncluded, o.breakfastIncluded)
	if p.CityTax != nil {
		o.cityTax = money.New(*p.CityTax)
	}
	if p.ExtraBed != nil {
		o.extraBed = money.New(*p.ExtraBed)
	}
	o.updatedAt = now
	return nil
}

func tier(update *int64, current *money.Money) *money.Money {
	var cur *int64
	if current != nil {
		v := current.Millimes()
		cur = &v
	}
	next := patch.Optional(update, cur)
	if next == nil {
		return nil
	}
	m := money.New(*next)
	return &m
}

// Supersedes reports whether o may replace other in a cache: it was not
// updated before other was.
func (o *Override) Supersedes(other *Override) bool {
	return !o.updatedAt.Before(other.updatedAt)
}

func (o *Override) Clone() *Override {
	c := *o
	return &c
}

func (o *Override) RoomID() room.ID          { return o.roomID }
func (o *Override) LowSeason() *money.Money  { return o.lowSeason }
func (o *Override) HighSeason() *money.Money { return o.highSeason }
func (o *Override) Weekend() *money.Money    { return o.weekend }
func (o *Override) Weekly() *money.Money     { return o.weekly }
func (o *Override) BreakfastIncluded() bool  { return o.breakfastIncluded }
func (o *Override) CityTax() money.Money     { return o.cityTax }
func (o *Override) ExtraBed() money.Money    { return o.extraBed }
func (o *Override) UpdatedAt() time.Time     { return o.updatedAt }
