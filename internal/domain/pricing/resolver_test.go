//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func ch11(t *testing.T) *room.Room {
	t.Helper()
	r, ok := room.DefaultCatalog().Find("ch-11")
	require.True(t, ok)
	require.Equal(t, money.Dinars(200), r.BasePrice())
	return r
}

func stay(t *testing.T, in, out string) booking.Stay {
	t.Helper()
	s, err := booking.ParseStay(in, out)
	require.NoError(t, err)
	return s
}

func dinars(d int64) *int64 {
	v := money.Dinars(d).Millimes()
	return &v
}

func override(t *testing.T, p pricing.Patch) *pricing.Override {
	t.Helper()
	o := pricing.EmptyOverride("ch-11")
	require.NoError(t, o.Apply(p, now))
	return o
}

func TestQuote(t *testing.T) {
	resolver := pricing.NewResolver(pricing.DefaultPolicy())

	t.Run("two nights at base price", func(t *testing.T) {
		q := resolver.Quote(ch11(t), nil, nil, stay(t, "2024-07-05", "2024-07-07"))
		assert.Equal(t, money.Dinars(400), q.Total)
		assert.Len(t, q.Nights, 2)
		for _, n := range q.Nights {
			assert.Equal(t, pricing.SourceBase, n.Source)
		}
	})

	t.Run("weekend night plus two regular nights", func(t *testing.T) {
		o := override(t, pricing.Patch{Weekend: dinars(250)})
		// Wednesday, Thursday, Friday
		q := resolver.Quote(ch11(t), o, nil, stay(t, "2024-07-03", "2024-07-06"))

		want := money.Dinars(250).Add(money.Dinars(200).Mul(2))
		assert.Equal(t, want, q.Total)
		assert.Equal(t, []pricing.Source{pricing.SourceBase, pricing.SourceBase, pricing.SourceWeekend}, sources(q))
	})

	t.Run("seasons are resolved per night", func(t *testing.T) {
		o := override(t, pricing.Patch{LowSeason: dinars(150), HighSeason: dinars(260)})
		q := resolver.Quote(ch11(t), o, nil, stay(t, "2024-09-29", "2024-10-02"))

		assert.Equal(t, money.Dinars(260+260+150), q.Total)
		assert.Equal(t, []pricing.Source{pricing.SourceSeason, pricing.SourceSeason, pricing.SourceSeason}, sources(q))
	})

	t.Run("weekend beats season", func(t *testing.T) {
		o := override(t, pricing.Patch{HighSeason: dinars(260), Weekend: dinars(300)})
		q := resolver.Quote(ch11(t), o, nil, stay(t, "2024-07-05", "2024-07-07"))
		assert.Equal(t, money.Dinars(600), q.Total)
	})

	t.Run("weekly price applies to exactly seven nights", func(t *testing.T) {
		o := override(t, pricing.Patch{Weekly: dinars(1200), HighSeason: dinars(260)})

		q := resolver.Quote(ch11(t), o, nil, stay(t, "2024-07-01", "2024-07-08"))
		assert.True(t, q.WeeklyApplied)
		assert.Equal(t, money.Dinars(1200), q.Total)
		assert.Equal(t, money.Dinars(260*7), q.NightlySum)

		for _, out := range []string{"2024-07-07", "2024-07-09", "2024-07-15"} {
			q := resolver.Quote(ch11(t), o, nil, stay(t, "2024-07-01", out))
			assert.False(t, q.WeeklyApplied, "stay ending %s", out)
			assert.Equal(t, q.NightlySum, q.Total)
		}
	})

	t.Run("promo overrides every tier", func(t *testing.T) {
		o := override(t, pricing.Patch{Weekly: dinars(1200), Weekend: dinars(300)})
		promo, err := pricing.NewPromo("SUMMER24", money.Dinars(150), nil, nil, nil, now)
		require.NoError(t, err)

		q := resolver.Quote(ch11(t), o, promo, stay(t, "2024-07-01", "2024-07-08"))
		assert.False(t, q.WeeklyApplied)
		assert.Equal(t, money.Dinars(150*7), q.Total)
		assert.Equal(t, "SUMMER24", q.PromoCode)
	})

	t.Run("city tax is charged per night", func(t *testing.T) {
		breakfast := true
		o := override(t, pricing.Patch{CityTax: dinars(3), BreakfastIncluded: &breakfast})
		q := resolver.Quote(ch11(t), o, nil, stay(t, "2024-07-05", "2024-07-07"))

		assert.Equal(t, money.Dinars(400), q.Lodging)
		assert.Equal(t, money.Dinars(6), q.CityTax)
		assert.Equal(t, money.Dinars(406), q.Total)
		assert.True(t, q.BreakfastIncluded)
	})

	t.Run("total equals the sum of nights", func(t *testing.T) {
		o := override(t, pricing.Patch{Weekend: dinars(275), LowSeason: dinars(170)})
		q := resolver.Quote(ch11(t), o, nil, stay(t, "2024-03-01", "2024-03-20"))

		var sum money.Money
		for _, n := range q.Nights {
			sum = sum.Add(n.Price)
		}
		assert.Equal(t, sum, q.Total)
	})
}

func TestOverrideApply(t *testing.T) {
	o := override(t, pricing.Patch{LowSeason: dinars(150), Weekend: dinars(250), CityTax: dinars(2)})

	t.Run("unset fields keep their value", func(t *testing.T) {
		require.NoError(t, o.Apply(pricing.Patch{HighSeason: dinars(300)}, now))
		require.NotNil(t, o.LowSeason())
		assert.Equal(t, money.Dinars(150), *o.LowSeason())
		assert.Equal(t, money.Dinars(300), *o.HighSeason())
		assert.Equal(t, money.Dinars(2), o.CityTax())
	})

	t.Run("zero clears an optional tier", func(t *testing.T) {
		zero := int64(0)
		require.NoError(t, o.Apply(pricing.Patch{Weekend: &zero}, now))
		assert.Nil(t, o.Weekend())
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		neg := int64(-1)
		before := o.Clone()
		require.ErrorIs(t, o.Apply(pricing.Patch{Weekly: &neg}, now), money.ErrNegativeAmount)
		if diff := cmp.Diff(before.HighSeason(), o.HighSeason(), cmp.AllowUnexported(money.Money{})); diff != "" {
			t.Errorf("override changed (-want +got):\n%s", diff)
		}
	})
}

func TestPolicy(t *testing.T) {
	p, err := pricing.NewPolicy([]string{"Sat", "sunday"}, []int{7, 8})
	require.NoError(t, err)

	assert.True(t, p.IsWeekend(time.Date(2024, 7, 6, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.IsWeekend(time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.IsWeekend(time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, pricing.SeasonHigh, p.SeasonOf(time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, pricing.SeasonLow, p.SeasonOf(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)))

	_, err = pricing.NewPolicy([]string{"funday"}, nil)
	require.ErrorIs(t, err, pricing.ErrInvalidWeekday)
	_, err = pricing.NewPolicy(nil, []int{13})
	require.ErrorIs(t, err, pricing.ErrInvalidMonth)
}

func TestPromo(t *testing.T) {
	_, err := pricing.NewPromoCode("no")
	require.ErrorIs(t, err, pricing.ErrInvalidPromoCode)

	code, err := pricing.NewPromoCode(" summer24 ")
	require.NoError(t, err)
	assert.Equal(t, pricing.PromoCode("SUMMER24"), code)

	other := room.ID("ch-12")
	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)
	p, err := pricing.NewPromo(code, money.Dinars(100), &other, &from, &to, now)
	require.NoError(t, err)

	assert.True(t, p.AppliesTo("ch-12", stay(t, "2024-07-05", "2024-07-07")))
	assert.False(t, p.AppliesTo("ch-11", stay(t, "2024-07-05", "2024-07-07")))
	require.ErrorIs(t, p.ValidateUsage("ch-12", stay(t, "2024-07-30", "2024-08-02")), pricing.ErrPromoNotValid)

	_, err = pricing.NewPromo(code, money.Dinars(100), nil, &to, &from, now)
	require.ErrorIs(t, err, pricing.ErrInvalidPromoWindow)
}

func sources(q pricing.Quote) []pricing.Source {
	out := make([]pricing.Source, 0, len(q.Nights))
	for _, n := range q.Nights {
		out = append(out, n.Source)
	}
	return out
}

func TestOverrideSupersedes(t *testing.T) {
	current := pricing.EmptyOverride("ch-11")
	updated := current.Clone()
	require.NoError(t, updated.Apply(pricing.Patch{LowSeason: dinars(150)}, now))

	assert.True(t, updated.Supersedes(current))
	assert.False(t, current.Supersedes(updated), "an override read before the update")
	assert.True(t, updated.Supersedes(updated.Clone()), "same version")
}
