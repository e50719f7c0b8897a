//go:build unit

package availability_test

import (
	"math/rand"
	"testing"
	"time"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return epoch.AddDate(0, 0, n)
}

func mustStay(t *testing.T, from, to int) booking.Stay {
	t.Helper()
	s, err := booking.NewStay(day(from), day(to))
	require.NoError(t, err)
	return s
}

func period(t *testing.T, from, to int, status booking.Status) *booking.Period {
	t.Helper()
	g, err := booking.NewGuest("Guest", "guest@example.tn", "+21671234567")
	require.NoError(t, err)
	return booking.ReconstructPeriod(uuid.New(), "ch-11", mustStay(t, from, to), g, status,
		money.Dinars(200).Mul(to-from), "", epoch, epoch)
}

func TestCalendarAvailability(t *testing.T) {
	confirmed := period(t, 4, 6, booking.StatusConfirmed)
	pending := period(t, 10, 12, booking.StatusPending)
	cancelled := period(t, 20, 25, booking.StatusCancelled)
	cal := availability.NewCalendar("ch-11", []*booking.Period{pending, cancelled, confirmed}, nil)

	assert.Equal(t, 2, cal.Index().Len(), "cancelled periods are not indexed")

	cases := []struct {
		name     string
		from, to int
		want     bool
	}{
		{"before everything", 0, 4, true},
		{"touching confirmed check-out", 6, 10, true},
		{"overlapping confirmed", 5, 7, false},
		{"inside pending", 10, 11, false},
		{"spanning both", 3, 13, false},
		{"over cancelled", 20, 25, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, cal.IsAvailable(mustStay(t, c.from, c.to)))
		})
	}

	t.Run("excluding a period ignores it", func(t *testing.T) {
		require.NoError(t, cal.CheckAvailable(pending.Stay(), pending.ID()))
		require.Error(t, cal.CheckAvailable(pending.Stay(), uuid.New()))
	})
}

func TestConflictError(t *testing.T) {
	first := period(t, 4, 6, booking.StatusConfirmed)
	cal := availability.NewCalendar("ch-11", []*booking.Period{first}, nil)

	err := cal.CheckAvailable(mustStay(t, 5, 7), uuid.Nil)
	require.Error(t, err)

	var conflict *availability.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, room.ID("ch-11"), conflict.RoomID)
	assert.Equal(t, availability.ReasonBooked, conflict.Reason)
	assert.Equal(t, []time.Time{day(5)}, conflict.UnavailableDates())
	assert.Contains(t, err.Error(), "2024-07-06 to 2024-07-07")
}

func TestCalendarMaintenance(t *testing.T) {
	m, err := availability.NewMaintenance("ch-11", mustStay(t, 8, 10), "plumbing", epoch)
	require.NoError(t, err)
	cal := availability.NewCalendar("ch-11", nil, []*availability.Maintenance{m})

	err = cal.CheckAvailable(mustStay(t, 9, 12), uuid.Nil)
	var conflict *availability.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, availability.ReasonMaintenance, conflict.Reason)

	require.True(t, cal.RemoveMaintenance(m.ID()))
	assert.True(t, cal.IsAvailable(mustStay(t, 9, 12)))
	assert.False(t, cal.RemoveMaintenance(m.ID()))
}

func TestStatusOn(t *testing.T) {
	confirmed := period(t, 4, 6, booking.StatusConfirmed)
	pending := period(t, 6, 8, booking.StatusPending)
	m, err := availability.NewMaintenance("ch-11", mustStay(t, 5, 7), "painting", epoch)
	require.NoError(t, err)

	cal := availability.NewCalendar("ch-11", []*booking.Period{confirmed, pending}, nil)
	assert.Equal(t, room.StatusAvailable, cal.StatusOn(day(3)))
	assert.Equal(t, room.StatusOccupied, cal.StatusOn(day(4)))
	assert.Equal(t, room.StatusOccupied, cal.StatusOn(day(5).Add(15*time.Hour)))
	assert.Equal(t, room.StatusReserved, cal.StatusOn(day(6)))
	assert.Equal(t, room.StatusAvailable, cal.StatusOn(day(8)))

	cal.AddMaintenance(m)
	assert.Equal(t, room.StatusMaintenance, cal.StatusOn(day(5)), "maintenance wins over occupied")
	assert.Equal(t, room.StatusMaintenance, cal.StatusOn(day(6)), "maintenance wins over reserved")

	t.Run("idempotent", func(t *testing.T) {
		for d := 0; d < 10; d++ {
			assert.Equal(t, cal.StatusOn(day(d)), cal.StatusOn(day(d)))
		}
	})
}

func TestCalendarApply(t *testing.T) {
	p := period(t, 4, 6, booking.StatusPending)
	cal := availability.NewCalendar("ch-11", []*booking.Period{p}, nil)
	require.False(t, cal.IsAvailable(p.Stay()))

	require.NoError(t, p.TransitionTo(booking.StatusConfirmed, epoch))
	cal.Apply(p)
	assert.Equal(t, room.StatusOccupied, cal.StatusOn(day(4)))

	require.NoError(t, p.TransitionTo(booking.StatusCancelled, epoch))
	cal.Apply(p)
	assert.True(t, cal.IsAvailable(p.Stay()), "cancelling frees the interval")
	assert.Equal(t, 0, cal.Index().Len())
}

// The index must agree with a linear scan over randomly generated,
// non-overlapping active periods plus some cancelled noise.
func TestIndexMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		var all []*booking.Period
		cal := availability.NewCalendar("ch-11", nil, nil)

		for i := 0; i < 30; i++ {
			from := rng.Intn(120)
			to := from + 1 + rng.Intn(10)
			status := booking.StatusPending
			switch rng.Intn(3) {
			case 1:
				status = booking.StatusConfirmed
			case 2:
				status = booking.StatusCancelled
			}
			p := period(t, from, to, status)
			if status.IsActive() && !cal.IsAvailable(p.Stay()) {
				continue
			}
			all = append(all, p)
			cal.Apply(p)
		}

		for q := 0; q < 50; q++ {
			from := rng.Intn(130)
			s := mustStay(t, from, from+1+rng.Intn(12))

			want := true
			for _, p := range all {
				if p.IsActive() && p.Stay().Overlaps(s) {
					want = false
					break
				}
			}
			require.Equal(t, want, cal.IsAvailable(s), "round %d stay %s", round, s)
		}
	}
}
