package availability

import (
	"sort"
	"time"

	"guesthouse-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Index keeps the active periods of one room sorted by check-in.
// Active periods never overlap, so check-outs are sorted too and a
// binary search on check-out finds the only candidates for a collision.
type Index struct {
	periods []*booking.Period
}

func NewIndex(periods ...*booking.Period) *Index {
	idx := &Index{periods: make([]*booking.Period, 0, len(periods))}
	for _, p := range periods {
		if p.IsActive() {
			idx.periods = append(idx.periods, p)
		}
	}
	sort.Slice(idx.periods, func(i, j int) bool {
		return idx.periods[i].Stay().CheckIn().Before(idx.periods[j].Stay().CheckIn())
	})
	return idx
}

func (idx *Index) Len() int {
	return len(idx.periods)
}

// firstEndingAfter returns the position of the first period whose
// check-out is strictly after t.
func (idx *Index) firstEndingAfter(t time.Time) int {
	return sort.Search(len(idx.periods), func(i int) bool {
		return idx.periods[i].Stay().CheckOut().After(t)
	})
}

// Overlapping returns the active periods overlapping stay, skipping exclude.
func (idx *Index) Overlapping(stay booking.Stay, exclude uuid.UUID) []*booking.Period {
	var out []*booking.Period
	for i := idx.firstEndingAfter(stay.CheckIn()); i < len(idx.periods); i++ {
		p := idx.periods[i]
		if !p.Stay().CheckIn().Before(stay.CheckOut()) {
			break
		}
		if p.ID() == exclude {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Covering returns the active period holding the night of date, if any.
func (idx *Index) Covering(date time.Time) (*booking.Period, bool) {
	d := booking.DateOf(date)
	i := idx.firstEndingAfter(d)
	if i < len(idx.periods) && idx.periods[i].Stay().Contains(d) {
		return idx.periods[i], true
	}
	return nil, false
}

// Insert adds an active period. The caller has checked it overlaps nothing.
func (idx *Index) Insert(p *booking.Period) {
	if !p.IsActive() {
		return
	}
	i := sort.Search(len(idx.periods), func(i int) bool {
		return !idx.periods[i].Stay().CheckIn().Before(p.Stay().CheckIn())
	})
	idx.periods = append(idx.periods, nil)
	copy(idx.periods[i+1:], idx.periods[i:])
	idx.periods[i] = p
}

func (idx *Index) Remove(id uuid.UUID) bool {
	for i, p := range idx.periods {
		if p.ID() == id {
			idx.periods = append(idx.periods[:i], idx.periods[i+1:]...)
			return true
		}
	}
	return false
}

func (idx *Index) Periods() []*booking.Period {
	out := make([]*booking.Period, len(idx.periods))
	copy(out, idx.periods)
	return out
}
