package availability

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"

	"github.com/google/uuid"
)

type ConflictReason string

const (
	ReasonBooked      ConflictReason = "booked"
	ReasonMaintenance ConflictReason = "maintenance"
)

// ConflictError names the nights of the requested stay that are taken.
type ConflictError struct {
	RoomID    room.ID
	Requested booking.Stay
	Blocking  []booking.Stay
	Reason    ConflictReason
}

func (e *ConflictError) Error() string {
	ranges := make([]string, 0, len(e.Blocking))
	for _, b := range e.Blocking {
		ranges = append(ranges, clip(b, e.Requested).String())
	}
	return fmt.Sprintf("room %s is unavailable (%s) for %s", e.RoomID, e.Reason, strings.Join(ranges, ", "))
}

// UnavailableDates lists every requested night that is blocked.
func (e *ConflictError) UnavailableDates() []time.Time {
	seen := make(map[time.Time]struct{})
	var dates []time.Time
	for _, b := range e.Blocking {
		clip(b, e.Requested).EachNight(func(night time.Time) {
			if _, ok := seen[night]; !ok {
				seen[night] = struct{}{}
				dates = append(dates, night)
			}
		})
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func clip(blocking, requested booking.Stay) booking.Stay {
	in, out := blocking.CheckIn(), blocking.CheckOut()
	if in.Before(requested.CheckIn()) {
		in = requested.CheckIn()
	}
	if out.After(requested.CheckOut()) {
		out = requested.CheckOut()
	}
	s, err := booking.NewStay(in, out)
	if err != nil {
		return blocking
	}
	return s
}

// Calendar is the occupancy view of one room: its active periods and
// maintenance windows.
type Calendar struct {
	roomID      room.ID
	index       *Index
	maintenance []*Maintenance
}

func NewCalendar(roomID room.ID, periods []*booking.Period, maintenance []*Maintenance) *Calendar {
	return &Calendar{
		roomID:      roomID,
		index:       NewIndex(periods...),
		maintenance: append([]*Maintenance(nil), maintenance...),
	}
}

func (c *Calendar) RoomID() room.ID { return c.roomID }
func (c *Calendar) Index() *Index   { return c.index }

func (c *Calendar) Maintenance() []*Maintenance {
	return append([]*Maintenance(nil), c.maintenance...)
}

func (c *Calendar) IsAvailable(stay booking.Stay) bool {
	return c.CheckAvailable(stay, uuid.Nil) == nil
}

// CheckAvailable returns a *ConflictError when stay collides with
// maintenance or with an active period other than exclude.
func (c *Calendar) CheckAvailable(stay booking.Stay, exclude uuid.UUID) error {
	var blocking []booking.Stay
	for _, m := range c.maintenance {
		if m.Window().Overlaps(stay) {
			blocking = append(blocking, m.Window())
		}
	}
	if len(blocking) > 0 {
		return &ConflictError{RoomID: c.roomID, Requested: stay, Blocking: blocking, Reason: ReasonMaintenance}
	}

	for _, p := range c.index.Overlapping(stay, exclude) {
		blocking = append(blocking, p.Stay())
	}
	if len(blocking) > 0 {
		return &ConflictError{RoomID: c.roomID, Requested: stay, Blocking: blocking, Reason: ReasonBooked}
	}
	return nil
}

// StatusOn resolves the room status for the night of date with
// precedence maintenance > occupied > reserved > available.
func (c *Calendar) StatusOn(date time.Time) room.Status {
	for _, m := range c.maintenance {
		if m.Window().Contains(date) {
			return room.StatusMaintenance
		}
	}
	p, ok := c.index.Covering(date)
	if !ok {
		return room.StatusAvailable
	}
	if p.Status() == booking.StatusConfirmed {
		return room.StatusOccupied
	}
	return room.StatusReserved
}

// Apply keeps the index in step with a period that was inserted or changed status.
func (c *Calendar) Apply(p *booking.Period) {
	c.index.Remove(p.ID())
	c.index.Insert(p)
}

func (c *Calendar) AddMaintenance(m *Maintenance) {
	c.maintenance = append(c.maintenance, m)
}

func (c *Calendar) RemoveMaintenance(id uuid.UUID) bool {
	for i, m := range c.maintenance {
		if m.ID() == id {
			c.maintenance = append(c.maintenance[:i], c.maintenance[i+1:]...)
			return true
		}
	}
	return false
}
