package memstore

import (
	"context"
	"sort"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/infra"
	"guesthouse-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityRepository struct {
	s *Store
}

func NewAvailabilityRepository(s *Store) *AvailabilityRepository {
	return &AvailabilityRepository{s: s}
}

func (r *AvailabilityRepository) WithinRoom(ctx context.Context, roomID room.ID, fn func(ctx context.Context, tx shared.RoomTx) error) error {
	lock, ok := r.s.roomLocks[roomID]
	if !ok {
		return infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "room not found: "+roomID.String(), nil)
	}
	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.RLock()
	cal := r.s.calendars[roomID]
	r.s.mu.RUnlock()

	tx := &roomTx{s: r.s, roomID: roomID, calendar: cal}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (r *AvailabilityRepository) Calendar(_ context.Context, roomID room.ID) (*availability.Calendar, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cal, ok := r.s.calendars[roomID]
	if !ok {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "room not found: "+roomID.String(), nil)
	}
	return availability.NewCalendar(roomID, cal.Index().Periods(), cal.Maintenance()), nil
}

func (r *AvailabilityRepository) FindBooking(_ context.Context, id uuid.UUID) (*booking.Period, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "booking not found", nil)
	}
	return p.Clone(), nil
}

func (r *AvailabilityRepository) ListBookings(_ context.Context, filter shared.BookingFilter) ([]*booking.Period, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*booking.Period, 0, len(r.s.bookings))
	for _, p := range r.s.bookings {
		if filter.Matches(p) {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Stay().CheckIn().Equal(out[j].Stay().CheckIn()) {
			return out[i].Stay().CheckIn().Before(out[j].Stay().CheckIn())
		}
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out, nil
}

func (r *AvailabilityRepository) BookingEvents(_ context.Context, bookingID uuid.UUID) ([]booking.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.bookings[bookingID]; !ok {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "booking not found", nil)
	}
	return append([]booking.Event(nil), r.s.events[bookingID]...), nil
}

func (r *AvailabilityRepository) FindMaintenance(_ context.Context, id uuid.UUID) (*availability.Maintenance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.maintenance[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "maintenance window not found", nil)
	}
	return m, nil
}

// roomTx stages writes and applies them in one step on commit, so a
// failing fn leaves the store untouched.
type roomTx struct {
	s        *Store
	roomID   room.ID
	calendar *availability.Calendar
	ops      []func()
}

// Calendar returns the live calendar. Only the holder of the room lock
// mutates it, so reading it here is safe.
func (t *roomTx) Calendar(_ context.Context) (*availability.Calendar, error) {
	return t.calendar, nil
}

func (t *roomTx) Booking(_ context.Context, id uuid.UUID) (*booking.Period, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	p, ok := t.s.bookings[id]
	if !ok || p.RoomID() != t.roomID {
		return nil, infra.WrapRepoErr(t.s.logger, infra.KindNotFound, "booking not found", nil)
	}
	return p.Clone(), nil
}

func (t *roomTx) InsertBooking(_ context.Context, p *booking.Period) error {
	if p.RoomID() != t.roomID {
		return infra.WrapRepoErr(t.s.logger, infra.KindForeignKeyViolated, "booking room does not match locked room", nil)
	}
	if p.IsActive() && len(t.calendar.Index().Overlapping(p.Stay(), uuid.Nil)) > 0 {
		return infra.WrapRepoErr(t.s.logger, infra.KindExclusionViolation, "booking overlaps an active period", nil)
	}
	stored := p.Clone()
	t.ops = append(t.ops, func() {
		t.s.bookings[stored.ID()] = stored
		t.calendar.Apply(stored)
	})
	return nil
}

func (t *roomTx) SaveBookingStatus(_ context.Context, p *booking.Period) error {
	t.s.mu.RLock()
	_, ok := t.s.bookings[p.ID()]
	t.s.mu.RUnlock()
	if !ok {
		return infra.WrapRepoErr(t.s.logger, infra.KindNotFound, "booking not found", nil)
	}
	if p.IsActive() && len(t.calendar.Index().Overlapping(p.Stay(), p.ID())) > 0 {
		return infra.WrapRepoErr(t.s.logger, infra.KindExclusionViolation, "booking overlaps an active period", nil)
	}
	stored := p.Clone()
	t.ops = append(t.ops, func() {
		t.s.bookings[stored.ID()] = stored
		t.calendar.Apply(stored)
	})
	return nil
}

func (t *roomTx) AppendEvent(_ context.Context, e booking.Event) error {
	t.ops = append(t.ops, func() {
		t.s.events[e.BookingID] = append(t.s.events[e.BookingID], e)
	})
	return nil
}

func (t *roomTx) InsertMaintenance(_ context.Context, m *availability.Maintenance) error {
	if m.RoomID() != t.roomID {
		return infra.WrapRepoErr(t.s.logger, infra.KindForeignKeyViolated, "maintenance room does not match locked room", nil)
	}
	t.ops = append(t.ops, func() {
		t.s.maintenance[m.ID()] = m
		t.calendar.AddMaintenance(m)
	})
	return nil
}

func (t *roomTx) DeleteMaintenance(_ context.Context, id uuid.UUID) error {
	t.s.mu.RLock()
	m, ok := t.s.maintenance[id]
	t.s.mu.RUnlock()
	if !ok || m.RoomID() != t.roomID {
		return infra.WrapRepoErr(t.s.logger, infra.KindNotFound, "maintenance window not found", nil)
	}
	t.ops = append(t.ops, func() {
		delete(t.s.maintenance, id)
		t.calendar.RemoveMaintenance(id)
	})
	return nil
}

func (t *roomTx) commit() {
	if len(t.ops) == 0 {
		return
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, op := range t.ops {
		op()
	}
}
