package shared

import (
	"context"
	"time"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/contact"
	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/domain/user"

	"github.com/google/uuid"
)

// AvailabilityRepository owns booking periods, their audit trail and
// maintenance windows. All writes go through WithinRoom so that at most
// one writer touches a room at a time.
type AvailabilityRepository interface {
	// WithinRoom holds the room's write lock for the duration of fn and
	// commits fn's writes atomically when it returns nil.
	WithinRoom(ctx context.Context, roomID room.ID, fn func(ctx context.Context, tx RoomTx) error) error

	// Calendar is a read-only snapshot of the room's occupancy.
	Calendar(ctx context.Context, roomID room.ID) (*availability.Calendar, error)
	FindBooking(ctx context.Context, id uuid.UUID) (*booking.Period, error)
	ListBookings(ctx context.Context, filter BookingFilter) ([]*booking.Period, error)
	BookingEvents(ctx context.Context, bookingID uuid.UUID) ([]booking.Event, error)
	FindMaintenance(ctx context.Context, id uuid.UUID) (*availability.Maintenance, error)
}

type RoomTx interface {
	Calendar(ctx context.Context) (*availability.Calendar, error)
	Booking(ctx context.Context, id uuid.UUID) (*booking.Period, error)
	InsertBooking(ctx context.Context, p *booking.Period) error
	SaveBookingStatus(ctx context.Context, p *booking.Period) error
	AppendEvent(ctx context.Context, e booking.Event) error
	InsertMaintenance(ctx context.Context, m *availability.Maintenance) error
	DeleteMaintenance(ctx context.Context, id uuid.UUID) error
}

type BookingFilter struct {
	RoomID *room.ID
	Status *booking.Status
	// From and To select periods overlapping [From, To).
	From *time.Time
	To   *time.Time
}

func (f BookingFilter) Matches(p *booking.Period) bool {
	if f.RoomID != nil && p.RoomID() != *f.RoomID {
		return false
	}
	if f.Status != nil && p.Status() != *f.Status {
		return false
	}
	if f.From != nil && !p.Stay().CheckOut().After(booking.DateOf(*f.From)) {
		return false
	}
	if f.To != nil && !p.Stay().CheckIn().Before(booking.DateOf(*f.To)) {
		return false
	}
	return true
}

// PricingRepository stores exactly one override per room. Get returns an
// empty override for a room that was never edited.
type PricingRepository interface {
	Get(ctx context.Context, roomID room.ID) (*pricing.Override, error)
	List(ctx context.Context) ([]*pricing.Override, error)
	// Update is an atomic read-modify-write of the room's record.
	Update(ctx context.Context, roomID room.ID, fn func(o *pricing.Override) error) (*pricing.Override, error)
}

type PricingCache interface {
	Get(ctx context.Context, roomID room.ID) (*pricing.Override, bool, error)
	// Set keeps the cached entry when it supersedes o.
	Set(ctx context.Context, o *pricing.Override) error
	Invalidate(ctx context.Context, roomID room.ID) error
}

type PromoRepository interface {
	Create(ctx context.Context, p *pricing.Promo) error
	FindByCode(ctx context.Context, code pricing.PromoCode) (*pricing.Promo, error)
}

type ContactRepository interface {
	Create(ctx context.Context, m *contact.Message) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
