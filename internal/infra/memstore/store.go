// Package memstore keeps every record in process memory. It backs
// STORAGE_DRIVER=memory and the use case tests.
package memstore

import (
	"log/slog"
	"sync"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/contact"
	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Store holds the shared state. mu guards the maps; roomLocks serialise
// writers per room and are always taken before mu.
type Store struct {
	logger  *slog.Logger
	catalog *room.Catalog

	roomLocks map[room.ID]*sync.Mutex

	mu          sync.RWMutex
	calendars   map[room.ID]*availability.Calendar
	bookings    map[uuid.UUID]*booking.Period
	events      map[uuid.UUID][]booking.Event
	maintenance map[uuid.UUID]*availability.Maintenance
	overrides   map[room.ID]*pricing.Override
	promos      map[pricing.PromoCode]*pricing.Promo
	contacts    []*contact.Message
	users       map[uuid.UUID]*user.User
}

func NewStore(catalog *room.Catalog, logger *slog.Logger) *Store {
	s := &Store{
		logger:      logger,
		catalog:     catalog,
		roomLocks:   make(map[room.ID]*sync.Mutex, catalog.Len()),
		calendars:   make(map[room.ID]*availability.Calendar, catalog.Len()),
		bookings:    make(map[uuid.UUID]*booking.Period),
		events:      make(map[uuid.UUID][]booking.Event),
		maintenance: make(map[uuid.UUID]*availability.Maintenance),
		overrides:   make(map[room.ID]*pricing.Override),
		promos:      make(map[pricing.PromoCode]*pricing.Promo),
		users:       make(map[uuid.UUID]*user.User),
	}
	for _, r := range catalog.All() {
		s.roomLocks[r.ID()] = &sync.Mutex{}
		s.calendars[r.ID()] = availability.NewCalendar(r.ID(), nil, nil)
	}
	return s
}

// Messages returns the stored contact messages, oldest first.
func (s *Store) Messages() []*contact.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*contact.Message(nil), s.contacts...)
}
