package memstore

import (
	"context"

	"guesthouse-booking/internal/domain/contact"
)

type ContactRepository struct {
	s *Store
}

func NewContactRepository(s *Store) *ContactRepository {
	return &ContactRepository{s: s}
}

func (r *ContactRepository) Create(_ context.Context, m *contact.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.contacts = append(r.s.contacts, m)
	return nil
}
