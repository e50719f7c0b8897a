package memstore

import (
	"context"
	"time"

	"guesthouse-booking/internal/domain/user"
	"guesthouse-booking/internal/infra"

	"github.com/google/uuid"
)

type UserRepository struct {
	s *Store
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

func (r *UserRepository) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "user not found", nil)
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "user not found", nil)
	}
	return u, nil
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email() == u.Email() {
			return infra.WrapRepoErr(r.s.logger, infra.KindDuplicateKey, "email already registered", nil)
		}
	}
	now := time.Now()
	r.s.users[u.ID()] = user.ReconstructUser(u.ID(), u.Email(), u.PasswordHash(), u.Role(), nil, u.IsActive(), now, now)
	return nil
}

func (r *UserRepository) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "user not found", nil)
	}
	r.s.users[id] = user.ReconstructUser(u.ID(), u.Email(), u.PasswordHash(), u.Role(), &at, u.IsActive(), u.CreatedAt(), at)
	return nil
}
