package queries

import (
	"context"

	"github.com/google/uuid"

	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/shared"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	users shared.UserRepository
}

func NewUserQueries(users shared.UserRepository) UserQueries {
	return &userQueriesImpl{
		users: users,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	u, err := q.users.FindByID(ctx, userID)
	if err != nil {
		err = shared.ToDomainErr(err)
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Mark(ErrUserNotFound, errs.ErrNotFound)
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, errs.Mark(ErrUserInactive, errs.ErrForbidden)
	}

	return toAuthorizedUserView(u), nil
}
