package converter

import (
	"time"

	"guesthouse-booking/internal/domain/user"
	"guesthouse-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRow struct {
	ID           uuid.UUID          `db:"id"`
	Email        string             `db:"email"`
	PasswordHash string             `db:"password_hash"`
	Role         string             `db:"role"`
	LastLogin    pgtype.Timestamptz `db:"last_login"`
	IsActive     bool               `db:"is_active"`
	CreatedAt    time.Time          `db:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at"`
}

func UserFromRow(row UserRow) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		email,
		row.PasswordHash,
		role,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}
