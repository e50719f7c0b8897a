package repository

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/domain/contact"
	"guesthouse-booking/internal/infra"
	"guesthouse-booking/internal/infra/db"
	"guesthouse-booking/internal/pkg/pgconv"
)

type ContactRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewContactRepository(q db.DBTX, logger *slog.Logger) *ContactRepository {
	return &ContactRepository{db: q, logger: logger}
}

func (r *ContactRepository) Create(ctx context.Context, m *contact.Message) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID(), m.Name(), m.Email(), pgconv.StringPtrToPgtype(m.Phone()), m.Body(), m.CreatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to store contact message", err)
	}
	return nil
}
