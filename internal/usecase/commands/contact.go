package commands

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/domain/contact"
	reqdto "guesthouse-booking/internal/handler/dto/request"
	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ContactCommands interface {
	SubmitContact(ctx context.Context, req reqdto.ContactRequest) (uuid.UUID, error)
}

type contactCommandsImpl struct {
	repo      shared.ContactRepository
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewContactCommands(repo shared.ContactRepository, publisher shared.EventPublisher, clock clock.Clock, logger *slog.Logger) ContactCommands {
	return &contactCommandsImpl{repo: repo, publisher: publisher, clock: clock, logger: logger}
}

func (c *contactCommandsImpl) SubmitContact(ctx context.Context, req reqdto.ContactRequest) (uuid.UUID, error) {
	msg, err := contact.NewMessage(req.Name, req.Email, req.Phone, req.Message, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	err = shared.RetryUnavailable(ctx, c.logger, "contact.create", func() error {
		return shared.ToDomainErr(c.repo.Create(ctx, msg))
	})
	if err != nil {
		return uuid.Nil, err
	}

	shared.Publish(ctx, c.publisher, c.logger, shared.TopicContactReceived, shared.ContactReceivedEvent{
		MessageID: msg.ID(),
		Name:      msg.Name(),
		Email:     msg.Email(),
		Phone:     msg.Phone(),
		Message:   msg.Body(),
		CreatedAt: msg.CreatedAt(),
	})
	return msg.ID(), nil
}
