package commands

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"
	reqdto "guesthouse-booking/internal/handler/dto/request"
	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/shared"
)

var ErrEmptyPricingUpdate = errs.New("no pricing field to update")

type PricingCommands interface {
	UpdatePricing(ctx context.Context, roomID room.ID, req reqdto.UpdatePricingRequest) (*pricing.Override, error)
	CreatePromo(ctx context.Context, req reqdto.CreatePromoRequest) (*pricing.Promo, error)
}

type pricingCommandsImpl struct {
	repo   shared.PricingRepository
	promos shared.PromoRepository
	prices *shared.PriceBook
	clock  clock.Clock
	logger *slog.Logger
}

func NewPricingCommands(
	repo shared.PricingRepository,
	promos shared.PromoRepository,
	prices *shared.PriceBook,
	clock clock.Clock,
	logger *slog.Logger,
) PricingCommands {
	return &pricingCommandsImpl{
		repo:   repo,
		promos: promos,
		prices: prices,
		clock:  clock,
		logger: logger,
	}
}

func (p *pricingCommandsImpl) UpdatePricing(ctx context.Context, roomID room.ID, req reqdto.UpdatePricingRequest) (*pricing.Override, error) {
	if _, err := p.prices.Room(roomID); err != nil {
		return nil, err
	}
	patch := req.ToDomain()
	if patch.IsEmpty() {
		return nil, errs.Mark(ErrEmptyPricingUpdate, errs.ErrValidation)
	}

	var updated *pricing.Override
	err := shared.RetryUnavailable(ctx, p.logger, "pricing.update", func() error {
		var err error
		updated, err = p.repo.Update(ctx, roomID, func(o *pricing.Override) error {
			if err := o.Apply(patch, p.clock.Now()); err != nil {
				return errs.Mark(err, errs.ErrValidation)
			}
			return nil
		})
		return shared.ToDomainErr(err)
	})
	if err != nil {
		return nil, err
	}

	p.prices.Refresh(ctx, updated)
	p.logger.InfoContext(ctx, "pricing updated", slog.String("room_id", roomID.String()))
	return updated, nil
}

func (p *pricingCommandsImpl) CreatePromo(ctx context.Context, req reqdto.CreatePromoRequest) (*pricing.Promo, error) {
	code, err := pricing.NewPromoCode(req.Code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var roomID *room.ID
	if req.RoomID != nil {
		id, err := room.NewID(*req.RoomID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
		if _, err := p.prices.Room(id); err != nil {
			return nil, err
		}
		roomID = &id
	}

	from, to, err := req.Window()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	promo, err := pricing.NewPromo(code, money.New(req.NightlyPrice), roomID, from, to, p.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = shared.RetryUnavailable(ctx, p.logger, "promo.create", func() error {
		return shared.ToDomainErr(p.promos.Create(ctx, promo))
	})
	if err != nil {
		return nil, err
	}
	p.logger.InfoContext(ctx, "promo created", slog.String("code", code.String()))
	return promo, nil
}
