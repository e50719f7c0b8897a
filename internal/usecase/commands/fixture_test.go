//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/infra/cache"
	"guesthouse-booking/internal/infra/memstore"
	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/usecase/commands"
	"guesthouse-booking/internal/usecase/queries"
	"guesthouse-booking/internal/usecase/shared"
	sharedmock "guesthouse-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type fixture struct {
	clock        *clock.MockClock
	store        *memstore.Store
	repo         *memstore.AvailabilityRepository
	prices       *shared.PriceBook
	publisher    *sharedmock.MockEventPublisher
	bookings     commands.BookingCommands
	maintenance  commands.MaintenanceCommands
	pricing      commands.PricingCommands
	availability queries.AvailabilityQueries
	catalog      queries.CatalogQueries
}

// newFixture wires the commands over the in-memory store with the clock
// on 2024-07-01 09:00 UTC.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
	store := memstore.NewStore(room.DefaultCatalog(), logger)
	repo := memstore.NewAvailabilityRepository(store)
	pricingRepo := memstore.NewPricingRepository(store)
	promos := memstore.NewPromoRepository(store)

	prices := shared.NewPriceBook(
		room.DefaultCatalog(),
		pricingRepo,
		cache.NoopPricingCache{},
		promos,
		pricing.NewResolver(pricing.DefaultPolicy()),
		logger,
	)

	publisher := sharedmock.NewMockEventPublisher(gomock.NewController(t))

	return &fixture{
		clock:        clk,
		store:        store,
		repo:         repo,
		prices:       prices,
		publisher:    publisher,
		bookings:     commands.NewBookingCommands(repo, prices, publisher, clk, logger),
		maintenance:  commands.NewMaintenanceCommands(repo, prices, clk, logger),
		pricing:      commands.NewPricingCommands(pricingRepo, promos, prices, clk, logger),
		availability: queries.NewAvailabilityQueries(repo, prices, logger),
		catalog:      queries.NewCatalogQueries(prices, clk),
	}
}
