package components

import (
	"fmt"
	"time"

	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/pkg/config"
	"guesthouse-booking/internal/usecase"
	"guesthouse-booking/internal/usecase/commands"
	"guesthouse-booking/internal/usecase/queries"
	"guesthouse-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	NewPricingResolver,
	shared.NewPriceBook,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewContactCommands,
		commands.NewMaintenanceCommands,
		commands.NewPricingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewClock reports time in SERVER_TIMEZONE, which decides what "today" is.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := time.LoadLocation(cfg.Server.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_TIMEZONE %q: %w", cfg.Server.TimeZone, err)
	}
	return clock.NewZonedClock(loc), nil
}

func NewPricingResolver(cfg config.Config) (*pricing.Resolver, error) {
	policy, err := pricing.NewPolicy(cfg.Pricing.WeekendDays, cfg.Pricing.HighSeasonMonths)
	if err != nil {
		return nil, fmt.Errorf("invalid pricing calendar: %w", err)
	}
	return pricing.NewResolver(policy), nil
}
