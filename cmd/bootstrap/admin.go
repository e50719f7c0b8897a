package bootstrap

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/pkg/config"
	"guesthouse-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

// SeedAdmin creates the first back-office account on start when
// ADMIN_EMAIL and ADMIN_PASSWORD are both set.
func SeedAdmin(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands, logger *slog.Logger) {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := auth.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
				return err
			}
			logger.Info("admin account ensured", slog.String("email", cfg.Admin.Email))
			return nil
		},
	})
}
