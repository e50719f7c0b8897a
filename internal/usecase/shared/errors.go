package shared

import (
	"context"
	"log/slog"
	"time"

	"guesthouse-booking/internal/infra"
	"guesthouse-booking/internal/pkg/errs"
)

// ToDomainErr maps repository failures onto the error kinds the handlers
// understand. Errors that already carry a kind pass through.
func ToDomainErr(err error) error {
	if err == nil || errs.KindOf(err) != nil {
		return err
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindExclusionViolation):
		return errs.Mark(err, errs.ErrConflict)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrUnavailable)
	default:
		return err
	}
}

const unavailableRetryDelay = 200 * time.Millisecond

// RetryUnavailable runs fn again, once, when it fails with ErrUnavailable.
// Conflicts and validation errors are never retried.
func RetryUnavailable(ctx context.Context, logger *slog.Logger, op string, fn func() error) error {
	err := fn()
	if err == nil || !errs.Is(err, errs.ErrUnavailable) {
		return err
	}

	logger.Warn("retrying after unavailable store", slog.String("op", op), slog.String("error", err.Error()))
	select {
	case <-ctx.Done():
		return err
	case <-time.After(unavailableRetryDelay):
	}
	return fn()
}
