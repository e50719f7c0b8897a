// Package uow runs repository work inside pgx transactions and retries the
// ones Postgres aborts for serialization failures or deadlocks.
package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type TxFunc func(ctx context.Context, tx pgx.Tx) error

type PostgresUoW struct {
	pool       *pgxpool.Pool
	logger     *slog.Logger
	maxRetries int
	base       time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:       pool,
		logger:     logger,
		maxRetries: 3,
		base:       100 * time.Millisecond,
	}
}

func (u *PostgresUoW) Pool() *pgxpool.Pool {
	return u.pool
}

// Within runs fn in a read-committed transaction. Booking writers take the
// room row lock first, which is what serialises them.
func (u *PostgresUoW) Within(ctx context.Context, fn TxFunc) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// WithinReadOnly gives fn one snapshot across several queries, e.g. a
// room's bookings and its maintenance windows.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn TxFunc) error {
	return u.run(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead}, fn)
}

func (u *PostgresUoW) run(ctx context.Context, options pgx.TxOptions, fn TxFunc) error {
	var err error
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		if attempt > 0 {
			wait := backoff(attempt-1, u.base)
			u.logger.Warn("retrying transaction",
				"attempt", attempt+1,
				"wait_ms", wait.Milliseconds(),
				"error", err.Error())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		// no defer: one rollback per attempt, not per loop
		err = u.attempt(ctx, options, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
	}

	u.logger.Error("transaction failed after max retries", "attempts", u.maxRetries+1, "error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn TxFunc) error {
	tx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, tx)
	if err == nil {
		if err = tx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

// backoff doubles per attempt with up to 20% jitter.
func backoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func isRetryable(err error) bool {
	switch pgconv.SQLState(err) {
	case pgconv.CodeSerializationFailure, pgconv.CodeDeadlockDetected:
		return true
	default:
		return false
	}
}
