//go:build unit

package workflow_test

import (
	"context"
	"testing"
	"time"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/workflow"
	"guesthouse-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

func d(s string) time.Time {
	t, err := booking.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func ready(t *testing.T) *workflow.Workflow {
	t.Helper()
	w := workflow.New()
	require.NoError(t, w.SelectDates(d("2024-07-05"), d("2024-07-07"), today))
	require.NoError(t, w.SelectRoom("ch-11"))
	require.NoError(t, w.EnterCustomerInfo("Amira", "amira@example.tn", "+21671234567", ""))
	return w
}

func TestWorkflowHappyPath(t *testing.T) {
	w := workflow.New()
	assert.Equal(t, workflow.StateSelectingDates, w.State())

	require.NoError(t, w.SelectDates(d("2024-07-05"), d("2024-07-07"), today))
	assert.Equal(t, workflow.StateSelectingRoom, w.State())

	require.NoError(t, w.SelectRoom("ch-11"))
	assert.Equal(t, workflow.StateEnteringCustomerInfo, w.State())

	require.NoError(t, w.EnterCustomerInfo("Amira", "amira@example.tn", "+21671234567", "SUMMER24"))

	id := uuid.New()
	var got workflow.Request
	err := w.Submit(context.Background(), workflow.SubmitterFunc(func(_ context.Context, req workflow.Request) (uuid.UUID, error) {
		got = req
		return id, nil
	}))
	require.NoError(t, err)
	assert.Equal(t, workflow.StateConfirmed, w.State())
	assert.Equal(t, id, w.BookingID())
	assert.Equal(t, "SUMMER24", got.PromoCode)
	assert.Equal(t, 2, got.Stay.Nights())
}

func TestWorkflowDateValidation(t *testing.T) {
	cases := []struct {
		name    string
		in, out string
	}{
		{"check-out before check-in", "2024-07-07", "2024-07-05"},
		{"same day", "2024-07-05", "2024-07-05"},
		{"in the past", "2024-06-30", "2024-07-02"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := workflow.New()
			err := w.SelectDates(d(c.in), d(c.out), today)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation))
			assert.Equal(t, workflow.StateSelectingDates, w.State())
		})
	}

	t.Run("today is allowed", func(t *testing.T) {
		require.NoError(t, workflow.New().SelectDates(d("2024-07-01"), d("2024-07-02"), today))
	})
}

func TestWorkflowSubmitOutcomes(t *testing.T) {
	t.Run("conflict returns to room selection naming the dates", func(t *testing.T) {
		w := ready(t)
		requested := w.Stay()
		blocking, err := booking.ParseStay("2024-07-06", "2024-07-08")
		require.NoError(t, err)
		conflict := errs.Mark(&availability.ConflictError{
			RoomID: "ch-11", Requested: requested, Blocking: []booking.Stay{blocking}, Reason: availability.ReasonBooked,
		}, errs.ErrConflict)

		err = w.Submit(context.Background(), workflow.SubmitterFunc(func(context.Context, workflow.Request) (uuid.UUID, error) {
			return uuid.Nil, conflict
		}))
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Equal(t, workflow.StateSelectingRoom, w.State())
		assert.Contains(t, w.Message(), "2024-07-06")

		require.NoError(t, w.SelectRoom("ch-12"))
		assert.Equal(t, workflow.StateEnteringCustomerInfo, w.State())
	})

	t.Run("other failures are retryable", func(t *testing.T) {
		w := ready(t)
		calls := 0
		submitter := workflow.SubmitterFunc(func(context.Context, workflow.Request) (uuid.UUID, error) {
			calls++
			if calls == 1 {
				return uuid.Nil, errs.Mark(errs.New("connection refused"), errs.ErrUnavailable)
			}
			return uuid.New(), nil
		})

		require.Error(t, w.Submit(context.Background(), submitter))
		assert.Equal(t, workflow.StateFailed, w.State())
		assert.Equal(t, 1, calls, "no automatic retry")

		require.NoError(t, w.Submit(context.Background(), submitter))
		assert.Equal(t, workflow.StateConfirmed, w.State())
	})

	t.Run("submit before customer info is refused", func(t *testing.T) {
		w := workflow.New()
		require.NoError(t, w.SelectDates(d("2024-07-05"), d("2024-07-07"), today))
		require.NoError(t, w.SelectRoom("ch-11"))
		err := w.Submit(context.Background(), workflow.SubmitterFunc(func(context.Context, workflow.Request) (uuid.UUID, error) {
			t.Fatal("submitter must not be called")
			return uuid.Nil, nil
		}))
		require.ErrorIs(t, err, workflow.ErrInvalidStep)
	})
}

func TestWorkflowNavigation(t *testing.T) {
	w := ready(t)
	require.NoError(t, w.Back())
	assert.Equal(t, workflow.StateSelectingRoom, w.State())
	assert.Equal(t, booking.Guest{}, w.Guest())

	require.NoError(t, w.Back())
	assert.Equal(t, workflow.StateSelectingDates, w.State())
	require.ErrorIs(t, w.Back(), workflow.ErrInvalidStep)

	w = ready(t)
	require.NoError(t, w.Cancel())
	assert.Equal(t, workflow.StateSelectingDates, w.State())
	assert.True(t, w.Stay().IsZero())

	w = ready(t)
	require.NoError(t, w.Submit(context.Background(), workflow.SubmitterFunc(func(context.Context, workflow.Request) (uuid.UUID, error) {
		return uuid.New(), nil
	})))
	require.ErrorIs(t, w.Cancel(), workflow.ErrInvalidStep)
}
