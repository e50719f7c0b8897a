package queries

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"time"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/pkg/clock"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid cursor")

var exportHeader = []string{
	"id", "room_id", "check_in", "check_out", "nights",
	"guest_name", "guest_email", "guest_phone",
	"status", "total_millimes", "promo_code", "created_at",
}

type BookingListParams struct {
	Filter shared.BookingFilter
	After  string
	Limit  int
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, params BookingListParams) (*BookingPage, error)
	ExportCSV(ctx context.Context, w io.Writer, filter shared.BookingFilter) error
	Dashboard(ctx context.Context) (*DashboardView, error)
}

type bookingQueriesImpl struct {
	repo   shared.AvailabilityRepository
	prices *shared.PriceBook
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingQueries(repo shared.AvailabilityRepository, prices *shared.PriceBook, clock clock.Clock, logger *slog.Logger) BookingQueries {
	return &bookingQueriesImpl{repo: repo, prices: prices, clock: clock, logger: logger}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	p, err := q.repo.FindBooking(ctx, id)
	if err != nil {
		return nil, shared.ToDomainErr(err)
	}
	events, err := q.repo.BookingEvents(ctx, id)
	if err != nil {
		return nil, shared.ToDomainErr(err)
	}
	v := ToBookingView(p)
	v.Events = toEventViews(events)
	return v, nil
}

func (q *bookingQueriesImpl) list(ctx context.Context, filter shared.BookingFilter) ([]*booking.Period, error) {
	var periods []*booking.Period
	err := shared.RetryUnavailable(ctx, q.logger, "booking.list", func() error {
		var err error
		periods, err = q.repo.ListBookings(ctx, filter)
		return shared.ToDomainErr(err)
	})
	return periods, err
}

// ListBookings pages through bookings ordered by check-in. The cursor
// names the last booking of the previous page.
func (q *bookingQueriesImpl) ListBookings(ctx context.Context, params BookingListParams) (*BookingPage, error) {
	periods, err := q.list(ctx, params.Filter)
	if err != nil {
		return nil, err
	}

	start := 0
	if params.After != "" {
		_, afterID, err := DecodeAfterCursor(params.After)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(ErrInvalidCursor, err.Error()), errs.ErrValidation)
		}
		start = -1
		for i, p := range periods {
			if p.ID() == afterID {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, errs.Mark(ErrInvalidCursor, errs.ErrValidation)
		}
	}

	limit := ValidateLimit(params.Limit)
	end := min(start+limit, len(periods))

	page := &BookingPage{Items: make([]*BookingView, 0, end-start)}
	for _, p := range periods[start:end] {
		page.Items = append(page.Items, ToBookingView(p))
	}
	if end < len(periods) {
		last := periods[end-1]
		page.NextCursor = EncodeAfterCursor(last.Stay().CheckIn(), last.ID())
	}
	return page, nil
}

func (q *bookingQueriesImpl) ExportCSV(ctx context.Context, w io.Writer, filter shared.BookingFilter) error {
	periods, err := q.list(ctx, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return errs.Wrap(err, "write csv header")
	}
	for _, p := range periods {
		record := []string{
			p.ID().String(),
			p.RoomID().String(),
			booking.FormatDate(p.Stay().CheckIn()),
			booking.FormatDate(p.Stay().CheckOut()),
			strconv.Itoa(p.Stay().Nights()),
			p.Guest().Name(),
			p.Guest().Email(),
			p.Guest().Phone(),
			p.Status().String(),
			strconv.FormatInt(p.Total().Millimes(), 10),
			p.PromoCode(),
			p.CreatedAt().UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return errs.Wrap(err, "write csv record")
		}
	}
	cw.Flush()
	return errs.Wrap(cw.Error(), "flush csv")
}

func (q *bookingQueriesImpl) Dashboard(ctx context.Context) (*DashboardView, error) {
	periods, err := q.list(ctx, shared.BookingFilter{})
	if err != nil {
		return nil, err
	}

	view := &DashboardView{
		CountsByStatus: map[string]int{
			booking.StatusPending.String():   0,
			booking.StatusConfirmed.String(): 0,
			booking.StatusCancelled.String(): 0,
		},
	}
	revenue := money.Money{}
	for _, p := range periods {
		view.CountsByStatus[p.Status().String()]++
		if p.Status() == booking.StatusConfirmed {
			revenue = revenue.Add(p.Total())
		}
	}
	view.ConfirmedRevenue = revenue.Millimes()

	today := booking.DateOf(q.clock.Now())
	view.Date = booking.FormatDate(today)
	for _, r := range q.prices.Catalog().All() {
		cal, err := q.repo.Calendar(ctx, r.ID())
		if err != nil {
			return nil, shared.ToDomainErr(err)
		}
		view.Rooms = append(view.Rooms, RoomTodayView{
			RoomID: r.ID().String(),
			Number: r.Number(),
			Status: cal.StatusOn(today).String(),
		})
	}
	return view, nil
}
