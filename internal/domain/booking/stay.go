package booking

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// MaxNights caps a single stay. Longer rentals are negotiated off-line, and
// the cap bounds the per-night pricing loop for a public request.
const MaxNights = 60

var (
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrCheckOutNotAfter    = errors.New("check-out must be after check-in")
	ErrCheckInInPast       = errors.New("check-in cannot be in the past")
	ErrStayTooLong         = errors.New("stay exceeds the maximum number of nights")
	ErrDateOutsideOfWindow = errors.New("date is outside of the stay")
)

// DateOf truncates t to its calendar date in t's own location and
// returns it as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Stay is a half-open range of nights [checkIn, checkOut).
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in, out := DateOf(checkIn), DateOf(checkOut)
	if !out.After(in) {
		return Stay{}, ErrCheckOutNotAfter
	}
	s := Stay{checkIn: in, checkOut: out}
	if s.Nights() > MaxNights {
		return Stay{}, ErrStayTooLong
	}
	return s, nil
}

func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Stay{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Stay{}, err
	}
	return NewStay(in, out)
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) IsZero() bool {
	return s.checkIn.IsZero() && s.checkOut.IsZero()
}

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps uses the half-open test a.in < b.out && b.in < a.out.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

func (s Stay) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}

// EachNight calls fn for every night from check-in up to, not including, check-out.
func (s Stay) EachNight(fn func(night time.Time)) {
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func (s Stay) ValidateStartsFrom(today time.Time) error {
	if s.checkIn.Before(DateOf(today)) {
		return ErrCheckInInPast
	}
	return nil
}

func (s Stay) String() string {
	return fmt.Sprintf("%s to %s", FormatDate(s.checkIn), FormatDate(s.checkOut))
}
