package pricing

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidWeekday = errors.New("invalid weekday name")
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")
)

type Season string

const (
	SeasonLow  Season = "low"
	SeasonHigh Season = "high"
)

// Policy holds the calendar rules that pick a pricing tier for a night.
type Policy struct {
	weekendDays map[time.Weekday]struct{}
	highMonths  map[time.Month]struct{}
}

func NewPolicy(weekendDays []string, highSeasonMonths []int) (Policy, error) {
	p := Policy{
		weekendDays: make(map[time.Weekday]struct{}, len(weekendDays)),
		highMonths:  make(map[time.Month]struct{}, len(highSeasonMonths)),
	}
	for _, name := range weekendDays {
		wd, err := parseWeekday(name)
		if err != nil {
			return Policy{}, err
		}
		p.weekendDays[wd] = struct{}{}
	}
	for _, m := range highSeasonMonths {
		if m < 1 || m > 12 {
			return Policy{}, ErrInvalidMonth
		}
		p.highMonths[time.Month(m)] = struct{}{}
	}
	return p, nil
}

// DefaultPolicy: Friday and Saturday nights are weekend, June to September is high season.
func DefaultPolicy() Policy {
	p, _ := NewPolicy([]string{"friday", "saturday"}, []int{6, 7, 8, 9})
	return p
}

func (p Policy) IsWeekend(night time.Time) bool {
	_, ok := p.weekendDays[night.Weekday()]
	return ok
}

func (p Policy) SeasonOf(night time.Time) Season {
	if _, ok := p.highMonths[night.Month()]; ok {
		return SeasonHigh
	}
	return SeasonLow
}

func parseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, ErrInvalidWeekday
}
