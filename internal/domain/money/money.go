// Package money holds amounts in Tunisian dinars as integer millimes.
package money

import (
	"errors"
	"fmt"
)

const MillimesPerDinar = 1000

var ErrNegativeAmount = errors.New("amount cannot be negative")

type Money struct {
	millimes int64
}

func New(millimes int64) Money {
	return Money{millimes: millimes}
}

func NewNonNegative(millimes int64) (Money, error) {
	if millimes < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{millimes: millimes}, nil
}

// Dinars builds an amount from whole dinars.
func Dinars(d int64) Money {
	return Money{millimes: d * MillimesPerDinar}
}

func (m Money) Millimes() int64 {
	return m.millimes
}

func (m Money) Dinars() float64 {
	return float64(m.millimes) / MillimesPerDinar
}

func (m Money) Add(other Money) Money {
	return Money{millimes: m.millimes + other.millimes}
}

func (m Money) Mul(n int) Money {
	return Money{millimes: m.millimes * int64(n)}
}

func (m Money) IsZero() bool {
	return m.millimes == 0
}

func (m Money) IsNegative() bool {
	return m.millimes < 0
}

func (m Money) String() string {
	sign := ""
	v := m.millimes
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%03d TND", sign, v/MillimesPerDinar, v%MillimesPerDinar)
}

func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
