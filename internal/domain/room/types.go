package room

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidID       = errors.New("invalid room id")
	ErrInvalidCategory = errors.New("invalid room category")
	ErrInvalidStatus   = errors.New("invalid room status")
)

var idRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,31}$`)

type ID string

func NewID(s string) (ID, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if !idRegex.MatchString(s) {
		return "", ErrInvalidID
	}
	return ID(s), nil
}

func (id ID) String() string {
	return string(id)
}

type Category string

const (
	CategoryDouble     Category = "DOUBLE"
	CategoryTwin       Category = "TWIN"
	CategoryFamiliale  Category = "FAMILIALE"
	CategoryDoubleCrib Category = "DOUBLE+CRIB"
	CategoryRoyalSuite Category = "ROYAL_SUITE"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryDouble, CategoryTwin, CategoryFamiliale, CategoryDoubleCrib, CategoryRoyalSuite:
		return true
	default:
		return false
	}
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Status is derived per room and date, never stored.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

// Precedence orders statuses for tie-breaking: higher wins.
func (s Status) Precedence() int {
	switch s {
	case StatusMaintenance:
		return 3
	case StatusOccupied:
		return 2
	case StatusReserved:
		return 1
	default:
		return 0
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusMaintenance:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}
