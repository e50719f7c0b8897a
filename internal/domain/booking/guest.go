package booking

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyGuestName   = errors.New("guest name cannot be empty")
	ErrGuestNameTooLong = errors.New("guest name must be at most 120 characters")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidPhone     = errors.New("invalid phone number")
)

const maxGuestNameLength = 120

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)
)

type Guest struct {
	name  string
	email string
	phone string
}

func NewGuest(name, email, phone string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, ErrEmptyGuestName
	}
	if utf8.RuneCountInString(name) > maxGuestNameLength {
		return Guest{}, ErrGuestNameTooLong
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Guest{}, ErrInvalidEmail
	}
	phone = strings.TrimSpace(phone)
	if !IsValidPhone(phone) {
		return Guest{}, ErrInvalidPhone
	}
	return Guest{name: name, email: email, phone: phone}, nil
}

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func (g Guest) Name() string  { return g.name }
func (g Guest) Email() string { return g.email }
func (g Guest) Phone() string { return g.phone }

// ReconstructGuest rebuilds a guest from storage without re-validating it.
func ReconstructGuest(name, email, phone string) Guest {
	return Guest{name: name, email: email, phone: phone}
}
