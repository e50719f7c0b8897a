package contact

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"guesthouse-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrEmptyMessage   = errors.New("message cannot be empty")
	ErrMessageTooLong = errors.New("message must be at most 2000 characters")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidPhone   = errors.New("invalid phone number")
)

const maxMessageLength = 2000

type Message struct {
	id        uuid.UUID
	name      string
	email     string
	phone     *string
	body      string
	createdAt time.Time
}

func NewMessage(name, email string, phone *string, body string, now time.Time) (*Message, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email = strings.TrimSpace(email)
	if !booking.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if phone != nil {
		p := strings.TrimSpace(*phone)
		if p == "" {
			phone = nil
		} else if !booking.IsValidPhone(p) {
			return nil, ErrInvalidPhone
		} else {
			phone = &p
		}
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(body) > maxMessageLength {
		return nil, ErrMessageTooLong
	}

	return &Message{
		id:        uuid.New(),
		name:      name,
		email:     email,
		phone:     phone,
		body:      body,
		createdAt: now,
	}, nil
}

func (m *Message) ID() uuid.UUID        { return m.id }
func (m *Message) Name() string         { return m.name }
func (m *Message) Email() string        { return m.email }
func (m *Message) Phone() *string       { return m.phone }
func (m *Message) Body() string         { return m.body }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
