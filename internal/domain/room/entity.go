package room

import (
	"errors"
	"slices"
	"strings"

	"guesthouse-booking/internal/domain/money"
)

var (
	ErrEmptyRoomNumber  = errors.New("room number cannot be empty")
	ErrInvalidCapacity  = errors.New("capacity must be at least 1")
	ErrInvalidBasePrice = errors.New("base price must be positive")
)

type Room struct {
	id          ID
	number      string
	category    Category
	capacity    int
	basePrice   money.Money
	amenities   []string
	description string
}

func NewRoom(
	id ID,
	number string,
	category Category,
	capacity int,
	basePrice money.Money,
	amenities []string,
	description string,
) (*Room, error) {
	if _, err := NewID(id.String()); err != nil {
		return nil, err
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if basePrice.Millimes() <= 0 {
		return nil, ErrInvalidBasePrice
	}

	return &Room{
		id:          id,
		number:      number,
		category:    category,
		capacity:    capacity,
		basePrice:   basePrice,
		amenities:   slices.Clone(amenities),
		description: strings.TrimSpace(description),
	}, nil
}

func (r *Room) ID() ID                 { return r.id }
func (r *Room) Number() string         { return r.number }
func (r *Room) Category() Category     { return r.category }
func (r *Room) Capacity() int          { return r.capacity }
func (r *Room) BasePrice() money.Money { return r.basePrice }
func (r *Room) Amenities() []string    { return slices.Clone(r.amenities) }
func (r *Room) Description() string    { return r.description }
