//go:build unit || e2e

package builder

import (
	"time"

	"guesthouse-booking/internal/domain/booking"
	reqdto "guesthouse-booking/internal/handler/dto/request"
	"guesthouse-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomID     string
	CheckIn    string
	CheckOut   string
	GuestName  string
	GuestEmail string
	GuestPhone string
	PromoCode  string
	Status     string
	Total      int64
}

// NewBookingBuilder describes the two-night ch-11 stay used across tests.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RoomID:     "ch-11",
		CheckIn:    "2024-07-05",
		CheckOut:   "2024-07-07",
		GuestName:  "Amel Ben Salah",
		GuestEmail: "amel@example.com",
		GuestPhone: "+216 20 123 456",
		Status:     "pending",
		Total:      400_000,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn, b.CheckOut = checkIn, checkOut
	return b
}

func (b *BookingBuilder) WithRoom(roomID string) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		PromoCode:  b.PromoCode,
	}
}

func (b *BookingBuilder) BuildView(id uuid.UUID) *queries.BookingView {
	nights := 0
	if stay, err := booking.ParseStay(b.CheckIn, b.CheckOut); err == nil {
		nights = stay.Nights()
	}
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:         id,
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Nights:     nights,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		Status:     b.Status,
		Total:      b.Total,
		PromoCode:  b.PromoCode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
