package request

import (
	"time"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/usecase/shared"
)

type CreateBookingRequest struct {
	RoomID     string `json:"roomId" binding:"required,roomid"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	GuestName  string `json:"guestName" binding:"required,max=120"`
	GuestEmail string `json:"guestEmail" binding:"required,email"`
	GuestPhone string `json:"guestPhone" binding:"required,phone"`
	PromoCode  string `json:"promoCode,omitempty"`
}

// Dates parses check-in and check-out without ordering them; the booking
// workflow owns that rule.
func (r CreateBookingRequest) Dates() (time.Time, time.Time, error) {
	in, err := booking.ParseDate(r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := booking.ParseDate(r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

func (r UpdateBookingStatusRequest) ToDomain() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}

type BookingListQuery struct {
	RoomID string `form:"roomId" binding:"omitempty,roomid"`
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	From   string `form:"from"`
	To     string `form:"to"`
	After  string `form:"after"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// ToFilter selects bookings overlapping [From, To) when either is set.
func (q BookingListQuery) ToFilter() (shared.BookingFilter, error) {
	var f shared.BookingFilter
	if q.RoomID != "" {
		id, err := room.NewID(q.RoomID)
		if err != nil {
			return f, err
		}
		f.RoomID = &id
	}
	if q.Status != "" {
		st, err := booking.ParseStatus(q.Status)
		if err != nil {
			return f, err
		}
		f.Status = &st
	}
	from, err := optionalDate(&q.From)
	if err != nil {
		return f, err
	}
	to, err := optionalDate(&q.To)
	if err != nil {
		return f, err
	}
	f.From, f.To = from, to
	return f, nil
}

type StayQuery struct {
	CheckIn  string `form:"checkIn" binding:"required"`
	CheckOut string `form:"checkOut" binding:"required"`
}

func (q StayQuery) ToDomain() (booking.Stay, error) {
	return booking.ParseStay(q.CheckIn, q.CheckOut)
}

type QuoteQuery struct {
	StayQuery
	Promo string `form:"promo"`
}

type StatusQuery struct {
	Date string `form:"date" binding:"required"`
}
