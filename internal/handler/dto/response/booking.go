package response

import (
	"time"

	"guesthouse-booking/internal/usecase/commands"
	"guesthouse-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingSubmissionResponse struct {
	State     string               `json:"state"`
	BookingID uuid.UUID            `json:"bookingId"`
	Booking   *queries.BookingView `json:"booking,omitempty"`
}

func FromSubmitResult(r *commands.SubmitBookingResult, view *queries.BookingView) *BookingSubmissionResponse {
	return &BookingSubmissionResponse{
		State:     r.State.String(),
		BookingID: r.BookingID,
		Booking:   view,
	}
}

// BookingListItem is the admin table row; the audit trail is left out.
type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	RoomID     string    `json:"roomId"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Nights     int       `json:"nights"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail"`
	GuestPhone string    `json:"guestPhone"`
	Status     string    `json:"status"`
	Total      int64     `json:"total"`
	CreatedAt  time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Items      []BookingListItem `json:"items"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

func FromBookingPage(page *queries.BookingPage) (*BookingListResponse, error) {
	res := &BookingListResponse{
		Items:      make([]BookingListItem, 0, len(page.Items)),
		NextCursor: page.NextCursor,
	}
	if err := copier.Copy(&res.Items, page.Items); err != nil {
		return nil, err
	}
	return res, nil
}

type AvailabilityResponse struct {
	RoomID    string `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Available bool   `json:"available"`
}

type RoomStatusResponse struct {
	RoomID string `json:"roomId"`
	Date   string `json:"date"`
	Status string `json:"status"`
}
