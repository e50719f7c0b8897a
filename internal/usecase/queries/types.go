package queries

import (
	"time"

	"github.com/google/uuid"
)

// Amounts in views are millimes.

type RoomView struct {
	ID                string   `json:"id"`
	Number            string   `json:"number"`
	Category          string   `json:"category"`
	Capacity          int      `json:"capacity"`
	BasePrice         int64    `json:"basePrice"`
	DisplayPrice      int64    `json:"displayPrice"`
	BreakfastIncluded bool     `json:"breakfastIncluded"`
	Amenities         []string `json:"amenities"`
	Description       string   `json:"description"`
}

type NightView struct {
	Date   string `json:"date"`
	Price  int64  `json:"price"`
	Source string `json:"source"`
}

type QuoteView struct {
	RoomID            string      `json:"roomId"`
	CheckIn           string      `json:"checkIn"`
	CheckOut          string      `json:"checkOut"`
	Nights            []NightView `json:"nights"`
	NightlySum        int64       `json:"nightlySum"`
	WeeklyApplied     bool        `json:"weeklyApplied"`
	Lodging           int64       `json:"lodging"`
	CityTax           int64       `json:"cityTax"`
	BreakfastIncluded bool        `json:"breakfastIncluded"`
	PromoCode         string      `json:"promoCode,omitempty"`
	Total             int64       `json:"total"`
}

type PricingView struct {
	RoomID            string    `json:"roomId"`
	LowSeason         *int64    `json:"lowSeason"`
	HighSeason        *int64    `json:"highSeason"`
	Weekend           *int64    `json:"weekend"`
	Weekly            *int64    `json:"weekly"`
	BreakfastIncluded bool      `json:"breakfastIncluded"`
	CityTax           int64     `json:"cityTax"`
	ExtraBed          int64     `json:"extraBed"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type BookingEventView struct {
	From  string    `json:"from,omitempty"`
	To    string    `json:"to"`
	Actor string    `json:"actor"`
	At    time.Time `json:"at"`
}

type BookingView struct {
	ID         uuid.UUID          `json:"id"`
	RoomID     string             `json:"roomId"`
	CheckIn    string             `json:"checkIn"`
	CheckOut   string             `json:"checkOut"`
	Nights     int                `json:"nights"`
	GuestName  string             `json:"guestName"`
	GuestEmail string             `json:"guestEmail"`
	GuestPhone string             `json:"guestPhone"`
	Status     string             `json:"status"`
	Total      int64              `json:"total"`
	PromoCode  string             `json:"promoCode,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	Events     []BookingEventView `json:"events,omitempty"`
}

type BookingPage struct {
	Items      []*BookingView `json:"items"`
	NextCursor string         `json:"nextCursor,omitempty"`
}

type MaintenanceView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    string    `json:"roomId"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

type RoomTodayView struct {
	RoomID string `json:"roomId"`
	Number string `json:"number"`
	Status string `json:"status"`
}

type DashboardView struct {
	Date             string          `json:"date"`
	CountsByStatus   map[string]int  `json:"countsByStatus"`
	ConfirmedRevenue int64           `json:"confirmedRevenue"`
	Rooms            []RoomTodayView `json:"rooms"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	IsActive  bool       `json:"isActive"`
}
