package queries

import (
	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/domain/user"
)

func toRoomView(r *room.Room, o *pricing.Override, display money.Money) *RoomView {
	v := &RoomView{
		ID:           r.ID().String(),
		Number:       r.Number(),
		Category:     r.Category().String(),
		Capacity:     r.Capacity(),
		BasePrice:    r.BasePrice().Millimes(),
		DisplayPrice: display.Millimes(),
		Amenities:    r.Amenities(),
		Description:  r.Description(),
	}
	if o != nil {
		v.BreakfastIncluded = o.BreakfastIncluded()
	}
	return v
}

func toQuoteView(q pricing.Quote) *QuoteView {
	nights := make([]NightView, len(q.Nights))
	for i, n := range q.Nights {
		nights[i] = NightView{
			Date:   booking.FormatDate(n.Date),
			Price:  n.Price.Millimes(),
			Source: string(n.Source),
		}
	}
	return &QuoteView{
		RoomID:            q.RoomID.String(),
		CheckIn:           booking.FormatDate(q.Stay.CheckIn()),
		CheckOut:          booking.FormatDate(q.Stay.CheckOut()),
		Nights:            nights,
		NightlySum:        q.NightlySum.Millimes(),
		WeeklyApplied:     q.WeeklyApplied,
		Lodging:           q.Lodging.Millimes(),
		CityTax:           q.CityTax.Millimes(),
		BreakfastIncluded: q.BreakfastIncluded,
		PromoCode:         q.PromoCode,
		Total:             q.Total.Millimes(),
	}
}

func ToPricingView(o *pricing.Override) *PricingView {
	return &PricingView{
		RoomID:            o.RoomID().String(),
		LowSeason:         optionalMillimes(o.LowSeason()),
		HighSeason:        optionalMillimes(o.HighSeason()),
		Weekend:           optionalMillimes(o.Weekend()),
		Weekly:            optionalMillimes(o.Weekly()),
		BreakfastIncluded: o.BreakfastIncluded(),
		CityTax:           o.CityTax().Millimes(),
		ExtraBed:          o.ExtraBed().Millimes(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

func optionalMillimes(m *money.Money) *int64 {
	if m == nil {
		return nil
	}
	v := m.Millimes()
	return &v
}

func ToBookingView(p *booking.Period) *BookingView {
	return &BookingView{
		ID:         p.ID(),
		RoomID:     p.RoomID().String(),
		CheckIn:    booking.FormatDate(p.Stay().CheckIn()),
		CheckOut:   booking.FormatDate(p.Stay().CheckOut()),
		Nights:     p.Stay().Nights(),
		GuestName:  p.Guest().Name(),
		GuestEmail: p.Guest().Email(),
		GuestPhone: p.Guest().Phone(),
		Status:     p.Status().String(),
		Total:      p.Total().Millimes(),
		PromoCode:  p.PromoCode(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
	}
}

func toEventViews(events []booking.Event) []BookingEventView {
	out := make([]BookingEventView, len(events))
	for i, e := range events {
		out[i] = BookingEventView{
			From:  e.From.String(),
			To:    e.To.String(),
			Actor: e.Actor,
			At:    e.At,
		}
	}
	return out
}

func ToMaintenanceView(m *availability.Maintenance) *MaintenanceView {
	return &MaintenanceView{
		ID:        m.ID(),
		RoomID:    m.RoomID().String(),
		From:      booking.FormatDate(m.Window().CheckIn()),
		To:        booking.FormatDate(m.Window().CheckOut()),
		Reason:    m.Reason(),
		CreatedAt: m.CreatedAt(),
	}
}

func toAuthorizedUserView(u *user.User) *AuthorizedUserView {
	return &AuthorizedUserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		LastLogin: u.LastLogin(),
		IsActive:  u.IsActive(),
	}
}
