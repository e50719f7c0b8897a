package notify

import (
	"text/template"

	"guesthouse-booking/internal/domain/money"
)

var funcs = template.FuncMap{
	"tnd": func(millimes int64) string { return money.New(millimes).String() },
}

var (
	guestBookingTmpl = template.Must(template.New("guest_booking").Funcs(funcs).Parse(
		`To: {{.GuestEmail}}
Subject: Your booking request for room {{.RoomID}}

Dear {{.GuestName}},

We received your request for room {{.RoomID}} from {{.CheckIn}} to {{.CheckOut}}.
Total: {{tnd .Total}}
Reference: {{.BookingID}}

We will confirm it shortly.
`))

	adminBookingTmpl = template.Must(template.New("admin_booking").Funcs(funcs).Parse(
		`To: {{.AdminEmail}}
Subject: New booking {{.BookingID}}

Room {{.RoomID}}, {{.CheckIn}} to {{.CheckOut}}
Guest: {{.GuestName}} <{{.GuestEmail}}> {{.GuestPhone}}
Total: {{tnd .Total}}
`))

	guestStatusTmpl = template.Must(template.New("guest_status").Parse(
		`To: {{.GuestEmail}}
Subject: Booking {{.BookingID}} is now {{.To}}

Dear {{.GuestName}},

Your stay in room {{.RoomID}} from {{.CheckIn}} to {{.CheckOut}} is now {{.To}}.
`))

	adminContactTmpl = template.Must(template.New("admin_contact").Parse(
		`To: {{.AdminEmail}}
Subject: Contact message from {{.Name}}
Reply-To: {{.Email}}
{{if .Phone}}Phone: {{.Phone}}
{{end}}
{{.Message}}
`))
)
