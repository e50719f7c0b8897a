package components

import (
	"guesthouse-booking/internal/handler"
	"guesthouse-booking/internal/handler/api"
	"guesthouse-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewContactHandler,
		api.NewAdminBookingHandler,
		api.NewAdminRoomHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Room         *api.RoomHandler
	Booking      *api.BookingHandler
	Contact      *api.ContactHandler
	AdminBooking *api.AdminBookingHandler
	AdminRoom    *api.AdminRoomHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Room:         p.Room,
		Booking:      p.Booking,
		Contact:      p.Contact,
		AdminBooking: p.AdminBooking,
		AdminRoom:    p.AdminRoom,
	}
}
