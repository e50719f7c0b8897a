package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"guesthouse-booking/internal/domain/user"
	"guesthouse-booking/internal/handler/api"
	"guesthouse-booking/internal/handler/middleware"
	"guesthouse-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	// Cap, when set, is checked after authentication.
	Cap user.Capability
}

type Handlers struct {
	Auth         *api.AuthHandler
	Room         *api.RoomHandler
	Booking      *api.BookingHandler
	Contact      *api.ContactHandler
	AdminBooking *api.AdminBookingHandler
	AdminRoom    *api.AdminRoomHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	middleware.RegisterValidators()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Room.Availability},
			{Method: http.MethodGet, Path: "/:id/status", Handler: h.Room.Status},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: h.Room.Quote},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Submit},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Submit},
		})

		admin := apiGroup.Group("/admin", authMiddleware.RequireAuth())
		addAdminRoutes(admin, authMiddleware, []route{
			{Method: http.MethodGet, Path: "/bookings", Handler: h.AdminBooking.List, Cap: user.CapViewBookings},
			{Method: http.MethodGet, Path: "/bookings/export", Handler: h.AdminBooking.Export, Cap: user.CapExportBookings},
			{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.AdminBooking.UpdateStatus, Cap: user.CapChangeBookingStatus},
			{Method: http.MethodPost, Path: "/bookings/:id/toggle", Handler: h.AdminBooking.Toggle, Cap: user.CapChangeBookingStatus},
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.AdminBooking.Dashboard, Cap: user.CapViewDashboard},
			{Method: http.MethodGet, Path: "/rooms/:id/pricing", Handler: h.AdminRoom.GetPricing, Cap: user.CapViewBookings},
			{Method: http.MethodPut, Path: "/rooms/:id/pricing", Handler: h.AdminRoom.UpdatePricing, Cap: user.CapUpdatePricing},
			{Method: http.MethodPost, Path: "/rooms/:id/maintenance", Handler: h.AdminRoom.AddMaintenance, Cap: user.CapManageMaintenance},
			{Method: http.MethodDelete, Path: "/maintenance/:id", Handler: h.AdminRoom.RemoveMaintenance, Cap: user.CapManageMaintenance},
			{Method: http.MethodPost, Path: "/promos", Handler: h.AdminRoom.CreatePromo, Cap: user.CapManagePromos},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}

// addAdminRoutes refuses to register a route without a capability.
func addAdminRoutes(g *gin.RouterGroup, auth *middleware.AuthMiddleware, rs []route) {
	for _, r := range rs {
		if r.Cap == "" {
			panic("admin route without capability: " + r.Method + " " + r.Path)
		}
		g.Handle(r.Method, r.Path, auth.RequireCapability(r.Cap), r.Handler)
	}
}
