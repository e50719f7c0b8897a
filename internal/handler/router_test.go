//go:build unit

package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/domain/user"
	"guesthouse-booking/internal/handler"
	"guesthouse-booking/internal/handler/api"
	reqdto "guesthouse-booking/internal/handler/dto/request"
	resdto "guesthouse-booking/internal/handler/dto/response"
	"guesthouse-booking/internal/handler/middleware"
	"guesthouse-booking/internal/pkg/config"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/pkg/jwt"
	"guesthouse-booking/internal/usecase/queries"
	"guesthouse-booking/internal/usecase/shared"
	"guesthouse-booking/tests/common/builder"
	"guesthouse-booking/tests/common/httptest"
	commandsmock "guesthouse-booking/tests/mock/commands"
	queriesmock "guesthouse-booking/tests/mock/queries"
	usecasemock "guesthouse-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	viewerToken  = "viewer-token"
	managerToken = "manager-token"
	adminToken   = "admin-token"
)

type RouterTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	validator   *usecasemock.MockTokenValidator
	bookings    *commandsmock.MockBookingCommands
	bookingQ    *queriesmock.MockBookingQueries
	pricing     *commandsmock.MockPricingCommands
	maintenance *commandsmock.MockMaintenanceCommands
	userID      uuid.UUID
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.validator = usecasemock.NewMockTokenValidator(s.ctrl)
	s.bookings = commandsmock.NewMockBookingCommands(s.ctrl)
	s.bookingQ = queriesmock.NewMockBookingQueries(s.ctrl)
	s.pricing = commandsmock.NewMockPricingCommands(s.ctrl)
	s.maintenance = commandsmock.NewMockMaintenanceCommands(s.ctrl)
	catalog := queriesmock.NewMockCatalogQueries(s.ctrl)
	s.userID = uuid.New()

	for token, role := range map[string]user.Role{
		viewerToken:  user.RoleViewer,
		managerToken: user.RoleManager,
		adminToken:   user.RoleAdmin,
	} {
		s.validator.EXPECT().ValidateToken(token).Return(s.userID, role, nil).AnyTimes()
	}
	s.validator.EXPECT().ValidateToken("expired").Return(uuid.Nil, user.Role(""), jwt.ErrExpiredToken).AnyTimes()

	cfg := config.NewTestConfig()
	s.router = gin.New()
	handler.NewRouter(s.router, cfg, middleware.NewLogger(cfg.Log), handler.Handlers{
		Auth:         api.NewAuthHandler(commandsmock.NewMockAuthCommands(s.ctrl), queriesmock.NewMockUserQueries(s.ctrl), cfg),
		Room:         api.NewRoomHandler(catalog, queriesmock.NewMockAvailabilityQueries(s.ctrl)),
		Booking:      api.NewBookingHandler(s.bookings, s.bookingQ),
		Contact:      api.NewContactHandler(commandsmock.NewMockContactCommands(s.ctrl)),
		AdminBooking: api.NewAdminBookingHandler(s.bookings, s.bookingQ),
		AdminRoom:    api.NewAdminRoomHandler(catalog, s.pricing, s.maintenance),
	}, middleware.NewAuthMiddleware(s.validator))
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestCORSPreflight() {
	req, _ := http.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	httptest.AssertHeaders(s.T(), rec, map[string]string{
		"Access-Control-Allow-Origin":      "http://localhost:3000",
		"Access-Control-Allow-Credentials": "true",
	})
}

func (s *RouterTestSuite) TestAdminRequiresToken() {
	s.Run("no token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/dashboard", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
	s.Run("expired token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/dashboard", nil, "expired")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *RouterTestSuite) TestCapabilities() {
	testCases := []struct {
		name   string
		token  string
		method string
		path   string
		body   any
	}{
		{name: "viewer cannot update pricing", token: viewerToken, method: http.MethodPut, path: "/api/admin/rooms/ch-11/pricing", body: reqdto.UpdatePricingRequest{}},
		{name: "viewer cannot toggle", token: viewerToken, method: http.MethodPost, path: "/api/admin/bookings/" + uuid.NewString() + "/toggle"},
		{name: "viewer cannot export", token: viewerToken, method: http.MethodGet, path: "/api/admin/bookings/export"},
		{name: "manager cannot create promos", token: managerToken, method: http.MethodPost, path: "/api/admin/promos", body: reqdto.CreatePromoRequest{Code: "SUMMER24"}},
		{name: "manager cannot update pricing", token: managerToken, method: http.MethodPut, path: "/api/admin/rooms/ch-11/pricing", body: reqdto.UpdatePricingRequest{}},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, tc.method, tc.path, tc.body, tc.token)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
		})
	}
}

func (s *RouterTestSuite) TestListBookings() {
	s.Run("viewer lists with filters", func() {
		st := booking.StatusPending
		id := room.ID("ch-11")
		view := builder.NewBookingBuilder().BuildView(uuid.New())
		s.bookingQ.EXPECT().ListBookings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params queries.BookingListParams) (*queries.BookingPage, error) {
				want := shared.BookingFilter{RoomID: &id, Status: &st}
				if diff := cmp.Diff(want, params.Filter); diff != "" {
					s.T().Errorf("filter mismatch (-want +got):\n%s", diff)
				}
				s.Equal(10, params.Limit)
				return &queries.BookingPage{Items: []*queries.BookingView{view}, NextCursor: "abc"}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings?roomId=ch-11&status=pending&limit=10", nil, viewerToken)

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(view.ID, response.Items[0].ID)
		s.Equal("Amel Ben Salah", response.Items[0].GuestName)
		s.Equal(int64(400_000), response.Items[0].Total)
		s.Equal("abc", response.NextCursor)
	})

	s.Run("unknown status is a 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings?status=archived", nil, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *RouterTestSuite) TestStatusChanges() {
	stay, err := booking.ParseStay("2024-07-05", "2024-07-07")
	s.Require().NoError(err)
	guest, err := booking.NewGuest("Amel", "amel@example.com", "+21620123456")
	s.Require().NoError(err)
	p, err := booking.NewPeriod("ch-11", stay, guest, money.Dinars(400), "", stay.CheckIn())
	s.Require().NoError(err)
	s.Require().NoError(p.TransitionTo(booking.StatusConfirmed, stay.CheckIn()))

	s.Run("manager toggles and is recorded as the actor", func() {
		s.bookings.EXPECT().ToggleBookingStatus(gomock.Any(), p.ID(), "user:"+s.userID.String()).Return(p, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/bookings/"+p.ID().String()+"/toggle", nil, managerToken)

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("invalid transition is a 400", func() {
		s.bookings.EXPECT().UpdateBookingStatus(gomock.Any(), p.ID(), booking.StatusPending, gomock.Any()).
			Return(nil, errs.Mark(errs.Wrapf(booking.ErrInvalidTransition, "%s to %s", "confirmed", "pending"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/admin/bookings/"+p.ID().String()+"/status",
			reqdto.UpdateBookingStatusRequest{Status: "pending"}, managerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "confirmed to pending")
	})

	s.Run("unknown status value is rejected before the use case", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/admin/bookings/"+p.ID().String()+"/status",
			map[string]string{"status": "archived"}, managerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("unknown booking is a 404", func() {
		id := uuid.New()
		s.bookings.EXPECT().ToggleBookingStatus(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Mark(errors.New("NOT_FOUND: booking not found"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/bookings/"+id.String()+"/toggle", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *RouterTestSuite) TestExport() {
	s.bookingQ.EXPECT().ExportCSV(gomock.Any(), gomock.Any(), shared.BookingFilter{}).
		DoAndReturn(func(_ context.Context, w io.Writer, _ shared.BookingFilter) error {
			_, err := io.WriteString(w, "id,room_id\n1,ch-11\n")
			return err
		})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings/export", nil, managerToken)

	s.Equal(http.StatusOK, rec.Code)
	httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "text/csv; charset=utf-8"})
	s.Contains(rec.Header().Get("Content-Disposition"), "attachment; filename=")
	s.Equal("id,room_id\n1,ch-11\n", rec.Body.String())
}

func (s *RouterTestSuite) TestPromoAndMaintenance() {
	s.Run("duplicate promo is a 409", func() {
		req := reqdto.CreatePromoRequest{Code: "SUMMER24", NightlyPrice: 150_000}
		s.pricing.EXPECT().CreatePromo(gomock.Any(), req).
			Return(nil, errs.Mark(errors.New("DUPLICATE_KEY: promo exists"), errs.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/promos", req, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Promo code already exists")
	})

	s.Run("manager removes a maintenance window", func() {
		id := uuid.New()
		s.maintenance.EXPECT().RemoveMaintenance(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/maintenance/"+id.String(), nil, managerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("backwards maintenance window is a 400", func() {
		req := reqdto.CreateMaintenanceRequest{From: "2024-07-10", To: "2024-07-08", Reason: "paint"}
		s.maintenance.EXPECT().AddMaintenance(gomock.Any(), room.ID("ch-11"), req).
			Return(nil, errs.Mark(booking.ErrCheckOutNotAfter, errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/rooms/ch-11/maintenance", req, managerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "check-out must be after check-in")
	})
}
