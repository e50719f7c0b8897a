//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/handler/api"
	resdto "guesthouse-booking/internal/handler/dto/response"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/queries"
	"guesthouse-booking/tests/common/httptest"
	queriesmock "guesthouse-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCatalog      *queriesmock.MockCatalogQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	h := api.NewRoomHandler(s.mockCatalog, s.mockAvailability)

	s.router.GET("/rooms", h.List)
	s.router.GET("/rooms/:id", h.Get)
	s.router.GET("/rooms/:id/availability", h.Availability)
	s.router.GET("/rooms/:id/status", h.Status)
	s.router.GET("/rooms/:id/quote", h.Quote)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestList() {
	s.mockCatalog.EXPECT().ListRooms(gomock.Any()).Return([]*queries.RoomView{
		{ID: "ch-11", Number: "11", Category: "DOUBLE", BasePrice: 200_000, DisplayPrice: 250_000},
		{ID: "ch-12", Number: "12", Category: "TWIN", BasePrice: 180_000, DisplayPrice: 180_000},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

	var response []queries.RoomView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response, 2)
	s.Equal(int64(250_000), response[0].DisplayPrice)
}

func (s *RoomHandlerTestSuite) TestGet() {
	s.Run("error: 404 on unknown room", func() {
		s.mockCatalog.EXPECT().GetRoom(gomock.Any(), room.ID("ch-99")).
			Return(nil, errs.Mark(errors.New("room not found"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/ch-99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/x", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room id")
	})
}

func (s *RoomHandlerTestSuite) TestAvailability() {
	stay, err := booking.ParseStay("2024-07-05", "2024-07-07")
	s.Require().NoError(err)

	s.Run("success: reports availability for the stay", func() {
		s.mockAvailability.EXPECT().IsRoomAvailable(gomock.Any(), room.ID("ch-11"), stay).Return(false, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms/ch-11/availability?checkIn=2024-07-05&checkOut=2024-07-07", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
		s.Equal("2024-07-05", response.CheckIn)
		s.Equal("2024-07-07", response.CheckOut)
	})

	s.Run("error: 400 on bad stays", func() {
		testCases := []struct {
			name  string
			query string
			msg   string
		}{
			{name: "missing checkOut", query: "?checkIn=2024-07-05", msg: "Invalid request"},
			{name: "check-out before check-in", query: "?checkIn=2024-07-07&checkOut=2024-07-05", msg: "check-out must be after check-in"},
			{name: "same day", query: "?checkIn=2024-07-07&checkOut=2024-07-07", msg: "check-out must be after check-in"},
			{name: "malformed date", query: "?checkIn=07/05/2024&checkOut=2024-07-07", msg: "invalid date"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/ch-11/availability"+tc.query, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})
}

func (s *RoomHandlerTestSuite) TestStatus() {
	date := time.Date(2024, 7, 6, 0, 0, 0, 0, time.UTC)

	s.Run("success", func() {
		s.mockAvailability.EXPECT().GetRoomStatus(gomock.Any(), room.ID("ch-11"), date).Return(room.StatusOccupied, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/ch-11/status?date=2024-07-06", nil, "")

		var response resdto.RoomStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("occupied", response.Status)
		s.Equal("2024-07-06", response.Date)
	})

	s.Run("error: 400 without a date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/ch-11/status", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *RoomHandlerTestSuite) TestQuote() {
	stay, err := booking.ParseStay("2024-07-05", "2024-07-07")
	s.Require().NoError(err)

	s.Run("success: passes the promo code through", func() {
		s.mockCatalog.EXPECT().Quote(gomock.Any(), room.ID("ch-11"), stay, "SUMMER24").
			Return(&queries.QuoteView{RoomID: "ch-11", Total: 300_000, PromoCode: "SUMMER24"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms/ch-11/quote?checkIn=2024-07-05&checkOut=2024-07-07&promo=SUMMER24", nil, "")

		var response queries.QuoteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(300_000), response.Total)
	})

	s.Run("error: unknown promo is a 400", func() {
		s.mockCatalog.EXPECT().Quote(gomock.Any(), room.ID("ch-11"), stay, "NOPE").
			Return(nil, errs.Mark(errors.New("unknown promo code"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms/ch-11/quote?checkIn=2024-07-05&checkOut=2024-07-07&promo=NOPE", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unknown promo code")
	})
}
