//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"guesthouse-booking/internal/domain/availability"
	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/workflow"
	"guesthouse-booking/internal/handler/api"
	resdto "guesthouse-booking/internal/handler/dto/response"
	"guesthouse-booking/internal/handler/middleware"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/commands"
	"guesthouse-booking/internal/usecase/queries"
	"guesthouse-booking/tests/common/builder"
	"guesthouse-booking/tests/common/httptest"
	"guesthouse-booking/tests/common/testutil"
	commandsmock "guesthouse-booking/tests/mock/commands"
	queriesmock "guesthouse-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", h.Submit)
	s.router.GET("/bookings/:id", h.Get)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestSubmit() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildDTO()

	s.Run("success: 201 with the stored booking", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), reqBody).
			Return(&commands.SubmitBookingResult{State: workflow.StateConfirmed, BookingID: id}, nil).Times(1)
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id).
			Return(b.BuildView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingSubmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("confirmed", response.State)
		s.Equal(id, response.BookingID)
		s.Require().NotNil(response.Booking)
		s.Equal(int64(400_000), response.Booking.Total)
		s.Equal(2, response.Booking.Nights)
	})

	s.Run("success: 201 even when reloading the booking fails", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), reqBody).
			Return(&commands.SubmitBookingResult{State: workflow.StateConfirmed, BookingID: id}, nil)
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id).
			Return(nil, errs.Mark(errors.New("timeout"), errs.ErrUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingSubmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.BookingID)
		s.Nil(response.Booking)
	})

	s.Run("error: 409 names the unavailable dates", func() {
		requested, err := booking.ParseStay("2024-07-05", "2024-07-07")
		s.Require().NoError(err)
		blocking, err := booking.ParseStay("2024-07-06", "2024-07-09")
		s.Require().NoError(err)
		conflict := errs.Mark(&availability.ConflictError{
			RoomID:    "ch-11",
			Requested: requested,
			Blocking:  []booking.Stay{blocking},
			Reason:    availability.ReasonBooked,
		}, errs.ErrConflict)
		msg := "room ch-11 is not available on 2024-07-06, please pick other dates"

		s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), reqBody).
			Return(&commands.SubmitBookingResult{State: workflow.StateSelectingRoom, Message: msg}, conflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		dates := httptest.AssertConflictResponse(s.T(), rec, "ch-11")
		s.Equal([]string{"2024-07-06"}, dates)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, msg)
	})

	s.Run("error: 400 on request validation", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing roomId", mutate: testutil.Field("roomId", nil)},
			{name: "malformed roomId", mutate: testutil.Field("roomId", "Chambre 11!")},
			{name: "missing checkIn", mutate: testutil.Field("checkIn", nil)},
			{name: "missing guestName", mutate: testutil.Field("guestName", nil)},
			{name: "invalid email", mutate: testutil.Field("guestEmail", "amel-at-example")},
			{name: "invalid phone", mutate: testutil.Field("guestPhone", "call me")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps workflow errors to statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "check-out before check-in",
				err:            errs.Mark(booking.ErrCheckOutNotAfter, errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "check-out must be after check-in",
			},
			{
				name:           "unknown room",
				err:            errs.Mark(errors.New("room not found"), errs.ErrNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "store unavailable",
				err:            errs.Mark(errors.New("connection reset"), errs.ErrUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Service temporarily unavailable",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), reqBody).
					Return(&commands.SubmitBookingResult{State: workflow.StateFailed}, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		id := uuid.New()
		view := builder.NewBookingBuilder().BuildView(id)
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("2024-07-05", response.CheckIn)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 on unknown booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id).
			Return(nil, errs.Mark(errors.New("NOT_FOUND: booking not found"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
