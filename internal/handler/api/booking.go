package api

import (
	"log/slog"
	"net/http"

	"guesthouse-booking/internal/domain/availability"
	reqdto "guesthouse-booking/internal/handler/dto/request"
	resdto "guesthouse-booking/internal/handler/dto/response"
	"guesthouse-booking/internal/handler/httperr"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/commands"
	"guesthouse-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Submit booking
// @Description Runs the booking workflow. A 409 carries the unavailable dates; the guest picks again.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingSubmissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}

	result, err := h.cmds.SubmitBooking(c.Request.Context(), req)
	if err != nil {
		var conflict *availability.ConflictError
		if result != nil && errs.As(err, &conflict) {
			httperr.AbortWithError(c, http.StatusConflict, err, result.Message, httperr.ConflictDetailOf(conflict))
			return
		}
		httperr.AbortMissing(c, err, "Room")
		return
	}

	view, err := h.q.GetBooking(c.Request.Context(), result.BookingID)
	if err != nil {
		// the booking exists; the client can fetch it by id
		slog.Warn("failed to load created booking", "booking_id", result.BookingID.String(), "error", err.Error())
	}
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result, view))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), id)
	if err != nil {
		httperr.AbortMissing(c, err, "Booking")
		return
	}
	c.JSON(http.StatusOK, view)
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
