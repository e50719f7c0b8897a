package api

import (
	"net/http"

	"guesthouse-booking/internal/domain/booking"
	"guesthouse-booking/internal/domain/room"
	reqdto "guesthouse-booking/internal/handler/dto/request"
	resdto "guesthouse-booking/internal/handler/dto/response"
	"guesthouse-booking/internal/handler/httperr"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	catalog      queries.CatalogQueries
	availability queries.AvailabilityQueries
}

func NewRoomHandler(catalog queries.CatalogQueries, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{catalog: catalog, availability: availability}
}

// @Summary List rooms
// @Description Room catalog with tonight's display price
// @Tags rooms
// @Produce json
// @Success 200 {array} queries.RoomView
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.catalog.ListRooms(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} queries.RoomView
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	v, err := h.catalog.GetRoom(c.Request.Context(), id)
	if err != nil {
		httperr.AbortMissing(c, err, "Room")
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Check availability
// @Description False when an active booking or a maintenance window overlaps [checkIn, checkOut)
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param checkIn query string true "YYYY-MM-DD"
// @Param checkOut query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	var q reqdto.StayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	stay, err := q.ToDomain()
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrValidation))
		return
	}

	available, err := h.availability.IsRoomAvailable(c.Request.Context(), id, stay)
	if err != nil {
		httperr.AbortMissing(c, err, "Room")
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		RoomID:    id.String(),
		CheckIn:   booking.FormatDate(stay.CheckIn()),
		CheckOut:  booking.FormatDate(stay.CheckOut()),
		Available: available,
	})
}

// @Summary Room status on a date
// @Description maintenance > occupied > reserved > available
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.RoomStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/status [get]
func (h *RoomHandler) Status(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	var q reqdto.StatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	date, err := booking.ParseDate(q.Date)
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrValidation))
		return
	}

	status, err := h.availability.GetRoomStatus(c.Request.Context(), id, date)
	if err != nil {
		httperr.AbortMissing(c, err, "Room")
		return
	}
	c.JSON(http.StatusOK, resdto.RoomStatusResponse{
		RoomID: id.String(),
		Date:   booking.FormatDate(date),
		Status: status.String(),
	})
}

// @Summary Price quote
// @Description Per-night breakdown and total for a stay, optionally with a promo code
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param checkIn query string true "YYYY-MM-DD"
// @Param checkOut query string true "YYYY-MM-DD"
// @Param promo query string false "Promo code"
// @Success 200 {object} queries.QuoteView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/quote [get]
func (h *RoomHandler) Quote(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	stay, err := q.ToDomain()
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrValidation))
		return
	}

	quote, err := h.catalog.Quote(c.Request.Context(), id, stay, q.Promo)
	if err != nil {
		httperr.AbortMissing(c, err, "Room")
		return
	}
	c.JSON(http.StatusOK, quote)
}

func roomIDParam(c *gin.Context) (room.ID, bool) {
	id, err := room.NewID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid room id", nil)
		return "", false
	}
	return id, true
}
