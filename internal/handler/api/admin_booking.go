package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	reqdto "guesthouse-booking/internal/handler/dto/request"
	resdto "guesthouse-booking/internal/handler/dto/response"
	"guesthouse-booking/internal/handler/httperr"
	"guesthouse-booking/internal/handler/middleware"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/commands"
	"guesthouse-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminBookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewAdminBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *AdminBookingHandler {
	return &AdminBookingHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Description Ordered by check-in. Pass nextCursor back as after for the next page.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param roomId query string false "Room ID"
// @Param status query string false "pending, confirmed or cancelled"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param after query string false "Cursor"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminBookingHandler) List(c *gin.Context) {
	var q reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrValidation))
		return
	}

	page, err := h.q.ListBookings(c.Request.Context(), queries.BookingListParams{
		Filter: filter,
		After:  q.After,
		Limit:  q.Limit,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingPage(page)
	if err != nil {
		httperr.Abort(c, errs.Wrap(err, "map booking page"))
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Change booking status
// @Description pending to confirmed (availability re-checked), pending or confirmed to cancelled
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminBookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	next, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrValidation))
		return
	}

	p, err := h.cmds.UpdateBookingStatus(c.Request.Context(), id, next, middleware.Actor(c))
	if err != nil {
		httperr.AbortMissing(c, err, "Booking")
		return
	}
	c.JSON(http.StatusOK, queries.ToBookingView(p))
}

// @Summary Toggle booking status
// @Description pending to confirmed, confirmed to cancelled
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/toggle [post]
func (h *AdminBookingHandler) Toggle(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	p, err := h.cmds.ToggleBookingStatus(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		httperr.AbortMissing(c, err, "Booking")
		return
	}
	c.JSON(http.StatusOK, queries.ToBookingView(p))
}

// @Summary Export bookings
// @Description CSV export, same filters as the list
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings/export [get]
func (h *AdminBookingHandler) Export(c *gin.Context) {
	var q reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrValidation))
		return
	}

	// buffered so a failure can still be answered with JSON
	var buf bytes.Buffer
	if err := h.q.ExportCSV(c.Request.Context(), &buf, filter); err != nil {
		httperr.Abort(c, err)
		return
	}
	filename := fmt.Sprintf("bookings-%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// @Summary Dashboard
// @Description Counts per status, confirmed revenue and today's status per room
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardView
// @Router /admin/dashboard [get]
func (h *AdminBookingHandler) Dashboard(c *gin.Context) {
	d, err := h.q.Dashboard(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
