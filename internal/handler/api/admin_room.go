package api

import (
	"net/http"

	reqdto "guesthouse-booking/internal/handler/dto/request"
	resdto "guesthouse-booking/internal/handler/dto/response"
	"guesthouse-booking/internal/handler/httperr"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/usecase/commands"
	"guesthouse-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminRoomHandler struct {
	catalog     queries.CatalogQueries
	pricing     commands.PricingCommands
	maintenance commands.MaintenanceCommands
}

func NewAdminRoomHandler(catalog queries.CatalogQueries, pricing commands.PricingCommands, maintenance commands.MaintenanceCommands) *AdminRoomHandler {
	return &AdminRoomHandler{catalog: catalog, pricing: pricing, maintenance: maintenance}
}

// @Summary Get pricing override
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} queries.PricingView
// @Failure 404 {object} httperr.Response
// @Router /admin/rooms/{id}/pricing [get]
func (h *AdminRoomHandler) GetPricing(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	v, err := h.catalog.GetPricing(c.Request.Context(), id)
	if err != nil {
		httperr.AbortMissing(c, err, "Room")
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Update pricing override
// @Description Partial update in millimes. Omitted fields keep their value; 0 clears a tier.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdatePricingRequest true "Fields to change"
// @Success 200 {object} queries.PricingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/rooms/{id}/pricing [put]
func (h *AdminRoomHandler) UpdatePricing(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	o, err := h.pricing.UpdatePricing(c.Request.Context(), id, req)
	if err != nil {
		httperr.AbortMissing(c, err, "Room")
		return
	}
	c.JSON(http.StatusOK, queries.ToPricingView(o))
}

// @Summary Add maintenance window
// @Description Blocks new bookings for [from, to)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.CreateMaintenanceRequest true "Window"
// @Success 201 {object} queries.MaintenanceView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/rooms/{id}/maintenance [post]
func (h *AdminRoomHandler) AddMaintenance(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	var req reqdto.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	m, err := h.maintenance.AddMaintenance(c.Request.Context(), id, req)
	if err != nil {
		httperr.AbortMissing(c, err, "Room")
		return
	}
	c.JSON(http.StatusCreated, queries.ToMaintenanceView(m))
}

// @Summary Remove maintenance window
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Maintenance window ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/maintenance/{id} [delete]
func (h *AdminRoomHandler) RemoveMaintenance(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.maintenance.RemoveMaintenance(c.Request.Context(), id); err != nil {
		httperr.AbortMissing(c, err, "Maintenance window")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create promo code
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromoRequest true "Promo"
// @Success 201 {object} resdto.PromoResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/promos [post]
func (h *AdminRoomHandler) CreatePromo(c *gin.Context) {
	var req reqdto.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	p, err := h.pricing.CreatePromo(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, errs.ErrConflict) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Promo code already exists", nil)
			return
		}
		httperr.AbortMissing(c, err, "Room")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromo(p))
}
