package api

import (
	"net/http"

	"staybook/internal/domain/availability"
	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Property calendar
// @Description Day-by-day state (open, blocked, booked, past) for [start, end)
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param start query string true "First date (YYYY-MM-DD)"
// @Param end query string true "Day after the last date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{id}/availability [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	propertyID, ok := propertyID(c)
	if !ok {
		return
	}
	var q reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "start and end dates are required")
		return
	}
	start, end, err := q.Parse()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid date")
		return
	}

	days, err := h.q.Calendar(c.Request.Context(), propertyID, start, end)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayViews(propertyID, days))
}

// @Summary Check a date range
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param start query string true "Check-in date (YYYY-MM-DD)"
// @Param end query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{id}/availability/check [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	propertyID, ok := propertyID(c)
	if !ok {
		return
	}
	var q reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "start and end dates are required")
		return
	}
	start, end, err := q.Parse()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid date")
		return
	}

	free, err := h.q.IsRangeFree(c.Request.Context(), propertyID, start, end)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityCheckResponse{
		PropertyID: propertyID,
		Start:      q.Start,
		End:        q.End,
		Free:       free,
	})
}

// @Summary Open or block a date range
// @Description All days in [start, end) change together or not at all
// @Tags availability
// @Accept json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.SetAvailabilityRangeRequest true "Range"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/properties/{id}/availability [put]
func (h *AvailabilityHandler) SetRange(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	propertyID, ok := propertyID(c)
	if !ok {
		return
	}
	var req reqdto.SetAvailabilityRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	start, end, err := req.Parse()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid date")
		return
	}

	if err := h.cmds.SetRange(c.Request.Context(), ownerID, propertyID, start, end, *req.IsOpen); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Open or block one day
// @Tags availability
// @Accept json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body reqdto.SetAvailabilityDayRequest true "Day state"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/properties/{id}/availability/{date} [put]
func (h *AvailabilityHandler) SetDay(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	propertyID, ok := propertyID(c)
	if !ok {
		return
	}
	date, err := availability.ParseDate(c.Param("date"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid date")
		return
	}
	var req reqdto.SetAvailabilityDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	if err := h.cmds.SetDay(c.Request.Context(), ownerID, propertyID, date, *req.IsOpen); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func propertyID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.KindValidation, err, "Invalid property id", nil)
		return uuid.Nil, false
	}
	return id, true
}
