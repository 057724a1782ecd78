package api

import (
	"context"
	"net/http"

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

type BookingHandler struct {
	cmds     commands.BookingCommands
	checkout commands.CheckoutCommands
	q        queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, checkout commands.CheckoutCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, checkout: checkout, q: q}
}

// @Summary Request a booking
// @Description Create a pending booking for a date range; the nights are held immediately
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	guestID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid date")
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), guestID, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+result.BookingID.String())
	c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{ID: result.BookingID})
}

// @Summary Get booking
// @Description Visible to the booking's guest and the property owner
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Success 200 {array} resdto.BookingResponse
// @Router /api/bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	guestID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid limit")
		return
	}
	views, err := h.q.ListByGuest(c.Request.Context(), guestID, q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List bookings on my properties
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Success 200 {array} resdto.BookingResponse
// @Router /api/owner/bookings [get]
func (h *BookingHandler) ListOwned(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid limit")
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID, q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Approve booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	h.transition(c, h.cmds.Approve)
}

// @Summary Decline booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/decline [post]
func (h *BookingHandler) Decline(c *gin.Context) {
	h.transition(c, h.cmds.Decline)
}

// @Summary Cancel booking
// @Description Guest withdraws a pending booking that has not been paid
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel)
}

// @Summary Open checkout session
// @Description Start hosted payment for a pending booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 201 {object} resdto.CheckoutSessionResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/{id}/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}
	session, err := h.checkout.OpenSession(c.Request.Context(), id, requesterID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutSession(session))
}

type bookingAction func(ctx context.Context, actorID, bookingID uuid.UUID) error

func (h *BookingHandler) transition(c *gin.Context, action bookingAction) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	id, ok := bookingID(c)
	if !ok {
		return
	}
	if err := action(c.Request.Context(), actorID, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.KindValidation, err, "Invalid booking id", nil)
		return uuid.Nil, false
	}
	return id, true
}
