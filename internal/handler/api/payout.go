package api

import (
	"net/http"

	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PayoutHandler struct {
	cmds commands.PayoutCommands
	q    queries.PayoutQueries
}

func NewPayoutHandler(cmds commands.PayoutCommands, q queries.PayoutQueries) *PayoutHandler {
	return &PayoutHandler{cmds: cmds, q: q}
}

// @Summary Ensure payout account
// @Description Create the owner's processor account on first call; later calls return the same account
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PayoutAccountResponse
// @Failure 403 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/payouts/account [post]
func (h *PayoutHandler) EnsureAccount(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	ref, err := h.cmds.EnsureAccount(c.Request.Context(), principal)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PayoutAccountResponse{AccountRef: ref})
}

// @Summary Onboarding link
// @Description Single-use link to the processor's hosted onboarding
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OnboardingLinkResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/payouts/account/onboarding-link [post]
func (h *PayoutHandler) OnboardingLink(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	url, err := h.cmds.CreateOnboardingLink(c.Request.Context(), principal)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OnboardingLinkResponse{URL: url})
}

// @Summary Payout account status
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PayoutStatusResponse
// @Router /api/payouts/account [get]
func (h *PayoutHandler) Status(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	view, err := h.q.Status(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPayoutStatus(view))
}
