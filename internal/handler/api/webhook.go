package api

import (
	"errors"
	"log/slog"
	"net/http"

	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "Stripe-Signature"
	// the processor caps event payloads well below this
	maxWebhookBody = 1 << 16
)

type WebhookHandler struct {
	cmds commands.WebhookCommands
}

func NewWebhookHandler(cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Payment processor webhook
// @Description Signed event delivery. 2xx tells the sender to stop retrying; 5xx asks it to retry.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Signature header"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/webhooks/payments [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	signature := c.GetHeader(signatureHeader)
	if signature == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.KindInvalidSignature,
			commands.ErrInvalidSignature, "Missing signature header", nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, errs.KindValidation, err, "Payload too large", nil)
			return
		}
		httperr.BadRequest(c, err, "Unreadable body")
		return
	}

	result, err := h.cmds.HandleEvent(c.Request.Context(), payload, signature)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	middleware.AddLogAttrs(c,
		slog.String("event_id", result.EventID),
		slog.String("event_kind", string(result.Kind)),
		slog.String("outcome", result.Outcome.String()),
	)
	c.JSON(http.StatusOK, resdto.WebhookAckResponse{
		Received: true,
		EventID:  result.EventID,
		Outcome:  result.Outcome.String(),
	})
}

// MethodNotAllowed answers non-POST requests on the webhook path.
func (h *WebhookHandler) MethodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	httperr.AbortWithError(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED",
		errs.Newf("method %s not allowed", c.Request.Method), "Method not allowed", nil)
}
