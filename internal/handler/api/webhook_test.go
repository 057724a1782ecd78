//go:build unit

package api_test

import (
	"bytes"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"staybook/internal/domain/webhook"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/tests/common/httptest"
	commandsmock "staybook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	h := api.NewWebhookHandler(s.mockCommands)

	s.router.POST("/webhooks/payments", h.Receive)
	s.router.GET("/webhooks/payments", h.MethodNotAllowed)
	s.router.HEAD("/webhooks/payments", h.MethodNotAllowed)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

const signedHeader = "t=1900000000,v1=deadbeef"

func (s *WebhookHandlerTestSuite) deliver(payload []byte, signature string) *nethttptest.ResponseRecorder {
	headers := map[string]string{"Content-Type": "application/json"}
	if signature != "" {
		headers["Stripe-Signature"] = signature
	}
	return httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments", payload, headers)
}

func (s *WebhookHandlerTestSuite) TestReceive() {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	outcomes := []webhook.Outcome{webhook.OutcomeApplied, webhook.OutcomeDuplicate, webhook.OutcomeStale, webhook.OutcomeIgnored}
	for _, outcome := range outcomes {
		s.Run("acknowledges "+outcome.String(), func() {
			s.mockCommands.EXPECT().HandleEvent(gomock.Any(), payload, signedHeader).Return(&commands.HandleResult{
				EventID: "evt_1",
				Kind:    webhook.KindCheckoutSessionCompleted,
				Outcome: outcome,
			}, nil)

			rec := s.deliver(payload, signedHeader)

			var body resdto.WebhookAckResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.True(body.Received)
			s.Equal("evt_1", body.EventID)
			s.Equal(outcome.String(), body.Outcome)
		})
	}

	s.Run("error: 400 on bad signature", func() {
		s.mockCommands.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.WithCause(commands.ErrInvalidSignature, errs.New("no valid signature")))
		rec := s.deliver(payload, signedHeader)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindInvalidSignature))
	})

	s.Run("error: 400 without the signature header", func() {
		rec := s.deliver(payload, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindInvalidSignature))
	})

	s.Run("error: 400 on a signed but undecodable event", func() {
		s.mockCommands.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.WithCause(commands.ErrMalformedEvent, errs.New("decode charge.refunded object")))
		rec := s.deliver(payload, signedHeader)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	s.Run("error: 503 while the event target is not stored yet", func() {
		s.mockCommands.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.WithCause(commands.ErrTargetNotYetKnown, errs.New("transaction not found")))
		rec := s.deliver(payload, signedHeader)
		httptest.AssertErrorKind(s.T(), rec, http.StatusServiceUnavailable, string(errs.KindUnavailable))
	})

	s.Run("error: 500 on a transient failure so the sender retries", func() {
		s.mockCommands.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.New("deadlock detected"))
		rec := s.deliver(payload, signedHeader)
		httptest.AssertErrorKind(s.T(), rec, http.StatusInternalServerError, string(errs.KindInternal))
	})

	s.Run("error: 413 on oversized payload", func() {
		rec := s.deliver(bytes.Repeat([]byte("a"), 1<<16+1), signedHeader)
		httptest.AssertErrorKind(s.T(), rec, http.StatusRequestEntityTooLarge, string(errs.KindValidation))
	})
}

func (s *WebhookHandlerTestSuite) TestMethodNotAllowed() {
	for _, method := range []string{http.MethodGet, http.MethodHead} {
		s.Run(method, func() {
			rec := httptest.PerformRequest(s.T(), s.router, method, "/webhooks/payments", nil, "")
			s.Equal(http.StatusMethodNotAllowed, rec.Code)
			s.Equal(http.MethodPost, rec.Header().Get("Allow"))
		})
	}
}
