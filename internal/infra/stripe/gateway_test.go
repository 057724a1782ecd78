//go:build unit

package stripe_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	paystripe "staybook/internal/infra/stripe"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripeapi "github.com/stripe/stripe-go/v79"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *paystripe.Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripeapi.GetBackendWithConfig(stripeapi.APIBackend, &stripeapi.BackendConfig{
		URL:               stripeapi.String(srv.URL),
		MaxNetworkRetries: stripeapi.Int64(0),
		LeveledLogger:     &stripeapi.LeveledLogger{Level: stripeapi.LevelNull},
	})
	cfg := config.NewTestConfig()
	return paystripe.NewGatewayWithBackends(cfg.Stripe, &stripeapi.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
}

func TestGateway_CreateCheckoutSession(t *testing.T) {
	bookingID := uuid.New()

	t.Run("sends the split and idempotency key", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			assert.Equal(t, "checkout:key", r.Header.Get("Idempotency-Key"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "payment", r.PostForm.Get("mode"))
			assert.Equal(t, "20000", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
			assert.Equal(t, "2000", r.PostForm.Get("payment_intent_data[application_fee_amount]"))
			assert.Equal(t, "acct_owner", r.PostForm.Get("payment_intent_data[transfer_data][destination]"))
			assert.Equal(t, bookingID.String(), r.PostForm.Get("metadata[booking_id]"))
			assert.Equal(t, bookingID.String(), r.PostForm.Get("payment_intent_data[metadata][booking_id]"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"id":"cs_test_1","object":"checkout.session","url":"https://pay.example/cs_test_1"}`)
		})

		res, err := gw.CreateCheckoutSession(context.Background(), shared.CheckoutSessionRequest{
			BookingID:          bookingID,
			Description:        "Seaside Cottage, 4 nights",
			Currency:           "usd",
			Total:              20000,
			PlatformFee:        2000,
			DestinationAccount: "acct_owner",
			IdempotencyKey:     "checkout:key",
		})
		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", res.SessionRef)
		assert.Equal(t, "https://pay.example/cs_test_1", res.RedirectURL)
	})

	t.Run("processor error is returned", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"No such destination"}}`)
		})

		_, err := gw.CreateCheckoutSession(context.Background(), shared.CheckoutSessionRequest{
			BookingID: bookingID, Currency: "usd", Total: 100, DestinationAccount: "acct_missing",
		})
		assert.Error(t, err)
	})
}

func TestGateway_GetCheckoutSession(t *testing.T) {
	states := []shared.CheckoutSessionState{
		shared.CheckoutSessionOpen,
		shared.CheckoutSessionComplete,
		shared.CheckoutSessionExpired,
	}
	for _, state := range states {
		t.Run(string(state), func(t *testing.T) {
			gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v1/checkout/sessions/cs_test_1", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, `{"id":"cs_test_1","object":"checkout.session","status":"`+string(state)+`","url":"https://pay.example/cs_test_1"}`)
			})

			got, err := gw.GetCheckoutSession(context.Background(), "cs_test_1")
			require.NoError(t, err)
			assert.Equal(t, &shared.CheckoutSessionStatus{
				SessionRef:  "cs_test_1",
				RedirectURL: "https://pay.example/cs_test_1",
				State:       state,
			}, got)
		})
	}
}

func TestGateway_Accounts(t *testing.T) {
	ownerID := uuid.New()
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/accounts":
			assert.Equal(t, "express", r.PostForm.Get("type"))
			assert.Equal(t, ownerID.String(), r.PostForm.Get("metadata[owner_id]"))
			assert.Equal(t, "payout-account:"+ownerID.String(), r.Header.Get("Idempotency-Key"))
			_, _ = io.WriteString(w, `{"id":"acct_new","object":"account"}`)
		case "/v1/account_links":
			assert.Equal(t, "acct_new", r.PostForm.Get("account"))
			assert.Equal(t, "account_onboarding", r.PostForm.Get("type"))
			_, _ = io.WriteString(w, `{"object":"account_link","url":"https://connect.example/onboard"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ref, err := gw.CreateAccount(context.Background(), ownerID, "payout-account:"+ownerID.String())
	require.NoError(t, err)
	assert.Equal(t, "acct_new", ref)

	url, err := gw.CreateOnboardingLink(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, "https://connect.example/onboard", url)
}
