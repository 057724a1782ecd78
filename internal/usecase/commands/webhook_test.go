//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/domain/payout"
	"staybook/internal/domain/webhook"
	"staybook/internal/metrics"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	gatewaymock "staybook/tests/mock/gateway"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSignature = "t=1900000000,v1=deadbeef"

type WebhookCommandsTestSuite struct {
	suite.Suite
	f            *fixture
	mockCtrl     *gomock.Controller
	mockVerifier *gatewaymock.MockEventVerifier
	cmd          commands.WebhookCommands
	b            *booking.Booking
}

func (s *WebhookCommandsTestSuite) SetupTest() {
	s.f = newFixture()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockVerifier = gatewaymock.NewMockEventVerifier(s.mockCtrl)
	s.cmd = commands.NewWebhookCommands(s.f.store, s.mockVerifier, s.f.clock, s.f.cfg)

	s.f.readyOwner()
	s.b = s.f.pendingBooking()
	s.f.mutate(s.b, func(b *booking.Booking) { _ = b.AttachSession("cs_test_1", fixtureNow) })
}

func (s *WebhookCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookCommandsSuite(t *testing.T) {
	suite.Run(t, new(WebhookCommandsTestSuite))
}

func (s *WebhookCommandsTestSuite) deliver(ev webhook.Event) *commands.HandleResult {
	s.T().Helper()
	s.mockVerifier.EXPECT().Verify(gomock.Any(), testSignature).Return(ev, nil).Times(1)
	res, err := s.cmd.HandleEvent(context.Background(), []byte(`{}`), testSignature)
	s.Require().NoError(err)
	return res
}

// deliverErr is deliver for events the reconciler refuses.
func (s *WebhookCommandsTestSuite) deliverErr(ev webhook.Event) error {
	s.T().Helper()
	s.mockVerifier.EXPECT().Verify(gomock.Any(), testSignature).Return(ev, nil).Times(1)
	res, err := s.cmd.HandleEvent(context.Background(), []byte(`{}`), testSignature)
	s.Nil(res)
	return err
}

func (s *WebhookCommandsTestSuite) booking() *booking.Booking {
	got, ok := s.f.store.Booking(s.b.ID())
	s.Require().True(ok)
	return got
}

// ---- event fixtures ----

func hdr(id string, kind webhook.Kind) webhook.Header {
	return webhook.Header{ID: id, Type: kind.String()}
}

// expired backdates h past the redelivery window of the test config.
func expired(h webhook.Header) webhook.Header {
	h.Created = fixtureNow.Add(-73 * time.Hour)
	return h
}

func (s *WebhookCommandsTestSuite) completed(id, intent string) webhook.CheckoutSessionCompleted {
	return webhook.CheckoutSessionCompleted{
		Header:           hdr(id, webhook.KindCheckoutSessionCompleted),
		SessionRef:       "cs_test_1",
		PaymentIntentRef: intent,
		BookingID:        s.b.ID(),
		Amount:           20000,
		Currency:         "usd",
		PaymentIsPaid:    true,
	}
}

func (s *WebhookCommandsTestSuite) succeeded(id, intent string) webhook.PaymentSucceeded {
	return webhook.PaymentSucceeded{
		Header:           hdr(id, webhook.KindPaymentSucceeded),
		PaymentIntentRef: intent,
		BookingID:        s.b.ID(),
		Amount:           20000,
		Currency:         "usd",
	}
}

func (s *WebhookCommandsTestSuite) failed(id, intent string) webhook.PaymentFailed {
	return webhook.PaymentFailed{
		Header:           hdr(id, webhook.KindPaymentFailed),
		PaymentIntentRef: intent,
		BookingID:        s.b.ID(),
		Amount:           20000,
		Currency:         "usd",
		Reason:           "card_declined",
	}
}

func refunded(id, intent string, amount int64, full bool) webhook.ChargeRefunded {
	return webhook.ChargeRefunded{
		Header:           hdr(id, webhook.KindChargeRefunded),
		PaymentIntentRef: intent,
		AmountRefunded:   amount,
		FullyRefunded:    full,
	}
}

// ================================================================================
// Payment success
// ================================================================================

func (s *WebhookCommandsTestSuite) TestCheckoutCompleted() {
	res := s.deliver(s.completed("evt_1", "pi_1"))
	s.Equal(webhook.OutcomeApplied, res.Outcome)
	s.Equal(webhook.KindCheckoutSessionCompleted, res.Kind)

	got := s.booking()
	s.Equal(booking.FulfillmentConfirmed, got.Fulfillment())
	s.Equal(booking.PaymentPaid, got.Payment())
	s.Require().NotNil(got.PaymentIntentRef())
	s.Equal("pi_1", *got.PaymentIntentRef())
	s.Len(s.f.store.HeldNights(s.b.ID()), 4)

	txn, ok := s.f.store.Transaction("pi_1")
	s.Require().True(ok)
	s.Equal(payment.StatusSucceeded, txn.Status())
	s.Equal(int64(20000), txn.Amount())
	s.Equal(s.b.ID(), txn.BookingID())

	ev, ok := s.f.store.WebhookEvent("evt_1")
	s.Require().True(ok)
	s.Equal(webhook.OutcomeApplied, ev.Outcome)
	s.Equal([]string{commands.TopicBookingConfirmed}, s.f.topics())
}

func (s *WebhookCommandsTestSuite) TestReplayChangesNothing() {
	ev := s.completed("evt_1", "pi_1")
	s.deliver(ev)
	before := s.booking()

	res := s.deliver(ev)
	s.Equal(webhook.OutcomeDuplicate, res.Outcome)

	after := s.booking()
	s.Equal(before.UpdatedAt(), after.UpdatedAt())
	s.Len(s.f.store.TransactionsFor(s.b.ID()), 1)
	s.Len(s.f.store.Notifications(), 1)

	// the same fact under a new event id is stale rather than duplicate
	res = s.deliver(s.succeeded("evt_2", "pi_1"))
	s.Equal(webhook.OutcomeStale, res.Outcome)
	s.Len(s.f.store.TransactionsFor(s.b.ID()), 1)
}

func (s *WebhookCommandsTestSuite) TestSuccessNotificationsInAnyOrder() {
	cases := []struct {
		name   string
		events func() []webhook.Event
		txns   int
	}{
		{
			name: "checkout completion then intent success",
			events: func() []webhook.Event {
				return []webhook.Event{s.completed("evt_a", "pi_1"), s.succeeded("evt_b", "pi_1")}
			},
			txns: 1,
		},
		{
			name: "intent success then checkout completion",
			events: func() []webhook.Event {
				return []webhook.Event{s.succeeded("evt_b", "pi_1"), s.completed("evt_a", "pi_1")}
			},
			txns: 1,
		},
		{
			name: "earlier failed attempt then success",
			events: func() []webhook.Event {
				return []webhook.Event{s.failed("evt_f", "pi_old"), s.succeeded("evt_b", "pi_1")}
			},
			txns: 2,
		},
		{
			name: "success then a late failure of the earlier attempt",
			events: func() []webhook.Event {
				return []webhook.Event{s.succeeded("evt_b", "pi_1"), s.failed("evt_f", "pi_old")}
			},
			txns: 2,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			for _, ev := range tc.events() {
				s.deliver(ev)
			}

			got := s.booking()
			s.Equal(booking.FulfillmentConfirmed, got.Fulfillment())
			s.Equal(booking.PaymentPaid, got.Payment())
			s.Require().NotNil(got.PaymentIntentRef())
			s.Equal("pi_1", *got.PaymentIntentRef())
			s.Len(s.f.store.TransactionsFor(s.b.ID()), tc.txns)

			txn, _ := s.f.store.Transaction("pi_1")
			s.Equal(payment.StatusSucceeded, txn.Status())
		})
	}
}

func (s *WebhookCommandsTestSuite) TestUnpaidCheckoutCompletionIsIgnored() {
	ev := s.completed("evt_1", "pi_1")
	ev.PaymentIsPaid = false

	res := s.deliver(ev)
	s.Equal(webhook.OutcomeIgnored, res.Outcome)
	s.Equal(booking.PaymentUnpaid, s.booking().Payment())
	s.Empty(s.f.store.TransactionsFor(s.b.ID()))
}

func (s *WebhookCommandsTestSuite) TestPaymentForCancelledBooking() {
	s.f.mutate(s.b, func(b *booking.Booking) { _ = b.CancelByGuest(fixtureNow) })
	counter := metrics.RefundRequiredTotal.WithLabelValues("paid_while_cancelled")
	before := testutil.ToFloat64(counter)

	res := s.deliver(s.succeeded("evt_1", "pi_1"))
	s.Equal(webhook.OutcomeApplied, res.Outcome)
	s.Equal(before+1, testutil.ToFloat64(counter))

	got := s.booking()
	s.Equal(booking.FulfillmentCancelled, got.Fulfillment())
	s.Equal(booking.PaymentPaid, got.Payment())
	s.True(got.PaidWhileCancelled())
	s.Empty(s.f.store.HeldNights(s.b.ID()))
}

func (s *WebhookCommandsTestSuite) TestSecondCaptureIsFlaggedForRefund() {
	counter := metrics.RefundRequiredTotal.WithLabelValues("duplicate_capture")
	before := testutil.ToFloat64(counter)

	s.deliver(s.succeeded("evt_a", "pi_a"))
	s.Equal(before, testutil.ToFloat64(counter))

	res := s.deliver(s.succeeded("evt_b", "pi_b"))
	s.Equal(webhook.OutcomeApplied, res.Outcome)
	s.Equal(before+1, testutil.ToFloat64(counter))

	got := s.booking()
	s.Equal(booking.PaymentPaid, got.Payment())
	s.Equal("pi_a", *got.PaymentIntentRef(), "the first capture stays the booking's payment")

	second, ok := s.f.store.Transaction("pi_b")
	s.Require().True(ok)
	s.Equal(payment.StatusSucceeded, second.Status())

	// the companion checkout completion for the same intent is not a new capture
	ev := s.completed("evt_c", "pi_b")
	s.deliver(ev)
	s.deliver(ev)
	s.Equal(before+1, testutil.ToFloat64(counter))
}

// ================================================================================
// Payment failure
// ================================================================================

func (s *WebhookCommandsTestSuite) TestPaymentFailedKeepsNightsHeld() {
	res := s.deliver(s.failed("evt_1", "pi_1"))
	s.Equal(webhook.OutcomeApplied, res.Outcome)

	got := s.booking()
	s.Equal(booking.FulfillmentPending, got.Fulfillment())
	s.Equal(booking.PaymentFailed, got.Payment())
	s.Len(s.f.store.HeldNights(s.b.ID()), 4)
	s.Equal([]string{commands.TopicPaymentFailed}, s.f.topics())

	txn, _ := s.f.store.Transaction("pi_1")
	s.Equal(payment.StatusFailed, txn.Status())
}

func (s *WebhookCommandsTestSuite) TestStaleFailureIsDiscarded() {
	s.deliver(s.succeeded("evt_1", "pi_1"))

	res := s.deliver(s.failed("evt_2", "pi_1"))
	s.Equal(webhook.OutcomeStale, res.Outcome)

	got := s.booking()
	s.Equal(booking.FulfillmentConfirmed, got.Fulfillment())
	s.Equal(booking.PaymentPaid, got.Payment())

	txn, _ := s.f.store.Transaction("pi_1")
	s.Equal(payment.StatusSucceeded, txn.Status())
}

// ================================================================================
// Refunds
// ================================================================================

func (s *WebhookCommandsTestSuite) TestFullRefundReleasesNights() {
	s.deliver(s.succeeded("evt_1", "pi_1"))

	res := s.deliver(refunded("evt_2", "pi_1", 20000, true))
	s.Equal(webhook.OutcomeApplied, res.Outcome)

	got := s.booking()
	s.Equal(booking.FulfillmentCancelled, got.Fulfillment())
	s.Equal(booking.PaymentRefunded, got.Payment())
	s.Empty(s.f.store.HeldNights(s.b.ID()))

	txn, _ := s.f.store.Transaction("pi_1")
	s.Equal(payment.StatusRefunded, txn.Status())
	s.Equal(int64(20000), txn.RefundedAmount())

	_, err := commands.NewBookingCommands(s.f.store, s.f.clock).
		Create(context.Background(), uuid.New(), s.f.createInput())
	s.NoError(err, "refunded nights should be bookable again")

	// a late success cannot resurrect the booking
	s.deliver(s.completed("evt_3", "pi_1"))
	s.Equal(booking.PaymentRefunded, s.booking().Payment())
}

func (s *WebhookCommandsTestSuite) TestPartialRefundKeepsBooking() {
	s.deliver(s.succeeded("evt_1", "pi_1"))

	res := s.deliver(refunded("evt_2", "pi_1", 5000, false))
	s.Equal(webhook.OutcomeApplied, res.Outcome)

	got := s.booking()
	s.Equal(booking.FulfillmentConfirmed, got.Fulfillment())
	s.Equal(booking.PaymentPaid, got.Payment())
	s.Len(s.f.store.HeldNights(s.b.ID()), 4)

	txn, _ := s.f.store.Transaction("pi_1")
	s.Equal(payment.StatusSucceeded, txn.Status())
	s.Equal(int64(5000), txn.RefundedAmount())
}

func (s *WebhookCommandsTestSuite) TestRefundBeforeTransactionRow() {
	s.f.mutate(s.b, func(b *booking.Booking) { b.SettlePayment("pi_1", fixtureNow) })

	res := s.deliver(refunded("evt_1", "pi_1", 20000, true))
	s.Equal(webhook.OutcomeApplied, res.Outcome)
	s.Equal(booking.PaymentRefunded, s.booking().Payment())

	txn, ok := s.f.store.Transaction("pi_1")
	s.Require().True(ok)
	s.Equal(payment.StatusRefunded, txn.Status())
}

func (s *WebhookCommandsTestSuite) TestRefundBeforeSuccess() {
	refund := refunded("evt_r", "pi_1", 20000, true)

	err := s.deliverErr(refund)
	s.True(errs.Is(err, commands.ErrTargetNotYetKnown), "got %v", err)
	s.Len(s.f.store.HeldNights(s.b.ID()), 4)

	s.Equal(webhook.OutcomeApplied, s.deliver(s.succeeded("evt_s", "pi_1")).Outcome)
	s.Equal(booking.PaymentPaid, s.booking().Payment())

	// the sender redelivers the refused refund under the same id
	s.Equal(webhook.OutcomeApplied, s.deliver(refund).Outcome)

	got := s.booking()
	s.Equal(booking.FulfillmentCancelled, got.Fulfillment())
	s.Equal(booking.PaymentRefunded, got.Payment())
	s.Empty(s.f.store.HeldNights(s.b.ID()))

	txn, _ := s.f.store.Transaction("pi_1")
	s.Equal(payment.StatusRefunded, txn.Status())
	s.Equal([]string{commands.TopicBookingConfirmed, commands.TopicBookingRefunded}, s.f.topics())
}

// ================================================================================
// Payout accounts
// ================================================================================

func (s *WebhookCommandsTestSuite) TestAccountUpdated() {
	ref := "acct_new"
	ownerID := uuid.New()
	s.f.store.PutPayoutAccount(payout.Reconstruct(ownerID, &ref, false, false, false, fixtureNow, fixtureNow))

	ev := webhook.AccountUpdated{
		Header:           hdr("evt_1", webhook.KindAccountUpdated),
		AccountRef:       ref,
		DetailsSubmitted: true,
		ChargesEnabled:   true,
		PayoutsEnabled:   true,
	}
	s.Equal(webhook.OutcomeApplied, s.deliver(ev).Outcome)

	acct, _ := s.f.store.PayoutAccount(ownerID)
	s.True(acct.OnboardingComplete())
	s.True(acct.CanAcceptCharges())
	s.True(acct.PayoutsEnabled())

	ev.Header = hdr("evt_2", webhook.KindAccountUpdated)
	s.Equal(webhook.OutcomeStale, s.deliver(ev).Outcome)

	// capabilities can be withdrawn as well as granted
	ev.Header = hdr("evt_3", webhook.KindAccountUpdated)
	ev.ChargesEnabled = false
	s.Equal(webhook.OutcomeApplied, s.deliver(ev).Outcome)
	acct, _ = s.f.store.PayoutAccount(ownerID)
	s.False(acct.CanAcceptCharges())
}

func (s *WebhookCommandsTestSuite) TestAccountUpdatedBeforeRefIsLinked() {
	ownerID := uuid.New()
	s.f.store.PutPayoutAccount(payout.Reconstruct(ownerID, nil, false, false, false, fixtureNow, fixtureNow))

	ev := webhook.AccountUpdated{
		Header:           hdr("evt_1", webhook.KindAccountUpdated),
		AccountRef:       "acct_new",
		DetailsSubmitted: true,
		ChargesEnabled:   true,
		PayoutsEnabled:   true,
	}
	err := s.deliverErr(ev)
	s.True(errs.Is(err, commands.ErrTargetNotYetKnown), "got %v", err)

	ref := "acct_new"
	s.f.store.PutPayoutAccount(payout.Reconstruct(ownerID, &ref, false, false, false, fixtureNow, fixtureNow))

	s.Equal(webhook.OutcomeApplied, s.deliver(ev).Outcome)
	acct, _ := s.f.store.PayoutAccount(ownerID)
	s.True(acct.CanAcceptCharges())
	s.True(acct.PayoutsEnabled())
}

// ================================================================================
// Edge cases
// ================================================================================

// unresolvedEvents reference a target the store does not hold.
func unresolvedEvents(header func(webhook.Header) webhook.Header) []struct {
	name string
	ev   webhook.Event
} {
	return []struct {
		name string
		ev   webhook.Event
	}{
		{
			name: "checkout for an unknown session without metadata",
			ev: webhook.CheckoutSessionCompleted{
				Header:           header(hdr("evt_c", webhook.KindCheckoutSessionCompleted)),
				SessionRef:       "cs_unknown",
				PaymentIntentRef: "pi_x",
				PaymentIsPaid:    true,
			},
		},
		{
			name: "success for an unknown intent without metadata",
			ev: webhook.PaymentSucceeded{
				Header:           header(hdr("evt_s", webhook.KindPaymentSucceeded)),
				PaymentIntentRef: "pi_x",
				Amount:           20000,
				Currency:         "usd",
			},
		},
		{
			name: "refund for an unknown intent",
			ev: webhook.ChargeRefunded{
				Header:           header(hdr("evt_r", webhook.KindChargeRefunded)),
				PaymentIntentRef: "pi_unknown",
				AmountRefunded:   100,
				FullyRefunded:    true,
			},
		},
		{
			name: "account update for an unknown account",
			ev: webhook.AccountUpdated{
				Header:     header(hdr("evt_a", webhook.KindAccountUpdated)),
				AccountRef: "acct_unknown",
			},
		},
	}
}

func (s *WebhookCommandsTestSuite) TestUnresolvedTargetIsRetried() {
	fresh := func(h webhook.Header) webhook.Header {
		h.Created = fixtureNow.Add(-time.Minute)
		return h
	}

	for _, tc := range unresolvedEvents(fresh) {
		s.Run(tc.name, func() {
			s.SetupTest()
			deferred := testutil.ToFloat64(metrics.WebhookEventsTotal.WithLabelValues(tc.ev.Kind().String(), "deferred"))

			err := s.deliverErr(tc.ev)
			s.True(errs.Is(err, commands.ErrTargetNotYetKnown), "got %v", err)
			s.Equal(errs.KindUnavailable, errs.KindOf(err))

			_, recorded := s.f.store.WebhookEvent(tc.ev.EventID())
			s.False(recorded, "a refused event must stay redeliverable")
			s.Empty(s.f.store.TransactionsFor(s.b.ID()))
			s.Equal(booking.PaymentUnpaid, s.booking().Payment())
			s.Equal(deferred+1, testutil.ToFloat64(metrics.WebhookEventsTotal.WithLabelValues(tc.ev.Kind().String(), "deferred")))
		})
	}
}

func (s *WebhookCommandsTestSuite) TestIgnoredEvents() {
	cases := append([]struct {
		name string
		ev   webhook.Event
	}{
		{
			name: "unhandled event type",
			ev:   webhook.Unknown{Header: webhook.Header{ID: "evt_u", Type: "customer.created"}},
		},
	}, unresolvedEvents(expired)...)

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			res := s.deliver(tc.ev)
			s.Equal(webhook.OutcomeIgnored, res.Outcome)

			recorded, ok := s.f.store.WebhookEvent(tc.ev.EventID())
			s.Require().True(ok)
			s.Equal(webhook.OutcomeIgnored, recorded.Outcome)
			s.Equal(booking.PaymentUnpaid, s.booking().Payment())
		})
	}
}

func (s *WebhookCommandsTestSuite) TestInvalidSignature() {
	s.mockVerifier.EXPECT().Verify(gomock.Any(), "bogus").
		Return(nil, errors.New("signature mismatch")).Times(1)

	res, err := s.cmd.HandleEvent(context.Background(), []byte(`{"id":"evt_1"}`), "bogus")
	s.Nil(res)
	s.True(errs.Is(err, commands.ErrInvalidSignature))
	s.Equal(errs.KindInvalidSignature, errs.KindOf(err))

	_, recorded := s.f.store.WebhookEvent("evt_1")
	s.False(recorded)
}

func (s *WebhookCommandsTestSuite) TestMalformedEvent() {
	decodeErr := errs.Mark(errs.New("decode charge.refunded object"), errs.ErrValidation)
	s.mockVerifier.EXPECT().Verify(gomock.Any(), testSignature).Return(nil, decodeErr).Times(1)

	res, err := s.cmd.HandleEvent(context.Background(), []byte(`{"id":"evt_1"}`), testSignature)
	s.Nil(res)
	s.True(errs.Is(err, commands.ErrMalformedEvent))
	s.False(errs.Is(err, commands.ErrInvalidSignature))
	s.Equal(errs.KindValidation, errs.KindOf(err))
}
