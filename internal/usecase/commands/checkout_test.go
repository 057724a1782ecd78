//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/shared"
	gatewaymock "staybook/tests/mock/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	f           *fixture
	mockCtrl    *gomock.Controller
	mockGateway *gatewaymock.MockPaymentGateway
	cmd         commands.CheckoutCommands
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.f = newFixture()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = gatewaymock.NewMockPaymentGateway(s.mockCtrl)
	s.cmd = commands.NewCheckoutCommands(s.f.store, s.mockGateway, s.f.clock, s.f.cfg)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) TestOpenSession() {
	ctx := context.Background()

	s.Run("success: splits the total and records the session", func() {
		s.SetupTest()
		s.f.readyOwner()
		b := s.f.pendingBooking()

		var sent shared.CheckoutSessionRequest
		s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.CheckoutSessionRequest) (*shared.CheckoutSessionResult, error) {
				sent = req
				return &shared.CheckoutSessionResult{SessionRef: "cs_test_1", RedirectURL: "https://pay.example/cs_test_1"}, nil
			}).Times(1)

		session, err := s.cmd.OpenSession(ctx, b.ID(), s.f.bb.GuestID)
		s.Require().NoError(err)

		s.Equal("cs_test_1", session.SessionRef)
		s.Equal("https://pay.example/cs_test_1", session.RedirectURL)
		s.Equal(int64(20000), session.Quote.Total)
		s.Equal(int64(2000), session.Quote.PlatformFee)
		s.Equal(int64(18000), session.Quote.DestinationAmount)

		s.Equal(b.ID(), sent.BookingID)
		s.Equal(int64(20000), sent.Total)
		s.Equal(int64(2000), sent.PlatformFee)
		s.Equal("usd", sent.Currency)
		s.Equal("acct_owner_1", sent.DestinationAccount)
		s.Equal("Seaside Cottage, 4 nights", sent.Description)
		s.Equal("checkout:"+b.ID().String(), sent.IdempotencyKey)

		got, _ := s.f.store.Booking(b.ID())
		s.Require().NotNil(got.SessionRef())
		s.Equal("cs_test_1", *got.SessionRef())
		s.Equal(booking.FulfillmentPending, got.Fulfillment())
		s.Equal(booking.PaymentUnpaid, got.Payment())
	})

	s.Run("success: a failed attempt may be retried", func() {
		s.SetupTest()
		s.f.readyOwner()
		b := s.f.pendingBooking()
		s.f.mutate(b, func(b *booking.Booking) { b.FailPayment("pi_declined", fixtureNow) })

		s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&shared.CheckoutSessionResult{SessionRef: "cs_retry"}, nil).Times(1)

		session, err := s.cmd.OpenSession(ctx, b.ID(), s.f.bb.GuestID)
		s.Require().NoError(err)
		s.Equal("cs_retry", session.SessionRef)
	})

	s.Run("error: gateway failure leaves the booking untouched", func() {
		s.SetupTest()
		s.f.readyOwner()
		b := s.f.pendingBooking()

		s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset")).Times(1)

		session, err := s.cmd.OpenSession(ctx, b.ID(), s.f.bb.GuestID)
		s.Nil(session)
		s.True(errs.Is(err, commands.ErrGatewayFailed))
		s.Equal(errs.KindUpstream, errs.KindOf(err))

		got, _ := s.f.store.Booking(b.ID())
		s.Nil(got.SessionRef())
	})

	s.Run("error: gateway returns no session reference", func() {
		s.SetupTest()
		s.f.readyOwner()
		b := s.f.pendingBooking()

		s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&shared.CheckoutSessionResult{}, nil).Times(1)

		_, err := s.cmd.OpenSession(ctx, b.ID(), s.f.bb.GuestID)
		s.Equal(errs.KindUpstream, errs.KindOf(err))
	})

	s.Run("error: booking cancelled while the session was being opened", func() {
		s.SetupTest()
		s.f.readyOwner()
		b := s.f.pendingBooking()

		s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, shared.CheckoutSessionRequest) (*shared.CheckoutSessionResult, error) {
				s.f.mutate(b, func(b *booking.Booking) { _ = b.CancelByGuest(fixtureNow) })
				return &shared.CheckoutSessionResult{SessionRef: "cs_late"}, nil
			}).Times(1)

		_, err := s.cmd.OpenSession(ctx, b.ID(), s.f.bb.GuestID)
		s.True(errs.Is(err, commands.ErrBookingNotPending))

		got, _ := s.f.store.Booking(b.ID())
		s.Nil(got.SessionRef())
	})
}

func (s *CheckoutCommandsTestSuite) TestOpenSessionKeepsOneLiveSession() {
	ctx := context.Background()

	s.Run("repeated open returns the session still open", func() {
		s.SetupTest()
		s.f.readyOwner()
		b := s.f.pendingBooking()

		s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&shared.CheckoutSessionResult{SessionRef: "cs_a", RedirectURL: "https://pay.example/cs_a"}, nil).Times(1)
		s.mockGateway.EXPECT().GetCheckoutSession(gomock.Any(), "cs_a").
			Return(&shared.CheckoutSessionStatus{SessionRef: "cs_a", RedirectURL: "https://pay.example/cs_a", State: shared.CheckoutSessionOpen}, nil).Times(1)

		first, err := s.cmd.OpenSession(ctx, b.ID(), s.f.bb.GuestID)
		s.Require().NoError(err)

		s.f.clock.Add(2 * time.Second)
		second, err := s.cmd.OpenSession(ctx, b.ID(), s.f.bb.GuestID)
		s.Require().NoError(err)

		s.Equal(first.SessionRef, second.SessionRef)
		s.Equal(first.RedirectURL, second.RedirectURL)
		s.Equal(first.Quote, second.Quote)

		got, _ := s.f.store.Booking(b.ID())
		s.Equal("cs_a", *got.SessionRef())
	})

	s.Run("expired session is replaced under a new key", func() {
		s.SetupTest()
		s.f.readyOwner()
		b := s.f.pendingBooking()
		s.f.mutate(b, func(b *booking.Booking) { _ = b.AttachSession("cs_old", fixtureNow) })

		var sent shared.CheckoutSessionRequest
		gomock.InOrder(
			s.mockGateway.EXPECT().GetCheckoutSession(gomock.Any(), "cs_old").
				Return(&shared.CheckoutSessionStatus{SessionRef: "cs_old", State: shared.CheckoutSessionExpired}, nil),
			s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req shared.CheckoutSessionRequest) (*shared.CheckoutSessionResult, error) {
					sent = req
					return &shared.CheckoutSessionResult{SessionRef: "cs_new"}, nil
				}),
		)

		session, err := s.cmd.OpenSession(ctx, b.ID(), s.f.bb.GuestID)
		s.Require().NoError(err)
		s.Equal("cs_new", session.SessionRef)
		s.Equal("checkout:"+b.ID().String()+":after:cs_old", sent.IdempotencyKey)

		got, _ := s.f.store.Booking(b.ID())
		s.Equal("cs_new", *got.SessionRef())
	})

	s.Run("completed session is not followed by a second one", func() {
		s.SetupTest()
		s.f.readyOwner()
		b := s.f.pendingBooking()
		s.f.mutate(b, func(b *booking.Booking) { _ = b.AttachSession("cs_paid", fixtureNow) })

		s.mockGateway.EXPECT().GetCheckoutSession(gomock.Any(), "cs_paid").
			Return(&shared.CheckoutSessionStatus{SessionRef: "cs_paid", State: shared.CheckoutSessionComplete}, nil).Times(1)

		session, err := s.cmd.OpenSession(ctx, b.ID(), s.f.bb.GuestID)
		s.Nil(session)
		s.True(errs.Is(err, commands.ErrCheckoutCompleted))
		s.Equal(errs.KindInvalidState, errs.KindOf(err))
	})

	s.Run("completed session whose payment was declined is replaced", func() {
		s.SetupTest()
		s.f.readyOwner()
		b := s.f.pendingBooking()
		s.f.mutate(b, func(b *booking.Booking) {
			_ = b.AttachSession("cs_declined", fixtureNow)
			b.FailPayment("pi_declined", fixtureNow)
		})

		s.mockGateway.EXPECT().GetCheckoutSession(gomock.Any(), "cs_declined").
			Return(&shared.CheckoutSessionStatus{SessionRef: "cs_declined", State: shared.CheckoutSessionComplete}, nil).Times(1)
		s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&shared.CheckoutSessionResult{SessionRef: "cs_retry"}, nil).Times(1)

		session, err := s.cmd.OpenSession(ctx, b.ID(), s.f.bb.GuestID)
		s.Require().NoError(err)
		s.Equal("cs_retry", session.SessionRef)
	})

	s.Run("error: session status lookup fails", func() {
		s.SetupTest()
		s.f.readyOwner()
		b := s.f.pendingBooking()
		s.f.mutate(b, func(b *booking.Booking) { _ = b.AttachSession("cs_a", fixtureNow) })

		s.mockGateway.EXPECT().GetCheckoutSession(gomock.Any(), "cs_a").
			Return(nil, errors.New("connection reset")).Times(1)

		_, err := s.cmd.OpenSession(ctx, b.ID(), s.f.bb.GuestID)
		s.True(errs.Is(err, commands.ErrGatewayFailed))
	})
}

// Preconditions are checked in a fixed order, so when several fail the
// caller always sees the first one.
func (s *CheckoutCommandsTestSuite) TestOpenSessionPreconditionOrder() {
	block := func(f *fixture) {
		err := commands.NewAvailabilityCommands(f.store, f.clock).
			SetDay(context.Background(), f.bb.OwnerID, f.bb.PropertyID, date(2030, 6, 11), false)
		if err != nil {
			panic(err)
		}
	}
	cancel := func(f *fixture, b *booking.Booking) {
		f.mutate(b, func(b *booking.Booking) { _ = b.CancelByGuest(fixtureNow) })
	}

	cases := []struct {
		name      string
		setup     func(f *fixture, b *booking.Booking)
		bookingID func(b *booking.Booking) uuid.UUID
		requester func(f *fixture) uuid.UUID
		target    error
		kind      errs.Kind
	}{
		{
			name:      "unknown booking before anything else",
			bookingID: func(*booking.Booking) uuid.UUID { return uuid.New() },
			requester: func(*fixture) uuid.UUID { return uuid.New() },
			target:    commands.ErrBookingNotFound,
			kind:      errs.KindNotFound,
		},
		{
			name:      "requester is not the guest, even when not pending",
			setup:     cancel,
			requester: func(*fixture) uuid.UUID { return uuid.New() },
			target:    commands.ErrNotBookingGuest,
			kind:      errs.KindForbidden,
		},
		{
			name:   "not pending before payout readiness",
			setup:  cancel,
			target: commands.ErrBookingNotPending,
			kind:   errs.KindInvalidState,
		},
		{
			name:   "payout readiness before range conflict",
			setup:  func(f *fixture, _ *booking.Booking) { block(f) },
			target: commands.ErrPayoutNotReady,
			kind:   errs.KindPayoutNotReady,
		},
		{
			name: "owner account without charges enabled",
			setup: func(f *fixture, _ *booking.Booking) {
				f.readyOwner()
				acct, _ := f.store.PayoutAccount(f.bb.OwnerID)
				acct.ApplyCapabilities(payoutCaps(true, false, false), fixtureNow)
				f.store.PutPayoutAccount(acct)
			},
			target: commands.ErrPayoutNotReady,
			kind:   errs.KindPayoutNotReady,
		},
		{
			name: "range no longer free",
			setup: func(f *fixture, _ *booking.Booking) {
				f.readyOwner()
				block(f)
			},
			target: commands.ErrRangeConflict,
			kind:   errs.KindRangeConflict,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			b := s.f.pendingBooking()
			if tc.setup != nil {
				tc.setup(s.f, b)
			}
			id := b.ID()
			if tc.bookingID != nil {
				id = tc.bookingID(b)
			}
			requester := s.f.bb.GuestID
			if tc.requester != nil {
				requester = tc.requester(s.f)
			}

			// no gateway call is expected for any precondition failure
			_, err := s.cmd.OpenSession(context.Background(), id, requester)
			s.Require().Error(err)
			s.True(errs.Is(err, tc.target), "got %v", err)
			s.Equal(tc.kind, errs.KindOf(err))
		})
	}
}
