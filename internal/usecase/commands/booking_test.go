//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"staybook/internal/domain/booking"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	f   *fixture
	cmd commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.f = newFixture()
	s.cmd = commands.NewBookingCommands(s.f.store, s.f.clock)
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("success: pending booking holds every night of the stay", func() {
		s.SetupTest()
		res, err := s.cmd.Create(ctx, s.f.bb.GuestID, s.f.createInput())
		s.Require().NoError(err)

		b, ok := s.f.store.Booking(res.BookingID)
		s.Require().True(ok)
		s.Equal(booking.FulfillmentPending, b.Fulfillment())
		s.Equal(booking.PaymentUnpaid, b.Payment())
		s.Equal(int64(20000), b.Total().Amount())
		s.Equal([]string{commands.TopicBookingRequested}, s.f.topics())

		nights := s.f.store.HeldNights(res.BookingID)
		s.Require().Len(nights, 4)
		s.Equal(date(2030, 6, 10), nights[0])
		s.Equal(date(2030, 6, 13), nights[3])
	})

	s.Run("success: stay starting on another stay's checkout day", func() {
		s.SetupTest()
		_, err := s.cmd.Create(ctx, s.f.bb.GuestID, s.f.createInput())
		s.Require().NoError(err)

		in := s.f.createInput()
		in.CheckIn, in.CheckOut = date(2030, 6, 14), date(2030, 6, 16)
		_, err = s.cmd.Create(ctx, uuid.New(), in)
		s.NoError(err)
	})

	cases := []struct {
		name   string
		guest  func(f *fixture) uuid.UUID
		mutate func(in *commands.CreateBookingInput)
		setup  func(f *fixture)
		target error
		kind   errs.Kind
	}{
		{
			name:   "error: unknown property",
			mutate: func(in *commands.CreateBookingInput) { in.PropertyID = uuid.New() },
			target: commands.ErrPropertyNotFound,
			kind:   errs.KindNotFound,
		},
		{
			name:   "error: check-out not after check-in",
			mutate: func(in *commands.CreateBookingInput) { in.CheckOut = in.CheckIn },
			kind:   errs.KindValidation,
		},
		{
			name:   "error: more guests than the property sleeps",
			mutate: func(in *commands.CreateBookingInput) { in.Guests = 5 },
			kind:   errs.KindValidation,
		},
		{
			name:  "error: owner booking their own property",
			guest: func(f *fixture) uuid.UUID { return f.bb.OwnerID },
			kind:  errs.KindForbidden,
		},
		{
			name: "error: a blocked day inside the stay",
			setup: func(f *fixture) {
				err := commands.NewAvailabilityCommands(f.store, f.clock).
					SetDay(context.Background(), f.bb.OwnerID, f.bb.PropertyID, date(2030, 6, 12), false)
				if err != nil {
					panic(err)
				}
			},
			target: commands.ErrRangeUnavailable,
			kind:   errs.KindRangeUnavailable,
		},
		{
			name:   "error: stay already started",
			setup:  func(f *fixture) { f.clock.Set(date(2030, 6, 11)) },
			target: commands.ErrRangeUnavailable,
			kind:   errs.KindRangeUnavailable,
		},
		{
			name:   "error: overlaps an existing booking",
			setup:  func(f *fixture) { f.pendingBooking() },
			target: commands.ErrRangeUnavailable,
			kind:   errs.KindRangeUnavailable,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setup != nil {
				tc.setup(s.f)
			}
			before := s.f.store.BookingCount()

			in := s.f.createInput()
			if tc.mutate != nil {
				tc.mutate(&in)
			}
			guest := s.f.bb.GuestID
			if tc.guest != nil {
				guest = tc.guest(s.f)
			}

			res, err := s.cmd.Create(ctx, guest, in)
			s.Require().Error(err)
			s.Nil(res)
			if tc.target != nil {
				s.True(errs.Is(err, tc.target), "got %v", err)
			}
			s.Equal(tc.kind, errs.KindOf(err))
			s.Equal(before, s.f.store.BookingCount())
		})
	}
}

func (s *BookingCommandsTestSuite) TestCreateConcurrentOverlap() {
	const workers = 16
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := s.f.createInput()
			// every request overlaps the others on 2030-06-12
			in.CheckIn = date(2030, 6, 8+i%4)
			in.CheckOut = date(2030, 6, 13)
			_, err := s.cmd.Create(ctx, uuid.New(), in)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.Is(err, commands.ErrRangeUnavailable):
				rejected++
			default:
				s.Failf("unexpected error", "%v", err)
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(workers-1, rejected)
	s.Equal(1, s.f.store.BookingCount())
}

func (s *BookingCommandsTestSuite) TestCreateSurvivesNotificationFailure() {
	s.f.store.FailNotifications = errors.New("queue unavailable")

	res, err := s.cmd.Create(context.Background(), s.f.bb.GuestID, s.f.createInput())
	s.Require().NoError(err)

	_, ok := s.f.store.Booking(res.BookingID)
	s.True(ok)
	s.Empty(s.f.store.Notifications())
}

// ================================================================================
// TestOwnerAndGuestActions
// ================================================================================

func (s *BookingCommandsTestSuite) TestApprove() {
	ctx := context.Background()

	s.Run("success: owner confirms without changing payment", func() {
		s.SetupTest()
		b := s.f.pendingBooking()

		s.Require().NoError(s.cmd.Approve(ctx, s.f.bb.OwnerID, b.ID()))
		got, _ := s.f.store.Booking(b.ID())
		s.Equal(booking.FulfillmentConfirmed, got.Fulfillment())
		s.Equal(booking.PaymentUnpaid, got.Payment())
		s.Len(s.f.store.HeldNights(b.ID()), 4)
		s.Equal([]string{commands.TopicBookingConfirmed}, s.f.topics())
	})

	s.Run("error: someone other than the owner", func() {
		s.SetupTest()
		b := s.f.pendingBooking()

		err := s.cmd.Approve(ctx, uuid.New(), b.ID())
		s.True(errs.Is(err, commands.ErrNotBookingOwner))
		s.Equal(errs.KindForbidden, errs.KindOf(err))
	})

	s.Run("error: approving twice", func() {
		s.SetupTest()
		b := s.f.pendingBooking()
		s.Require().NoError(s.cmd.Approve(ctx, s.f.bb.OwnerID, b.ID()))

		err := s.cmd.Approve(ctx, s.f.bb.OwnerID, b.ID())
		s.Equal(errs.KindInvalidState, errs.KindOf(err))
	})

	s.Run("error: unknown booking", func() {
		s.SetupTest()
		err := s.cmd.Approve(ctx, s.f.bb.OwnerID, uuid.New())
		s.True(errs.Is(err, commands.ErrBookingNotFound))
		s.Equal(errs.KindNotFound, errs.KindOf(err))
	})
}

func (s *BookingCommandsTestSuite) TestDeclineReleasesNights() {
	ctx := context.Background()
	b := s.f.pendingBooking()

	s.Require().NoError(s.cmd.Decline(ctx, s.f.bb.OwnerID, b.ID()))

	got, _ := s.f.store.Booking(b.ID())
	s.Equal(booking.FulfillmentCancelled, got.Fulfillment())
	s.Empty(s.f.store.HeldNights(b.ID()))

	_, err := s.cmd.Create(ctx, uuid.New(), s.f.createInput())
	s.NoError(err, "declined nights should be bookable again")
}

func (s *BookingCommandsTestSuite) TestCancel() {
	ctx := context.Background()

	s.Run("success: guest cancels an unpaid pending booking", func() {
		s.SetupTest()
		b := s.f.pendingBooking()

		s.Require().NoError(s.cmd.Cancel(ctx, s.f.bb.GuestID, b.ID()))
		got, _ := s.f.store.Booking(b.ID())
		s.Equal(booking.FulfillmentCancelled, got.Fulfillment())
		s.Empty(s.f.store.HeldNights(b.ID()))
		s.Equal([]string{commands.TopicBookingCancelled}, s.f.topics())
	})

	s.Run("error: another user's booking", func() {
		s.SetupTest()
		b := s.f.pendingBooking()

		err := s.cmd.Cancel(ctx, uuid.New(), b.ID())
		s.True(errs.Is(err, commands.ErrNotBookingGuest))
	})

	s.Run("error: booking already paid", func() {
		s.SetupTest()
		b := s.f.pendingBooking()
		s.f.mutate(b, func(b *booking.Booking) { b.SettlePayment("pi_1", fixtureNow) })

		err := s.cmd.Cancel(ctx, s.f.bb.GuestID, b.ID())
		s.Equal(errs.KindInvalidState, errs.KindOf(err))
		s.Len(s.f.store.HeldNights(b.ID()), 4)
	})
}
