//go:build unit

package commands_test

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/payout"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/shared"
	"staybook/tests/common/builder"
	"staybook/tests/common/memstore"

	"github.com/google/uuid"
)

var fixtureNow = time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store *memstore.Store
	clock *clock.MockClock
	bb    *builder.BookingBuilder
	cfg   config.BookingConfig
}

func newFixture() *fixture {
	f := &fixture{
		store: memstore.New(),
		clock: clock.NewMockClock(fixtureNow),
		bb:    builder.NewBookingBuilder(),
		cfg:   config.NewTestConfig().Booking,
	}
	f.store.AddProperty(*f.bb.BuildPropertySnapshot())
	return f
}

// readyOwner gives the property owner an account that can take charges.
func (f *fixture) readyOwner() {
	ref := "acct_owner_1"
	f.store.PutPayoutAccount(payout.Reconstruct(f.bb.OwnerID, &ref, true, true, true, fixtureNow, fixtureNow))
}

func (f *fixture) pendingBooking() *booking.Booking {
	b := f.bb.MustBuild()
	if err := f.store.PutBooking(b); err != nil {
		panic(err)
	}
	return b
}

// mutate applies fn to a stored booking, standing in for earlier commands.
func (f *fixture) mutate(b *booking.Booking, fn func(b *booking.Booking)) {
	err := f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		cur, err := tx.Bookings().GetForUpdate(ctx, tx.DB(), b.ID())
		if err != nil {
			return err
		}
		fn(cur)
		return tx.Bookings().Save(ctx, tx.DB(), cur)
	})
	if err != nil {
		panic(err)
	}
}

func (f *fixture) createInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		PropertyID: f.bb.PropertyID,
		CheckIn:    f.bb.CheckIn,
		CheckOut:   f.bb.CheckOut,
		Guests:     f.bb.Guests,
	}
}

func (f *fixture) topics() []string {
	var out []string
	for _, n := range f.store.Notifications() {
		out = append(out, n.Topic)
	}
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func payoutCaps(details, charges, payouts bool) payout.Capabilities {
	return payout.Capabilities{DetailsSubmitted: details, ChargesEnabled: charges, PayoutsEnabled: payouts}
}

// bookingOn stores a pending booking on the fixture property for another guest.
func (f *fixture) bookingOn(checkIn, checkOut time.Time) *booking.Booking {
	bb := *f.bb
	bb.GuestID = uuid.New()
	bb.CheckIn, bb.CheckOut = checkIn, checkOut
	b := bb.MustBuild()
	if err := f.store.PutBooking(b); err != nil {
		panic(err)
	}
	return b
}
