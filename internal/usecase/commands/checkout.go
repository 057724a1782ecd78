package commands

import (
	"context"
	"fmt"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/metrics"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/ptr"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutSession struct {
	BookingID   uuid.UUID
	SessionRef  string
	RedirectURL string
	Quote       booking.Quote
}

type CheckoutCommands interface {
	OpenSession(ctx context.Context, bookingID, requesterID uuid.UUID) (*CheckoutSession, error)
}

type checkoutUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway shared.PaymentGateway
	clock   clock.Clock
	feeBps  int64
	timeout time.Duration
}

func NewCheckoutCommands(uow shared.UnitOfWork, gateway shared.PaymentGateway, clk clock.Clock, cfg config.BookingConfig) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
		feeBps:  cfg.PlatformFeeBps,
		timeout: cfg.CheckoutTimeout,
	}
}

// checkoutPlan is everything the processor call needs, captured while the
// preconditions hold.
type checkoutPlan struct {
	quote   booking.Quote
	request shared.CheckoutSessionRequest
	// session already attached to the booking, if any
	current string
	// the last attempt was declined, so a completed session is spent
	failed bool
}

// OpenSession checks preconditions in a fixed order (booking and requester,
// pending status, payout readiness, range still free), calls the processor
// without holding any row lock, then records the session reference. A
// booking keeps one live session: while the attached one is open it is
// returned as is, and a new one is created only once it is spent.
func (uc *checkoutUseCaseImpl) OpenSession(ctx context.Context, bookingID, requesterID uuid.UUID) (*CheckoutSession, error) {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	plan, err := uc.prepare(ctx, bookingID, requesterID)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues(string(errs.KindOf(err))).Inc()
		return nil, err
	}

	if plan.current != "" {
		session, err := uc.resume(ctx, bookingID, plan)
		if session != nil || err != nil {
			return session, err
		}
	}

	result, err := uc.gateway.CreateCheckoutSession(ctx, plan.request)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues(string(errs.KindUpstream)).Inc()
		return nil, errs.WithCause(ErrGatewayFailed, err)
	}
	if result == nil || result.SessionRef == "" {
		metrics.CheckoutSessionsTotal.WithLabelValues(string(errs.KindUpstream)).Inc()
		return nil, errs.WithCause(ErrGatewayFailed, booking.ErrEmptySessionRef)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.AttachSession(result.SessionRef, uc.clock.Now()); err != nil {
			return errs.WithCause(ErrBookingNotPending, err)
		}
		if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
			return errs.Wrap(err, "failed to save checkout session")
		}
		return nil
	})
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues(string(errs.KindOf(err))).Inc()
		return nil, err
	}

	metrics.CheckoutSessionsTotal.WithLabelValues("opened").Inc()
	return &CheckoutSession{
		BookingID:   bookingID,
		SessionRef:  result.SessionRef,
		RedirectURL: result.RedirectURL,
		Quote:       plan.quote,
	}, nil
}

// resume returns the attached session while it can still take a payment. A
// nil session and nil error mean it is spent and a new one should be opened.
func (uc *checkoutUseCaseImpl) resume(ctx context.Context, bookingID uuid.UUID, plan *checkoutPlan) (*CheckoutSession, error) {
	existing, err := uc.gateway.GetCheckoutSession(ctx, plan.current)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues(string(errs.KindUpstream)).Inc()
		return nil, errs.WithCause(ErrGatewayFailed, err)
	}

	switch existing.State {
	case shared.CheckoutSessionOpen:
		metrics.CheckoutSessionsTotal.WithLabelValues("resumed").Inc()
		return &CheckoutSession{
			BookingID:   bookingID,
			SessionRef:  plan.current,
			RedirectURL: existing.RedirectURL,
			Quote:       plan.quote,
		}, nil
	case shared.CheckoutSessionComplete:
		if plan.failed {
			return nil, nil
		}
		metrics.CheckoutSessionsTotal.WithLabelValues(string(errs.KindInvalidState)).Inc()
		return nil, ErrCheckoutCompleted
	default:
		return nil, nil
	}
}

func (uc *checkoutUseCaseImpl) prepare(ctx context.Context, bookingID, requesterID uuid.UUID) (*checkoutPlan, error) {
	var plan *checkoutPlan
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		plan = nil

		b, err := tx.Bookings().GetForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return repoErr(err, ErrBookingNotFound, "failed to load booking")
		}
		if b.GuestID() != requesterID {
			return ErrNotBookingGuest
		}
		if b.Fulfillment() != booking.FulfillmentPending {
			return ErrBookingNotPending
		}

		account, err := tx.PayoutAccounts().Get(ctx, tx.DB(), b.OwnerID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.WithCause(ErrPayoutNotReady, err)
			}
			return errs.Wrap(err, "failed to load payout account")
		}
		if !account.CanAcceptCharges() {
			return ErrPayoutNotReady
		}

		free, err := rangeFree(ctx, tx, b.PropertyID(), b.Stay(), b.ID(), clock.Today(uc.clock))
		if err != nil {
			return err
		}
		if !free {
			return ErrRangeConflict
		}

		quote, err := b.Quote(uc.feeBps)
		if err != nil {
			return errs.Wrap(err, "failed to price booking")
		}

		description := fmt.Sprintf("%d nights", quote.Nights)
		if prop, err := tx.Reads().PropertyByID(ctx, b.PropertyID()); err == nil {
			description = fmt.Sprintf("%s, %s", prop.Title, description)
		}

		plan = &checkoutPlan{
			quote: quote,
			request: shared.CheckoutSessionRequest{
				BookingID:          b.ID(),
				Description:        description,
				Currency:           quote.Currency,
				Total:              quote.Total,
				PlatformFee:        quote.PlatformFee,
				DestinationAccount: *account.ExternalRef(),
				IdempotencyKey:     checkoutIdempotencyKey(b),
			},
			current: ptr.Deref(b.SessionRef()),
			failed:  b.Payment() == booking.PaymentFailed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// checkoutIdempotencyKey is fixed for a booking until its session is
// replaced, so concurrent opens converge on one processor session.
func checkoutIdempotencyKey(b *booking.Booking) string {
	if ref := ptr.Deref(b.SessionRef()); ref != "" {
		return fmt.Sprintf("checkout:%s:after:%s", b.ID(), ref)
	}
	return fmt.Sprintf("checkout:%s", b.ID())
}
