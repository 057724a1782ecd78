package commands

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/domain/payout"
	"staybook/internal/domain/webhook"
	"staybook/internal/infra"
	"staybook/internal/metrics"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/ptr"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type HandleResult struct {
	EventID string
	Kind    webhook.Kind
	Outcome webhook.Outcome
}

// WebhookCommands reconciles processor notifications into booking, payment
// and payout state. It is the only writer of payment status and of payout
// capability flags.
type WebhookCommands interface {
	HandleEvent(ctx context.Context, payload []byte, signatureHeader string) (*HandleResult, error)
}

type webhookUseCaseImpl struct {
	uow         shared.UnitOfWork
	verifier    shared.EventVerifier
	clock       clock.Clock
	notify      *notifier
	retryWindow time.Duration
}

func NewWebhookCommands(uow shared.UnitOfWork, verifier shared.EventVerifier, clk clock.Clock, cfg config.BookingConfig) WebhookCommands {
	return &webhookUseCaseImpl{
		uow:         uow,
		verifier:    verifier,
		clock:       clk,
		notify:      newNotifier(uow, clk),
		retryWindow: cfg.WebhookRetryWindow,
	}
}

// outcomeDeferred labels deliveries refused so the sender retries them; they
// leave no event row behind.
const outcomeDeferred = "deferred"

// dispatchResult collects what one event did inside its transaction.
type dispatchResult struct {
	outcome webhook.Outcome
	notices []pendingNotice
}

func (r *dispatchResult) applied(changed bool) {
	if changed {
		r.outcome = webhook.OutcomeApplied
	}
}

// HandleEvent records the event id and applies its effects in one
// transaction. A redelivered event finds its id recorded and changes nothing.
// ErrInvalidSignature and ErrMalformedEvent are permanent; any other error,
// ErrTargetNotYetKnown included, rolls the event back so a redelivery is
// processed afresh.
func (uc *webhookUseCaseImpl) HandleEvent(ctx context.Context, payload []byte, signatureHeader string) (*HandleResult, error) {
	ev, err := uc.verifier.Verify(payload, signatureHeader)
	if err != nil {
		slog.Warn("rejected webhook delivery", "error", err.Error())
		if errs.Is(err, errs.ErrValidation) {
			return nil, errs.WithCause(ErrMalformedEvent, err)
		}
		return nil, errs.WithCause(ErrInvalidSignature, err)
	}

	var res dispatchResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = dispatchResult{}
		now := uc.clock.Now()

		fresh, err := tx.WebhookEvents().Record(ctx, tx.DB(), ev.EventID(), ev.Kind(), now)
		if err != nil {
			return errs.Wrap(err, "failed to record webhook event")
		}
		if !fresh {
			res.outcome = webhook.OutcomeDuplicate
			return nil
		}

		res.outcome = webhook.OutcomeStale
		if err := uc.dispatch(ctx, tx, ev, now, &res); err != nil {
			return err
		}
		return tx.WebhookEvents().SetOutcome(ctx, tx.DB(), ev.EventID(), res.outcome, now)
	})
	if errs.Is(err, ErrTargetNotYetKnown) {
		metrics.WebhookEventsTotal.WithLabelValues(ev.Kind().String(), outcomeDeferred).Inc()
		slog.Warn("deferring webhook event until its target is stored",
			"event_id", ev.EventID(),
			"event_kind", ev.Kind().String())
		return nil, err
	}
	if err != nil {
		slog.Error("failed to reconcile webhook event",
			"event_id", ev.EventID(),
			"event_kind", ev.Kind().String(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 8))
		return nil, err
	}

	metrics.WebhookEventsTotal.WithLabelValues(ev.Kind().String(), res.outcome.String()).Inc()
	slog.Info("webhook event processed",
		"event_id", ev.EventID(),
		"event_kind", ev.Kind().String(),
		"outcome", res.outcome.String())

	uc.notify.send(ctx, res.notices...)
	return &HandleResult{EventID: ev.EventID(), Kind: ev.Kind(), Outcome: res.outcome}, nil
}

func (uc *webhookUseCaseImpl) dispatch(ctx context.Context, tx shared.Tx, ev webhook.Event, now time.Time, res *dispatchResult) error {
	switch e := ev.(type) {
	case webhook.CheckoutSessionCompleted:
		return uc.onCheckoutCompleted(ctx, tx, e, now, res)
	case webhook.PaymentSucceeded:
		return uc.onPaymentSucceeded(ctx, tx, e, now, res)
	case webhook.PaymentFailed:
		return uc.onPaymentFailed(ctx, tx, e, now, res)
	case webhook.AccountUpdated:
		return uc.onAccountUpdated(ctx, tx, e, now, res)
	case webhook.ChargeRefunded:
		return uc.onChargeRefunded(ctx, tx, e, now, res)
	case webhook.Unknown:
		slog.Info("ignoring unhandled webhook event", "event_id", e.ID, "type", e.Type)
		res.outcome = webhook.OutcomeIgnored
		return nil
	default:
		res.outcome = webhook.OutcomeIgnored
		return nil
	}
}

func (uc *webhookUseCaseImpl) onCheckoutCompleted(ctx context.Context, tx shared.Tx, e webhook.CheckoutSessionCompleted, now time.Time, res *dispatchResult) error {
	if !e.PaymentIsPaid {
		// delayed payment methods settle later through payment_intent.succeeded
		res.outcome = webhook.OutcomeIgnored
		return nil
	}

	b, err := tx.Bookings().FindBySessionRefForUpdate(ctx, tx.DB(), e.SessionRef)
	if infra.IsKind(err, infra.KindNotFound) && e.BookingID != uuid.Nil {
		b, err = tx.Bookings().GetForUpdate(ctx, tx.DB(), e.BookingID)
	}
	if err != nil {
		return uc.unresolved(err, e.Header, now, res)
	}
	return uc.settle(ctx, tx, b, e.PaymentIntentRef, e.Amount, e.Currency, now, res)
}

func (uc *webhookUseCaseImpl) onPaymentSucceeded(ctx context.Context, tx shared.Tx, e webhook.PaymentSucceeded, now time.Time, res *dispatchResult) error {
	b, err := uc.bookingForIntent(ctx, tx, e.PaymentIntentRef, e.BookingID)
	if err != nil {
		return uc.unresolved(err, e.Header, now, res)
	}
	return uc.settle(ctx, tx, b, e.PaymentIntentRef, e.Amount, e.Currency, now, res)
}

// settle converges the booking on (confirmed, paid) whichever of the two
// success notifications arrives first.
func (uc *webhookUseCaseImpl) settle(ctx context.Context, tx shared.Tx, b *booking.Booking, intentRef string, amount int64, currency string, now time.Time, res *dispatchResult) error {
	if intentRef != "" {
		changed, _, err := uc.recordTransaction(ctx, tx, b.ID(), intentRef, payment.StatusSucceeded, amount, currency, now)
		if err != nil {
			return err
		}
		res.applied(changed)
		if changed && capturedTwice(b, intentRef) {
			metrics.RefundRequiredTotal.WithLabelValues("duplicate_capture").Inc()
			slog.Warn("second payment captured for a paid booking; refund required",
				"booking_id", b.ID(),
				"payment_intent_ref", intentRef,
				"settled_intent_ref", ptr.Deref(b.PaymentIntentRef()))
		}
	}

	wasPending := b.Fulfillment() == booking.FulfillmentPending
	if !b.SettlePayment(intentRef, now) {
		return nil
	}
	if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
		return errs.Wrap(err, "failed to save settled booking")
	}
	res.applied(true)

	if b.PaidWhileCancelled() {
		metrics.RefundRequiredTotal.WithLabelValues("paid_while_cancelled").Inc()
		slog.Warn("payment captured for a cancelled booking; refund required",
			"booking_id", b.ID(),
			"payment_intent_ref", intentRef)
	}
	if wasPending {
		res.notices = append(res.notices, noticeFor(TopicBookingConfirmed, b))
	}
	return nil
}

// capturedTwice reports a success for intentRef on a booking that was
// already paid through another intent, e.g. a second checkout session.
func capturedTwice(b *booking.Booking, intentRef string) bool {
	settled := ptr.Deref(b.PaymentIntentRef())
	return b.Payment() == booking.PaymentPaid && settled != "" && settled != intentRef
}

// onPaymentFailed records the failed attempt and leaves the nights held so
// the guest can retry. A failure for an intent that already succeeded is stale.
func (uc *webhookUseCaseImpl) onPaymentFailed(ctx context.Context, tx shared.Tx, e webhook.PaymentFailed, now time.Time, res *dispatchResult) error {
	b, err := uc.bookingForIntent(ctx, tx, e.PaymentIntentRef, e.BookingID)
	if err != nil {
		return uc.unresolved(err, e.Header, now, res)
	}

	changed, stale, err := uc.recordTransaction(ctx, tx, b.ID(), e.PaymentIntentRef, payment.StatusFailed, e.Amount, e.Currency, now)
	if err != nil {
		return err
	}
	if stale {
		slog.Info("discarding stale payment failure",
			"event_id", e.ID,
			"payment_intent_ref", e.PaymentIntentRef)
		return nil
	}
	res.applied(changed)

	if !b.FailPayment(e.PaymentIntentRef, now) {
		return nil
	}
	if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
		return errs.Wrap(err, "failed to save failed payment")
	}
	res.applied(true)
	res.notices = append(res.notices, noticeFor(TopicPaymentFailed, b))
	return nil
}

func (uc *webhookUseCaseImpl) onAccountUpdated(ctx context.Context, tx shared.Tx, e webhook.AccountUpdated, now time.Time, res *dispatchResult) error {
	account, err := tx.PayoutAccounts().GetByExternalRefForUpdate(ctx, tx.DB(), e.AccountRef)
	if err != nil {
		return uc.unresolved(err, e.Header, now, res)
	}

	changed := account.ApplyCapabilities(payout.Capabilities{
		DetailsSubmitted: e.DetailsSubmitted,
		ChargesEnabled:   e.ChargesEnabled,
		PayoutsEnabled:   e.PayoutsEnabled,
	}, now)
	if !changed {
		return nil
	}
	if err := tx.PayoutAccounts().Save(ctx, tx.DB(), account); err != nil {
		return errs.Wrap(err, "failed to save payout account")
	}
	res.applied(true)
	return nil
}

// onChargeRefunded finds the booking through the transaction row. Only a full
// refund cancels the booking and releases its nights.
func (uc *webhookUseCaseImpl) onChargeRefunded(ctx context.Context, tx shared.Tx, e webhook.ChargeRefunded, now time.Time, res *dispatchResult) error {
	txn, err := tx.Transactions().GetByIntentRefForUpdate(ctx, tx.DB(), e.PaymentIntentRef)
	switch {
	case err == nil:
	case infra.IsKind(err, infra.KindNotFound):
		// refund overtook the success notification
		b, berr := tx.Bookings().FindByPaymentIntentRefForUpdate(ctx, tx.DB(), e.PaymentIntentRef)
		if berr != nil {
			return uc.unresolved(berr, e.Header, now, res)
		}
		txn, err = payment.New(b.ID(), e.PaymentIntentRef, 0, b.Total().Currency(), payment.StatusSucceeded, now)
		if err != nil {
			return markDomainErr(err)
		}
	default:
		return errs.Wrap(err, "failed to lock transaction")
	}

	if txn.RecordRefund(e.AmountRefunded, e.FullyRefunded, now) {
		if err := tx.Transactions().Save(ctx, tx.DB(), txn); err != nil {
			return errs.Wrap(err, "failed to save refunded transaction")
		}
		res.applied(true)
	}
	if !e.FullyRefunded {
		return nil
	}

	b, err := tx.Bookings().GetForUpdate(ctx, tx.DB(), txn.BookingID())
	if err != nil {
		return uc.unresolved(err, e.Header, now, res)
	}
	if !b.Refund(now) {
		return nil
	}
	if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
		return errs.Wrap(err, "failed to save refunded booking")
	}
	res.applied(true)
	res.notices = append(res.notices, noticeFor(TopicBookingRefunded, b))
	return nil
}

// bookingForIntent resolves a booking by intent reference, then through the
// transaction row, then through the booking id carried in metadata.
func (uc *webhookUseCaseImpl) bookingForIntent(ctx context.Context, tx shared.Tx, intentRef string, metaBookingID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByPaymentIntentRefForUpdate(ctx, tx.DB(), intentRef)
	if !infra.IsKind(err, infra.KindNotFound) {
		return b, err
	}

	bookingID := metaBookingID
	if bookingID == uuid.Nil {
		txn, terr := tx.Transactions().GetByIntentRefForUpdate(ctx, tx.DB(), intentRef)
		if terr != nil {
			return nil, terr
		}
		bookingID = txn.BookingID()
	}
	return tx.Bookings().GetForUpdate(ctx, tx.DB(), bookingID)
}

// recordTransaction upserts the row for intentRef. stale reports a failure
// arriving after the intent already succeeded or was refunded.
func (uc *webhookUseCaseImpl) recordTransaction(
	ctx context.Context,
	tx shared.Tx,
	bookingID uuid.UUID,
	intentRef string,
	status payment.Status,
	amount int64,
	currency string,
	now time.Time,
) (changed, stale bool, err error) {
	txn, err := tx.Transactions().GetByIntentRefForUpdate(ctx, tx.DB(), intentRef)
	switch {
	case err == nil:
		if status == payment.StatusFailed && txn.IsStaleFailure() {
			return false, true, nil
		}
		if !txn.Apply(status, amount, currency, now) {
			return false, false, nil
		}
	case infra.IsKind(err, infra.KindNotFound):
		txn, err = payment.New(bookingID, intentRef, amount, currency, status, now)
		if err != nil {
			return false, false, markDomainErr(err)
		}
	default:
		return false, false, errs.Wrap(err, "failed to lock transaction")
	}

	if err := tx.Transactions().Save(ctx, tx.DB(), txn); err != nil {
		return false, false, errs.Wrap(err, "failed to save transaction")
	}
	return true, false, nil
}

// unresolved handles an event whose booking, transaction or account is not
// stored. Notifications can overtake the write that links their target (a
// refund before the success, an account update before the account ref is
// saved), so inside the retry window the event is refused and rolled back for
// redelivery. Past the window it is recorded as ignored.
func (uc *webhookUseCaseImpl) unresolved(err error, h webhook.Header, now time.Time, res *dispatchResult) error {
	if !infra.IsKind(err, infra.KindNotFound) {
		return errs.Wrap(err, "failed to resolve webhook target")
	}
	if h.Created.IsZero() || now.Sub(h.Created) < uc.retryWindow {
		return errs.WithCause(ErrTargetNotYetKnown, err)
	}
	slog.Warn("webhook event references unknown entity",
		"event_id", h.ID,
		"type", h.Type,
		"age", now.Sub(h.Created).String())
	res.outcome = webhook.OutcomeIgnored
	return nil
}
