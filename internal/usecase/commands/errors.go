package commands

import (
	"errors"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/domain/payout"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
)

var (
	ErrPropertyNotFound      = errs.Sentinel("property not found", errs.ErrNotFound)
	ErrBookingNotFound       = errs.Sentinel("booking not found", errs.ErrNotFound)
	ErrPayoutAccountNotFound = errs.Sentinel("payout account not found", errs.ErrNotFound)

	ErrNotBookingGuest   = errs.Sentinel("only the booking's guest may do this", errs.ErrForbidden)
	ErrNotBookingOwner   = errs.Sentinel("only the property owner may do this", errs.ErrForbidden)
	ErrNotPropertyOwner  = errs.Sentinel("requester does not own this property", errs.ErrForbidden)
	ErrOwnerRoleRequired = errs.Sentinel("an owner account is required", errs.ErrForbidden)

	ErrBookingNotPending = errs.Sentinel("booking is not pending", errs.ErrInvalidState)
	ErrCheckoutCompleted = errs.Sentinel("checkout already completed; payment confirmation is pending", errs.ErrInvalidState)
	ErrRangeUnavailable  = errs.Sentinel("requested dates are not available", errs.ErrRangeUnavailable)
	ErrRangeConflict     = errs.Sentinel("booking dates are no longer available", errs.ErrRangeConflict)
	ErrPayoutNotReady    = errs.Sentinel("owner cannot accept payments yet", errs.ErrPayoutNotReady)
	ErrInvalidSignature  = errs.Sentinel("webhook signature verification failed", errs.ErrInvalidSignature)
	ErrMalformedEvent    = errs.Sentinel("webhook event could not be decoded", errs.ErrValidation)
	ErrTargetNotYetKnown = errs.Sentinel("webhook event target is not known yet; retry later", errs.ErrUnavailable)
	ErrGatewayFailed     = errs.Sentinel("payment processor request failed", errs.ErrUpstream)
)

// markDomainErr tags a domain error with its caller-visible kind. The domain
// message is kept.
func markDomainErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrStayNotFinished),
		errors.Is(err, payout.ErrExternalRefMismatch):
		return errs.Mark(err, errs.ErrInvalidState)
	case errors.Is(err, booking.ErrSelfBooking):
		return errs.Mark(err, errs.ErrForbidden)
	case errors.Is(err, booking.ErrInvalidGuestCount),
		errors.Is(err, booking.ErrNegativeAmount),
		errors.Is(err, booking.ErrInvalidCurrency),
		errors.Is(err, availability.ErrInvalidRange),
		errors.Is(err, availability.ErrRangeTooLong),
		errors.Is(err, payment.ErrMissingIntentRef):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return err
	}
}

// repoErr maps a not-found repository error to sentinel and wraps anything
// else as an internal failure.
func repoErr(err error, sentinel error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.WithCause(sentinel, err)
	}
	return errs.Wrap(err, msg)
}
