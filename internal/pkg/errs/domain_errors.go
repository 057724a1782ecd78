package errs

import cr "github.com/cockroachdb/errors"

// Caller-visible error taxonomy. Use-case sentinels are marked with one of
// these so the transport layer can map them without knowing every sentinel.
var (
	ErrNotFound         = New("not found")
	ErrForbidden        = New("forbidden")
	ErrInvalidState     = New("invalid state")
	ErrRangeUnavailable = New("range unavailable")
	ErrRangeConflict    = New("range conflict")
	ErrPayoutNotReady   = New("payout account not ready")
	ErrInvalidSignature = New("invalid signature")
	ErrUpstream         = New("upstream error")
	ErrUnavailable      = New("temporarily unavailable")
	ErrValidation       = New("validation error")
)

type Kind string

const (
	KindNotFound         Kind = "NOT_FOUND"
	KindForbidden        Kind = "FORBIDDEN"
	KindInvalidState     Kind = "INVALID_STATE"
	KindRangeUnavailable Kind = "RANGE_UNAVAILABLE"
	KindRangeConflict    Kind = "RANGE_CONFLICT"
	KindPayoutNotReady   Kind = "PAYOUT_NOT_READY"
	KindInvalidSignature Kind = "INVALID_SIGNATURE"
	KindUpstream         Kind = "UPSTREAM_ERROR"
	KindUnavailable      Kind = "UNAVAILABLE"
	KindValidation       Kind = "VALIDATION_ERROR"
	KindInternal         Kind = "INTERNAL_ERROR"
)

var taxonomy = []struct {
	sentinel error
	kind     Kind
}{
	{ErrNotFound, KindNotFound},
	{ErrForbidden, KindForbidden},
	{ErrInvalidState, KindInvalidState},
	{ErrRangeUnavailable, KindRangeUnavailable},
	{ErrRangeConflict, KindRangeConflict},
	{ErrPayoutNotReady, KindPayoutNotReady},
	{ErrInvalidSignature, KindInvalidSignature},
	{ErrUpstream, KindUpstream},
	{ErrUnavailable, KindUnavailable},
	{ErrValidation, KindValidation},
}

// KindOf returns the first taxonomy kind err carries, or KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, t := range taxonomy {
		if Is(err, t.sentinel) {
			return t.kind
		}
	}
	return KindInternal
}

// kindedError is a named sentinel that unwraps to its taxonomy kind, so Is
// matches both the sentinel itself and the kind.
type kindedError struct {
	msg  string
	kind error
}

func (e *kindedError) Error() string { return e.msg }
func (e *kindedError) Unwrap() error { return e.kind }

// Sentinel creates a named error belonging to a taxonomy kind.
func Sentinel(msg string, kind error) error {
	return &kindedError{msg: msg, kind: kind}
}

// WithCause returns sentinel with cause attached as hidden detail. The
// message stays the sentinel's; the cause only shows up in %+v output.
func WithCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return cr.WithSecondaryError(cr.WithStack(sentinel), cause)
}
