package payout

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrExternalRefMismatch = errors.New("payout account is already linked to another external account")

// Capabilities is the gateway-reported state of a sub-merchant account.
type Capabilities struct {
	DetailsSubmitted bool
	ChargesEnabled   bool
	PayoutsEnabled   bool
}

// Account is one owner's payout account. The onboarding and capability flags
// are written only from authenticated account-status notifications.
type Account struct {
	ownerID            uuid.UUID
	externalRef        *string
	onboardingComplete bool
	chargesEnabled     bool
	payoutsEnabled     bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewAccount(ownerID uuid.UUID, now time.Time) *Account {
	return &Account{ownerID: ownerID, createdAt: now, updatedAt: now}
}

func Reconstruct(ownerID uuid.UUID, externalRef *string, onboardingComplete, chargesEnabled, payoutsEnabled bool, createdAt, updatedAt time.Time) *Account {
	return &Account{
		ownerID:            ownerID,
		externalRef:        externalRef,
		onboardingComplete: onboardingComplete,
		chargesEnabled:     chargesEnabled,
		payoutsEnabled:     payoutsEnabled,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (a *Account) OwnerID() uuid.UUID       { return a.ownerID }
func (a *Account) ExternalRef() *string     { return a.externalRef }
func (a *Account) OnboardingComplete() bool { return a.onboardingComplete }
func (a *Account) ChargesEnabled() bool     { return a.chargesEnabled }
func (a *Account) PayoutsEnabled() bool     { return a.payoutsEnabled }
func (a *Account) CreatedAt() time.Time     { return a.createdAt }
func (a *Account) UpdatedAt() time.Time     { return a.updatedAt }

func (a *Account) HasExternalRef() bool {
	return a.externalRef != nil && *a.externalRef != ""
}

func (a *Account) CanAcceptCharges() bool {
	return a.HasExternalRef() && a.chargesEnabled
}

func (a *Account) LinkExternal(ref string, now time.Time) error {
	if a.HasExternalRef() {
		if *a.externalRef == ref {
			return nil
		}
		return ErrExternalRefMismatch
	}
	a.externalRef = &ref
	a.updatedAt = now
	return nil
}

func (a *Account) ApplyCapabilities(c Capabilities, now time.Time) bool {
	if a.onboardingComplete == c.DetailsSubmitted &&
		a.chargesEnabled == c.ChargesEnabled &&
		a.payoutsEnabled == c.PayoutsEnabled {
		return false
	}
	a.onboardingComplete = c.DetailsSubmitted
	a.chargesEnabled = c.ChargesEnabled
	a.payoutsEnabled = c.PayoutsEnabled
	a.updatedAt = now
	return true
}
