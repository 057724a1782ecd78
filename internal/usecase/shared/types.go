package shared

import (
	"staybook/internal/domain/booking"

	"github.com/google/uuid"
)

// PropertySnapshot is the catalog projection a command needs.
type PropertySnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	NightlyRate int64
	CleaningFee int64
	Currency    string
	MaxGuests   int
}

func (p *PropertySnapshot) Spec() booking.PropertySpec {
	return booking.PropertySpec{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		NightlyRate: p.NightlyRate,
		CleaningFee: p.CleaningFee,
		Currency:    p.Currency,
		MaxGuests:   p.MaxGuests,
	}
}
