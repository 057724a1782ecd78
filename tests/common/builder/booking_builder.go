//go:build unit || e2e

package builder

import (
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/booking"
	reqdto "staybook/internal/handler/dto/request"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	PropertyID    uuid.UUID
	PropertyTitle string
	OwnerID       uuid.UUID
	GuestID       uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	MaxGuests     int
	NightlyRate   int64
	CleaningFee   int64
	Currency      string
	CreatedAt     time.Time
}

// Defaults total 4 nights x 4000 + 4000 = 20000.
func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		PropertyID:    uuid.New(),
		PropertyTitle: "Seaside Cottage",
		OwnerID:       uuid.New(),
		GuestID:       uuid.New(),
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 4),
		Guests:        2,
		MaxGuests:     4,
		NightlyRate:   4000,
		CleaningFee:   4000,
		Currency:      "usd",
		CreatedAt:     time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Stay() (availability.DateRange, error) {
	return availability.NewDateRange(b.CheckIn, b.CheckOut)
}

func (b *BookingBuilder) PropertySpec() booking.PropertySpec {
	return b.BuildPropertySnapshot().Spec()
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := b.Stay()
	if err != nil {
		return nil, err
	}
	return booking.New(b.PropertySpec(), b.GuestID, stay, b.Guests, b.CreatedAt)
}

func (b *BookingBuilder) MustBuild() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildPropertySnapshot() *shared.PropertySnapshot {
	return &shared.PropertySnapshot{
		ID:          b.PropertyID,
		OwnerID:     b.OwnerID,
		Title:       b.PropertyTitle,
		NightlyRate: b.NightlyRate,
		CleaningFee: b.CleaningFee,
		Currency:    b.Currency,
		MaxGuests:   b.MaxGuests,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	bk := b.MustBuild()
	return sqlc.Bookings{
		ID:                bk.ID(),
		PropertyID:        bk.PropertyID(),
		GuestID:           bk.GuestID(),
		OwnerID:           bk.OwnerID(),
		CheckIn:           pgconv.DateToPgtype(b.CheckIn),
		CheckOut:          pgconv.DateToPgtype(b.CheckOut),
		Guests:            int32(b.Guests),
		NightlyRateCents:  b.NightlyRate,
		CleaningFeeCents:  b.CleaningFee,
		TotalCents:        bk.Total().Amount(),
		Currency:          bk.Total().Currency(),
		FulfillmentStatus: bk.Fulfillment().String(),
		PaymentStatus:     bk.Payment().String(),
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID: b.PropertyID,
		CheckIn:    availability.FormatDate(b.CheckIn),
		CheckOut:   availability.FormatDate(b.CheckOut),
		Guests:     b.Guests,
	}
}
