package converter

import (
	"staybook/internal/domain/availability"
	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:                b.ID(),
		PropertyID:        b.PropertyID(),
		GuestID:           b.GuestID(),
		OwnerID:           b.OwnerID(),
		CheckIn:           pgconv.DateToPgtype(b.Stay().Start()),
		CheckOut:          pgconv.DateToPgtype(b.Stay().End()),
		Guests:            int32(b.Guests()), // #nosec G115 -- bounded by max_guests
		NightlyRateCents:  b.NightlyRate(),
		CleaningFeeCents:  b.CleaningFee(),
		TotalCents:        b.Total().Amount(),
		Currency:          b.Total().Currency(),
		FulfillmentStatus: b.Fulfillment().String(),
		PaymentStatus:     b.Payment().String(),
		SessionRef:        pgconv.StringPtrToPgtype(b.SessionRef()),
		PaymentIntentRef:  pgconv.StringPtrToPgtype(b.PaymentIntentRef()),
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingStateParams {
	return sqlc.UpdateBookingStateParams{
		ID:                b.ID(),
		FulfillmentStatus: b.Fulfillment().String(),
		PaymentStatus:     b.Payment().String(),
		SessionRef:        pgconv.StringPtrToPgtype(b.SessionRef()),
		PaymentIntentRef:  pgconv.StringPtrToPgtype(b.PaymentIntentRef()),
		UpdatedAt:         pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	stay, err := availability.NewDateRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, infra.WrapRepoErr("stored stay range is invalid", err, infra.KindDBFailure)
	}
	fulfillment, err := booking.ParseFulfillmentStatus(row.FulfillmentStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("stored fulfillment status is invalid", err, infra.KindDBFailure)
	}
	paymentStatus, err := booking.ParsePaymentStatus(row.PaymentStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("stored payment status is invalid", err, infra.KindDBFailure)
	}
	total, err := booking.NewMoney(row.TotalCents, row.Currency)
	if err != nil {
		return nil, infra.WrapRepoErr("stored total is invalid", err, infra.KindDBFailure)
	}

	return booking.Reconstruct(
		row.ID, row.PropertyID, row.GuestID, row.OwnerID,
		stay,
		int(row.Guests),
		row.NightlyRateCents, row.CleaningFeeCents,
		total,
		fulfillment, paymentStatus,
		pgconv.StringPtrFromPgtype(row.SessionRef),
		pgconv.StringPtrFromPgtype(row.PaymentIntentRef),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
