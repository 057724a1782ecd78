package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"staybook/internal/domain/booking"
	"staybook/internal/metrics"
	"staybook/internal/pkg/clock"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

const notificationKindEmail = "email"

// Notification topics
const (
	TopicBookingRequested = "booking_requested"
	TopicBookingConfirmed = "booking_confirmed"
	TopicBookingDeclined  = "booking_declined"
	TopicBookingCancelled = "booking_cancelled"
	TopicBookingCompleted = "booking_completed"
	TopicPaymentFailed    = "payment_failed"
	TopicBookingRefunded  = "booking_refunded"
)

type bookingNotice struct {
	BookingID         uuid.UUID `json:"booking_id"`
	PropertyID        uuid.UUID `json:"property_id"`
	GuestID           uuid.UUID `json:"guest_id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	FulfillmentStatus string    `json:"fulfillment_status"`
	PaymentStatus     string    `json:"payment_status"`
}

type pendingNotice struct {
	topic  string
	notice bookingNotice
}

func noticeFor(topic string, b *booking.Booking) pendingNotice {
	return pendingNotice{
		topic: topic,
		notice: bookingNotice{
			BookingID:         b.ID(),
			PropertyID:        b.PropertyID(),
			GuestID:           b.GuestID(),
			OwnerID:           b.OwnerID(),
			FulfillmentStatus: b.Fulfillment().String(),
			PaymentStatus:     b.Payment().String(),
		},
	}
}

// notifier writes notification jobs in their own transaction after the
// booking transition has committed. Failures are logged and counted only.
type notifier struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func newNotifier(uow shared.UnitOfWork, clk clock.Clock) *notifier {
	return &notifier{uow: uow, clock: clk}
}

func (n *notifier) send(ctx context.Context, notices ...pendingNotice) {
	if len(notices) == 0 {
		return
	}
	// the caller may already be gone; the transition is committed regardless
	ctx = context.WithoutCancel(ctx)

	for _, pn := range notices {
		payload, err := json.Marshal(pn.notice)
		if err == nil {
			err = n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindEmail, pn.topic, payload, n.clock.Now())
			})
		}
		if err != nil {
			slog.Error("failed to enqueue notification",
				"topic", pn.topic,
				"booking_id", pn.notice.BookingID,
				"error", err.Error())
			metrics.NotificationFailuresTotal.WithLabelValues(pn.topic).Inc()
		}
	}
}
