package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staybook_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "staybook_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staybook_webhook_events_total",
		Help: "Processed payment webhook deliveries by event kind and outcome",
	}, []string{"kind", "outcome"})

	BookingTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staybook_booking_transitions_total",
		Help: "Committed booking transitions by action",
	}, []string{"action"})

	CheckoutSessionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staybook_checkout_sessions_total",
		Help: "Checkout session attempts by result",
	}, []string{"result"})

	RefundRequiredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staybook_refund_required_total",
		Help: "Captured payments that cannot be kept and need a manual refund, by reason",
	}, []string{"reason"})

	NotificationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staybook_notification_failures_total",
		Help: "Notification jobs that could not be enqueued after a committed transition",
	}, []string{"kind"})

	TxRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staybook_tx_retries_total",
		Help: "Transaction attempts retried after a transient Postgres failure",
	}, []string{"reason"})

	SweepBookingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staybook_sweep_bookings_total",
		Help: "Bookings moved by the background sweeper",
	}, []string{"sweep"})
)

// Handler exposes the default registry for gin.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
