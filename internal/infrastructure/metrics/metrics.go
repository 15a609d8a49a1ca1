package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Marketplace-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketplace",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Conversation counter
	ConversationsStartedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "api",
			Name:      "conversations_started_total",
			Help:      "Total conversations found or created",
		},
	)

	// Message counter
	MessagesSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "api",
			Name:      "messages_sent_total",
			Help:      "Total messages appended",
		},
		[]string{"result"},
	)

	// Notification queue depth gauge
	NotificationQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "marketplace",
			Subsystem: "api",
			Name:      "notification_queue_depth",
			Help:      "Queued notification count awaiting dispatch",
		},
	)

	// Notification delivery counter
	NotificationDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "api",
			Name:      "notification_deliveries_total",
			Help:      "Total notification webhook deliveries",
		},
		[]string{"type", "status"},
	)

	// DB query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketplace",
			Subsystem: "api",
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"query_type"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordConversationStarted records a conversation find-or-create
func RecordConversationStarted() {
	ConversationsStartedTotal.Inc()
}

// RecordMessageSent records a message append attempt
func RecordMessageSent(result string) {
	MessagesSentTotal.WithLabelValues(result).Inc()
}

// SetNotificationQueueDepth sets the current dispatch queue depth
func SetNotificationQueueDepth(depth int) {
	NotificationQueueDepth.Set(float64(depth))
}

// RecordNotificationDelivery records a webhook delivery outcome
func RecordNotificationDelivery(notificationType, status string) {
	NotificationDeliveriesTotal.WithLabelValues(notificationType, status).Inc()
}

// RecordDBQuery records a database query
func RecordDBQuery(queryType string, durationSec float64) {
	DBQueryDuration.WithLabelValues(queryType).Observe(durationSec)
}
