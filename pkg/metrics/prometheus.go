package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	MessagesConsumed *prometheus.CounterVec
	MessagesFailed   *prometheus.CounterVec
	TicketsCreated   prometheus.Counter
	StatusesRecorded prometheus.Counter
	ProcessingTime   *prometheus.HistogramVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		MessagesConsumed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "The total number of queue messages consumed",
		}, []string{"queue"}),
		MessagesFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_failed_total",
			Help:      "The total number of queue messages that were negatively acknowledged",
		}, []string{"queue"}),
		TicketsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_created_total",
			Help:      "The total number of tickets created from processed emails",
		}),
		StatusesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_statuses_recorded_total",
			Help:      "The total number of flight status snapshots persisted",
		}),
		ProcessingTime: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "message_processing_time_seconds",
			Help:      "Time taken to process a queue message",
			Buckets:   prometheus.DefBuckets,
		}, []string{"queue"}),
	}
}
