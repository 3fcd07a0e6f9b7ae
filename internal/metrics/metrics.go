package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	closingsConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_pos",
			Name:      "closings_confirmed_total",
			Help:      "Count of cash closings persisted.",
		},
	)

	closingDifference = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "salon_pos",
			Name:      "closing_difference_amount",
			Help:      "Counted minus calculated cash per closing.",
			Buckets:   []float64{-100, -20, -5, -1, 0, 1, 5, 20, 100},
		},
	)

	scheduleDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "salon_pos",
			Name:      "effective_schedule_seconds",
			Help:      "Time spent computing effective schedules.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	businessErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_pos",
			Name:      "business_errors_total",
			Help:      "Count of business errors returned to clients by code.",
		},
		[]string{"code"},
	)

	salesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_pos",
			Name:      "sales_created_total",
			Help:      "Count of sales recorded by payment method.",
		},
		[]string{"payment_method"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			closingsConfirmed,
			closingDifference,
			scheduleDuration,
			businessErrors,
			salesCreated,
		)
	})
}

func ObserveClosing(difference float64) {
	closingsConfirmed.Inc()
	closingDifference.Observe(difference)
}

func ObserveSchedule(started time.Time) {
	scheduleDuration.Observe(time.Since(started).Seconds())
}

func IncBusinessError(code string) {
	businessErrors.WithLabelValues(code).Inc()
}

func IncSaleCreated(method string) {
	salesCreated.WithLabelValues(method).Inc()
}
