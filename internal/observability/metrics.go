package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "signup_service",
			Name:      "signups_total",
			Help:      "Signup attempts by activity and outcome.",
		},
		[]string{"activity", "outcome"},
	)

	unregistersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "signup_service",
			Name:      "unregisters_total",
			Help:      "Unregister attempts by activity and outcome.",
		},
		[]string{"activity", "outcome"},
	)
)

// RecordSignup counts one signup attempt.
func RecordSignup(activity, outcome string) {
	signupsTotal.WithLabelValues(activity, outcome).Inc()
}

// RecordUnregister counts one unregister attempt.
func RecordUnregister(activity, outcome string) {
	unregistersTotal.WithLabelValues(activity, outcome).Inc()
}
