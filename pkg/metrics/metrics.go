package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "careers", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "careers", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	IntakeReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "careers", Name: "intake_received_total", Help: "Number of accepted public submissions by kind."},
		[]string{"kind"},
	)
	NotificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "careers", Name: "notifications_sent_total", Help: "Number of applicant emails delivered by status."},
		[]string{"status"},
	)
	NotificationsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "careers", Name: "notifications_failed_total", Help: "Number of applicant emails rejected by the provider, by status."},
		[]string{"status"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(IntakeReceived)
	reg.MustRegister(NotificationsSent)
	reg.MustRegister(NotificationsFailed)
}
