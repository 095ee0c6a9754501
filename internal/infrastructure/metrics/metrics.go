package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"route", "method", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request duration seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "user_registrations_total", Help: "Completed registrations by role"},
		[]string{"role"},
	)
	UploadsStored = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "uploads_stored_total", Help: "Files written by the upload store"},
	)
)

// MustRegister registers all collectors; call once at startup.
func MustRegister() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, RegistrationsTotal, UploadsStored)
}
