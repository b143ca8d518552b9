package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
	// OutcomeRejected is a well-formed non-200 provider reply, e.g. unknown city.
	OutcomeRejected = "rejected"
)

var (
	providerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_provider_requests_total",
			Help: "Outbound weather provider requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	providerLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_provider_request_duration_seconds",
			Help:    "Outbound weather provider request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "historic_store_operations_total",
			Help: "Historic store operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
)

func RecordProviderRequest(endpoint, outcome string, seconds float64) {
	providerRequests.WithLabelValues(endpoint, outcome).Inc()
	providerLatency.WithLabelValues(endpoint).Observe(seconds)
}

// RecordStoreOperation counts historic store calls. A rising error count is
// the only signal of a storage outage, since /weather still answers 200.
func RecordStoreOperation(operation, outcome string) {
	storeOperations.WithLabelValues(operation, outcome).Inc()
}

func ProviderRequests() *prometheus.CounterVec {
	return providerRequests
}

func StoreOperations() *prometheus.CounterVec {
	return storeOperations
}
