package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics is a value that provides a wrapper around Prometheus
// metrics for counting API calls made to the hosting service.
type PrometheusMetrics struct {
	apiCalls       *prometheus.CounterVec
	failedAPICalls *prometheus.CounterVec
}

// New creates and returns a PrometheusMetrics initialised with prometheus
// counters.
func New(reg prometheus.Registerer) *PrometheusMetrics {
	pm := &PrometheusMetrics{}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	pm.apiCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scm",
		Name:      "api_calls_total",
		Help:      "Count of API calls made",
	}, []string{"name"})

	pm.failedAPICalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scm",
		Name:      "failed_api_calls_total",
		Help:      "Count of API calls that failed",
	}, []string{"name"})
	reg.MustRegister(pm.apiCalls)
	reg.MustRegister(pm.failedAPICalls)
	return pm
}

// CountAPICall records an outgoing API call, labelled with the operation name.
func (m *PrometheusMetrics) CountAPICall(name string) {
	m.apiCalls.With(prometheus.Labels{"name": name}).Inc()
}

// CountFailedAPICall records an API call that did not produce a result.
func (m *PrometheusMetrics) CountFailedAPICall(name string) {
	m.failedAPICalls.With(prometheus.Labels{"name": name}).Inc()
}
