package triage

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus metrics for the triage subsystem.
type Metrics struct {
	InvocationsTotal    *prometheus.CounterVec
	InvocationDuration  *prometheus.HistogramVec
	StepsTotal          *prometheus.CounterVec
	BackendCallsTotal   *prometheus.CounterVec
	BackendCallDuration *prometheus.HistogramVec
}

// NewMetrics registers and returns triage metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		InvocationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "usher_invocations_total",
			Help: "Total workflow invocations by terminal step.",
		}, []string{"terminal"}),
		InvocationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "usher_invocation_duration_seconds",
			Help:    "Duration of workflow invocations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms .. ~10s
		}, []string{"terminal"}),
		StepsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "usher_steps_total",
			Help: "Total step executions by step name.",
		}, []string{"step"}),
		BackendCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "usher_backend_calls_total",
			Help: "Total order-backend calls by call name and status.",
		}, []string{"call", "status"}),
		BackendCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "usher_backend_call_duration_seconds",
			Help:    "Duration of individual order-backend calls in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms .. ~10s
		}, []string{"call"}),
	}

	reg.MustRegister(
		m.InvocationsTotal,
		m.InvocationDuration,
		m.StepsTotal,
		m.BackendCallsTotal,
		m.BackendCallDuration,
	)

	return m
}

// Hooks returns GraphHooks that increment the corresponding metrics.
func (m *Metrics) Hooks() GraphHooks {
	return GraphHooks{
		OnStep: func(step string) {
			m.StepsTotal.WithLabelValues(step).Inc()
		},
		OnComplete: func(terminal string, seconds float64) {
			m.InvocationsTotal.WithLabelValues(terminal).Inc()
			m.InvocationDuration.WithLabelValues(terminal).Observe(seconds)
		},
	}
}

// BackendObserver returns a per-call observer for the backend client.
func (m *Metrics) BackendObserver() func(call, status string, seconds float64) {
	return func(call, status string, seconds float64) {
		m.BackendCallsTotal.WithLabelValues(call, status).Inc()
		m.BackendCallDuration.WithLabelValues(call).Observe(seconds)
	}
}
