// Package metrics instruments the solver with Prometheus counters and
// histograms, registered against a caller-supplied Registerer so the
// library never touches the default global registry.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the solve-time instrumentation surface. A nil *Metrics is
// always safe to call into: every method is a no-op on a nil receiver, so
// instrumentation stays strictly opt-in.
type Metrics struct {
	solves            *prometheus.CounterVec
	solveDuration     prometheus.Histogram
	iterations        prometheus.Histogram
	constraintViolations *prometheus.CounterVec
	backendFallbacks  prometheus.Counter
}

// New builds and registers the metrics against reg. Passing a nil
// Registerer is valid and simply skips registration, useful in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "edusched",
			Name:      "solves_total",
			Help:      "Total number of solve() invocations by status.",
		}, []string{"status", "backend"}),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "edusched",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of solve() invocations.",
			Buckets:   prometheus.DefBuckets,
		}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "edusched",
			Name:      "solve_iterations",
			Help:      "Number of construction iterations (occurrences attempted) per solve().",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
		constraintViolations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "edusched",
			Name:      "constraint_violations_total",
			Help:      "Constraint violations encountered during construction, by constraint_type.",
		}, []string{"constraint_type"}),
		backendFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "edusched",
			Name:      "backend_fallbacks_total",
			Help:      "Number of times the heuristic backend was used as a fallback.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.solves, m.solveDuration, m.iterations, m.constraintViolations, m.backendFallbacks)
	}
	return m
}

func (m *Metrics) ObserveSolve(status, backend string, seconds float64, iterations int) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(status, backend).Inc()
	m.solveDuration.Observe(seconds)
	m.iterations.Observe(float64(iterations))
}

func (m *Metrics) ObserveViolation(constraintType string) {
	if m == nil {
		return
	}
	m.constraintViolations.WithLabelValues(constraintType).Inc()
}

func (m *Metrics) ObserveFallback() {
	if m == nil {
		return
	}
	m.backendFallbacks.Inc()
}
