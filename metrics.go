package celestial

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the solver and pipeline collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	keplerIterations prometheus.Histogram
	keplerFailures   prometheus.Counter
	positions        *prometheus.CounterVec
	horizontal       prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg. The iteration
// histogram has one bucket per Newton step up to maxIterations (the default
// cap if not positive).
func NewMetrics(reg prometheus.Registerer, maxIterations int) (*Metrics, error) {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	m := &Metrics{
		keplerIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "celestial_kepler_iterations",
			Help:    "Newton steps taken by the Kepler solver.",
			Buckets: prometheus.LinearBuckets(1, 1, maxIterations),
		}),
		keplerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "celestial_kepler_failures_total",
			Help: "Kepler solver runs which returned an error.",
		}),
		positions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "celestial_positions_total",
			Help: "Heliocentric positions computed.",
		}, []string{"body"}),
		horizontal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "celestial_horizontal_total",
			Help: "Horizontal coordinates computed.",
		}),
	}
	for _, c := range []prometheus.Collector{m.keplerIterations, m.keplerFailures, m.positions, m.horizontal} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeSolve(body string, sol AnomalySolution, err error) {
	if m == nil {
		return
	}
	m.keplerIterations.Observe(float64(sol.Iterations))
	if err != nil {
		m.keplerFailures.Inc()
		return
	}
	m.positions.WithLabelValues(body).Inc()
}

func (m *Metrics) observeHorizontal() {
	if m == nil {
		return
	}
	m.horizontal.Inc()
}
