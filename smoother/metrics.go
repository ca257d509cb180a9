package smoother

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts smoother activity for benchmark reporting. All
// methods are nil-safe: a Smoother without metrics pays a nil check
// and nothing else.
type Metrics struct {
	// Sweeps counts completed general symmetric sweeps.
	Sweeps prometheus.Counter

	// ZeroGuessSweeps counts completed zero-initial-guess sweeps.
	ZeroGuessSweeps prometheus.Counter

	// Exchanges counts joined boundary exchanges.
	Exchanges prometheus.Counter
}

// NewMetrics builds the counter set and registers it with reg when reg
// is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Sweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "symgs",
			Subsystem: "smoother",
			Name:      "sweeps_total",
			Help:      "Completed symmetric Gauss-Seidel sweeps.",
		}),
		ZeroGuessSweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "symgs",
			Subsystem: "smoother",
			Name:      "zero_guess_sweeps_total",
			Help:      "Completed zero-initial-guess sweeps.",
		}),
		Exchanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "symgs",
			Subsystem: "smoother",
			Name:      "halo_exchanges_total",
			Help:      "Joined boundary exchanges.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Sweeps, m.ZeroGuessSweeps, m.Exchanges)
	}
	return m
}

func (m *Metrics) incSweeps() {
	if m != nil {
		m.Sweeps.Inc()
	}
}

func (m *Metrics) incZeroSweeps() {
	if m != nil {
		m.ZeroGuessSweeps.Inc()
	}
}

func (m *Metrics) incExchanges() {
	if m != nil {
		m.Exchanges.Inc()
	}
}
