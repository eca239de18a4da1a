package reactions

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts committed reconcile outcomes
type Metrics struct {
	reactions *prometheus.CounterVec
}

// NewMetrics creates reaction metrics and registers them with reg.
// A nil reg leaves the collectors unregistered (useful in tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		reactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "labeddit",
			Name:      "reactions_total",
			Help:      "Committed post reactions by outcome.",
		}, []string{"outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.reactions)
	}
	return m
}

func (m *Metrics) observe(outcome Outcome) {
	if m == nil {
		return
	}
	m.reactions.WithLabelValues(string(outcome)).Inc()
}
