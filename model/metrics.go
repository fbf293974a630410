package model

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	opLink   = "link"
	opUnlink = "unlink"
)

// Metrics counts graph edge changes. A nil *Metrics records nothing.
type Metrics struct {
	changes *prometheus.CounterVec
	rejects *prometheus.CounterVec
	edges   prometheus.Gauge
}

// NewMetrics creates graph metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "edge_operations_total",
			Help:      "Container edge operations by operation and result (applied, noop)",
		}, []string{"op", "result"}),
		rejects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "edge_rejections_total",
			Help:      "Container edge operations rejected for an invalid element",
		}, []string{"op"}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "edges",
			Help:      "Current number of container edges",
		}),
	}

	for _, c := range []prometheus.Collector{m.changes, m.rejects, m.edges} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(op string, applied bool, edges int) {
	if m == nil {
		return
	}
	result := "noop"
	if applied {
		result = "applied"
	}
	m.changes.WithLabelValues(op, result).Inc()
	m.edges.Set(float64(edges))
}

func (m *Metrics) rejected(op string) {
	if m == nil {
		return
	}
	m.rejects.WithLabelValues(op).Inc()
}
