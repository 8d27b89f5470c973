// SPDX-License-Identifier: MIT
// Package: clados/registry
//
// metrics.go — Prometheus collectors owned by one Registry.
//
// Collectors are created per Registry through promauto.With(reg). A nil
// Registerer yields live but unregistered collectors, so tests can read them
// without touching the global default registry.

package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindBasis   = "basis"
	kindProduct = "product"

	resultHit  = "hit"
	resultMiss = "miss"

	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Metrics groups the collectors of one Registry.
type Metrics struct {
	Lookups       *prometheus.CounterVec
	Builds        *prometheus.CounterVec
	BuildDuration *prometheus.HistogramVec
	Entries       *prometheus.GaugeVec
}

// newMetrics creates the collectors and registers them on reg when non-nil.
func newMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clados_registry_lookups_total",
			Help: "Registry lookups by entry kind and hit/miss result",
		}, []string{"kind", "result"}),

		Builds: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clados_registry_builds_total",
			Help: "Constructions run by the registry by entry kind and outcome",
		}, []string{"kind", "outcome"}),

		BuildDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clados_registry_build_duration_seconds",
			Help:    "Time spent constructing a basis or product table",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60, 300},
		}, []string{"kind"}),

		Entries: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "clados_registry_entries",
			Help: "Canonical instances currently held by the registry",
		}, []string{"kind"}),
	}
}

func (m *Metrics) lookup(kind string, hit bool) {
	if hit {
		m.Lookups.WithLabelValues(kind, resultHit).Inc()
		return
	}
	m.Lookups.WithLabelValues(kind, resultMiss).Inc()
}

func (m *Metrics) build(kind string, seconds float64, err error) {
	if err != nil {
		m.Builds.WithLabelValues(kind, outcomeError).Inc()
		return
	}
	m.Builds.WithLabelValues(kind, outcomeSuccess).Inc()
	m.BuildDuration.WithLabelValues(kind).Observe(seconds)
}

func (m *Metrics) entries(kind string, n int) {
	m.Entries.WithLabelValues(kind).Set(float64(n))
}
