// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

// OutputBuckets cover the normalized output including the extended output
// domain on both sides of [0, 1].
var OutputBuckets = prometheus.LinearBuckets(-0.5, 0.125, 17)

// Collector records fuzzy.Report values as Prometheus metrics.
type Collector struct {
	evaluations *prometheus.CounterVec
	nodes       *prometheus.CounterVec
	cycles      *prometheus.CounterVec
	degenerate  *prometheus.CounterVec
	output      *prometheus.HistogramVec
	last        *prometheus.GaugeVec
}

// NewCollector registers the metrics on reg. A nil reg registers on the
// default Prometheus registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	labels := []string{SystemLabel}

	return &Collector{
		evaluations: f.NewCounterVec(prometheus.CounterOpts{Name: EvaluationsN, Help: EvaluationsH}, labels),
		nodes:       f.NewCounterVec(prometheus.CounterOpts{Name: NodesN, Help: NodesH}, labels),
		cycles:      f.NewCounterVec(prometheus.CounterOpts{Name: CyclesN, Help: CyclesH}, labels),
		degenerate:  f.NewCounterVec(prometheus.CounterOpts{Name: DegenerateN, Help: DegenerateH}, labels),
		output: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    OutputN,
			Help:    OutputH,
			Buckets: OutputBuckets,
		}, labels),
		last: f.NewGaugeVec(prometheus.GaugeOpts{Name: LastOutputN, Help: LastOutputH}, labels),
	}
}

// Evaluated implements fuzzy.Observer.
func (c *Collector) Evaluated(r fuzzy.Report) {
	name := r.SystemName
	if name == "" {
		name = r.SystemID
	}

	c.evaluations.WithLabelValues(name).Inc()
	if r.Nodes > 0 {
		c.nodes.WithLabelValues(name).Add(float64(r.Nodes))
	}
	if r.Cycles > 0 {
		c.cycles.WithLabelValues(name).Add(float64(r.Cycles))
	}
	if r.Degenerate {
		c.degenerate.WithLabelValues(name).Inc()
	}
	c.output.WithLabelValues(name).Observe(r.Output)
	c.last.WithLabelValues(name).Set(r.Output)
}

// EvaluationsFor returns the evaluation counter of one system label.
func (c *Collector) EvaluationsFor(system string) prometheus.Counter {
	return c.evaluations.WithLabelValues(system)
}

var _ fuzzy.Observer = (*Collector)(nil)
