// Package metrics exposes Prometheus collectors for simulation runs.
package metrics

import (
	"github.com/beka-birhanu/rumba/service/i"
	"github.com/beka-birhanu/rumba/simulation"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rumba"

// Outcome label values.
const (
	OutcomeCleaned   = "cleaned"
	OutcomeExhausted = "exhausted"
)

// Collector records finished runs.
type Collector struct {
	runs       *prometheus.CounterVec
	steps      prometheus.Histogram
	spotsClean prometheus.Counter
	spotsLeft  prometheus.Counter
	sinkErrors prometheus.Counter
}

var _ i.RunObserver = (*Collector)(nil)

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished simulations by outcome.",
		}, []string{"outcome"}),
		steps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_steps",
			Help:      "Steps taken per simulation.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		spotsClean: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spots_cleaned_total",
			Help:      "Dirt spots removed across all simulations.",
		}),
		spotsLeft: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spots_left_total",
			Help:      "Dirt spots still present when a simulation ran out of steps.",
		}),
		sinkErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sink_errors_total",
			Help:      "Simulations whose snapshot sink failed.",
		}),
	}

	for _, collector := range []prometheus.Collector{c.runs, c.steps, c.spotsClean, c.spotsLeft, c.sinkErrors} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Observe records one finished simulation.
func (c *Collector) Observe(o simulation.Outcome) {
	label := OutcomeExhausted
	if o.Success {
		label = OutcomeCleaned
	}
	c.runs.WithLabelValues(label).Inc()
	c.steps.Observe(float64(o.StepsTaken))
	c.spotsClean.Add(float64(len(o.Cleaned)))
	c.spotsLeft.Add(float64(len(o.Remaining)))
	if o.SinkErr != nil {
		c.sinkErrors.Inc()
	}
}
