package metrics

import (
	"errors"

	"github.com/hupe1980/shipwright/core"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "shipwright"
	subsystem = "transactions"
)

// Outcome labels used on finalized_total.
const (
	OutcomeCommitted      = "committed"
	OutcomeTooLittleFunds = "too_little_funds"
	OutcomeRejected       = "rejected"
	OutcomeDiscarded      = "discarded"
)

// Collector groups the transaction metrics. The zero value is not usable;
// build one with New.
type Collector struct {
	opened    prometheus.Counter
	finalized *prometheus.CounterVec
	parts     *prometheus.CounterVec
	cost      prometheus.Histogram
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered, which is handy in tests.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		opened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "opened_total",
			Help:      "Total transactions opened against vessels",
		}),
		finalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "finalized_total",
			Help:      "Total transaction resolutions by outcome",
		}, []string{"outcome"}),
		parts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "parts_committed_total",
			Help:      "Total parts committed into vessels by kind",
		}, []string{"kind"}),
		cost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cost",
			Help:      "Cost of committed transactions",
			Buckets:   []float64{1000, 1500, 2500, 5000, 10000, 25000, 50000, 100000},
		}),
	}

	if reg != nil {
		for _, col := range []prometheus.Collector{c.opened, c.finalized, c.parts, c.cost} {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// RecordOpen counts a newly opened transaction.
func (c *Collector) RecordOpen() {
	c.opened.Inc()
}

// RecordCommit counts a committed transaction with its cost and parts.
func (c *Collector) RecordCommit(cost float32, parts []core.Part) {
	c.finalized.WithLabelValues(OutcomeCommitted).Inc()
	c.cost.Observe(float64(cost))
	for _, p := range parts {
		c.parts.WithLabelValues(p.Kind().String()).Inc()
	}
}

// RecordFailure counts a rejected finalize, labelled by reason.
func (c *Collector) RecordFailure(err error) {
	c.finalized.WithLabelValues(outcome(err)).Inc()
}

// RecordDiscard counts an abandoned transaction.
func (c *Collector) RecordDiscard() {
	c.finalized.WithLabelValues(OutcomeDiscarded).Inc()
}

func outcome(err error) string {
	if errors.Is(err, core.ErrTooLittleFunds) {
		return OutcomeTooLittleFunds
	}
	return OutcomeRejected
}
