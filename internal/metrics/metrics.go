// Package metrics exposes Prometheus counters for the expense pipeline.
package metrics

import (
	"fmt"

	"fjacquet/gastos-bot/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gastos"

// Recorder holds the pipeline metrics. A nil *Recorder records nothing.
type Recorder struct {
	gatherer prometheus.Gatherer

	// ClassificationsTotal counts classifications by resolving tier.
	ClassificationsTotal *prometheus.CounterVec
	// ClassificationDuration tracks end-to-end classification latency.
	ClassificationDuration *prometheus.HistogramVec
	// StrategyFailuresTotal counts tier errors that fell through.
	StrategyFailuresTotal *prometheus.CounterVec
	// MessagesParsedTotal counts parsed messages by amount detection.
	MessagesParsedTotal *prometheus.CounterVec
}

// New registers the pipeline metrics on reg. Use a fresh
// prometheus.NewRegistry() per Recorder; registering twice on the same
// registry panics.
func New(reg *prometheus.Registry) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		gatherer: reg,
		ClassificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "classifications_total",
				Help:      "Total number of classified descriptions",
			},
			[]string{"tier"},
		),
		ClassificationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "classification_duration_seconds",
				Help:      "Classification duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"tier"},
		),
		StrategyFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "strategy_failures_total",
				Help:      "Total number of classification tiers that failed and fell through",
			},
			[]string{"strategy"},
		),
		MessagesParsedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_parsed_total",
				Help:      "Total number of parsed expense messages",
			},
			[]string{"amount"},
		),
	}
}

// ObserveClassification records one classification outcome.
func (r *Recorder) ObserveClassification(tier models.Tier, seconds float64) {
	if r == nil {
		return
	}
	r.ClassificationsTotal.WithLabelValues(tier.String()).Inc()
	r.ClassificationDuration.WithLabelValues(tier.String()).Observe(seconds)
}

// IncStrategyFailure records a failed tier.
func (r *Recorder) IncStrategyFailure(strategy string) {
	if r == nil {
		return
	}
	r.StrategyFailuresTotal.WithLabelValues(strategy).Inc()
}

// ObserveParse records one parsed message.
func (r *Recorder) ObserveParse(amountFound bool) {
	if r == nil {
		return
	}
	label := "missing"
	if amountFound {
		label = "found"
	}
	r.MessagesParsedTotal.WithLabelValues(label).Inc()
}

// WriteTextfile dumps every registered metric to path in the Prometheus text
// format, for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.gatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
