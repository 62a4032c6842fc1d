// Package categorizer classifies expense descriptions into subcategories of
// a fixed Spanish taxonomy. Tiers are tried in order:
//  1. LOCAL: keyword and fuzzy scoring against the synonym catalog
//  2. REMOTE_FALLBACK: substring lookup in a remote keyword store
//  3. DEFAULT: the fixed "Otros no clasificados" label
//
// No tier ever calls a language model.
package categorizer

import (
	"context"
	"time"

	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/models"
)

// Categorizer runs the classification tiers. It holds no mutable state and
// is safe for concurrent use.
type Categorizer struct {
	strategies []CategorizationStrategy
	metrics    MetricsRecorder
	logger     logging.Logger
}

// NewCategorizer builds the tier chain. remote may be nil, which skips the
// REMOTE_FALLBACK tier; metrics may be nil.
func NewCategorizer(local *KeywordStrategy, remote *RemoteStrategy, metrics MetricsRecorder, logger logging.Logger) *Categorizer {
	strategies := make([]CategorizationStrategy, 0, 2)
	if local != nil {
		strategies = append(strategies, local)
	}
	if remote != nil {
		strategies = append(strategies, remote)
	}
	return NewCategorizerWithStrategies(strategies, metrics, logger)
}

// NewCategorizerWithStrategies builds a Categorizer over an explicit chain.
func NewCategorizerWithStrategies(strategies []CategorizationStrategy, metrics MetricsRecorder, logger logging.Logger) *Categorizer {
	return &Categorizer{
		strategies: append([]CategorizationStrategy(nil), strategies...),
		metrics:    metrics,
		logger:     logging.OrDefault(logger).WithField(logging.FieldComponent, "categorizer"),
	}
}

// Classify returns the classification of description. It never fails: tier
// errors are logged and treated as misses, and the DEFAULT tier always
// answers.
func (c *Categorizer) Classify(ctx context.Context, description string) models.ClassificationResult {
	result, _ := c.ClassifyExplained(ctx, description)
	return result
}

// ClassifyExplained is Classify that also returns the trace of the tiers it
// ran. Each tier runs once.
func (c *Categorizer) ClassifyExplained(ctx context.Context, description string) (models.ClassificationResult, StrategyResults) {
	start := time.Now()
	trace := c.Explain(ctx, description)
	result := trace.Final()

	c.logger.Debug("Classified description",
		logging.Field{Key: logging.FieldDescription, Value: description},
		logging.Field{Key: logging.FieldCategory, Value: result.SubcategoryName},
		logging.Field{Key: logging.FieldTier, Value: result.Tier},
		logging.Field{Key: logging.FieldScore, Value: result.Score})

	if c.metrics != nil {
		c.metrics.ObserveClassification(result.Tier, time.Since(start).Seconds())
	}
	return result, trace
}

// Explain runs the tiers until one matches and returns the trace.
func (c *Categorizer) Explain(ctx context.Context, description string) StrategyResults {
	var trace StrategyResults
	for _, s := range c.strategies {
		start := time.Now()
		result, found, err := s.Categorize(ctx, description)
		trace.Results = append(trace.Results, StrategyResult{
			Strategy: s.Name(),
			Result:   result,
			Found:    found && err == nil,
			Error:    err,
			Duration: time.Since(start),
		})

		if err != nil {
			c.logger.WithError(err).Warn("Classification tier failed, falling through",
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()})
			if c.metrics != nil {
				c.metrics.IncStrategyFailure(s.Name())
			}
			continue
		}
		if found {
			break
		}
	}
	return trace
}

// Strategies returns the names of the configured tiers, in order.
func (c *Categorizer) Strategies() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return names
}
