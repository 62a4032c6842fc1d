package categorizer

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/gastos-bot/internal/models"
)

// StrategyResult records one tier attempt.
type StrategyResult struct {
	Strategy string
	Result   models.ClassificationResult
	Found    bool
	Error    error
	Duration time.Duration
}

// StrategyResults is the trace of one classification, in tier order.
type StrategyResults struct {
	Results []StrategyResult
}

// Final returns the first successful result, or the DEFAULT classification.
func (sr StrategyResults) Final() models.ClassificationResult {
	for _, r := range sr.Results {
		if r.Found && r.Error == nil {
			return r.Result
		}
	}
	return models.DefaultClassification()
}

// GetErrors returns the errors of failed tiers, prefixed by tier name.
func (sr StrategyResults) GetErrors() []error {
	var errs []error
	for _, r := range sr.Results {
		if r.Error != nil {
			errs = append(errs, fmt.Errorf("%s strategy: %w", r.Strategy, r.Error))
		}
	}
	return errs
}

// Summary renders the trace as "Keyword:no_match, Remote:success".
func (sr StrategyResults) Summary() string {
	parts := make([]string, 0, len(sr.Results))
	for _, r := range sr.Results {
		status := "no_match"
		switch {
		case r.Error != nil:
			status = "failed"
		case r.Found:
			status = "success"
		}
		parts = append(parts, fmt.Sprintf("%s:%s", r.Strategy, status))
	}
	return strings.Join(parts, ", ")
}
