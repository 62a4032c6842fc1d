package categorizer

import (
	"context"
	"strings"
	"time"

	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/models"
	"fjacquet/gastos-bot/internal/parsererror"
	"fjacquet/gastos-bot/internal/textutils"
)

// PaymentMethodMatcher maps a free-text payment hint to the name of an
// active payment method, defaulting to models.PaymentMethodCash.
type PaymentMethodMatcher struct {
	source PaymentMethodSource
	cache  *paymentCatalogCache
	logger logging.Logger
}

// NewPaymentMethodMatcher creates a matcher over source. Loaded catalogs are
// reused for cacheTTL; a non-positive TTL reloads on every call.
func NewPaymentMethodMatcher(source PaymentMethodSource, cacheTTL time.Duration, logger logging.Logger) *PaymentMethodMatcher {
	return &PaymentMethodMatcher{
		source: source,
		cache:  newPaymentCatalogCache(cacheTTL),
		logger: logging.OrDefault(logger).WithField(logging.FieldComponent, "payment_matcher"),
	}
}

// Match returns the best matching payment method for hint. A nil or blank
// hint, an empty catalog, a source failure or a score under MinScore all
// yield models.PaymentMethodCash.
func (m *PaymentMethodMatcher) Match(ctx context.Context, hint *string) string {
	if hint == nil || strings.TrimSpace(*hint) == "" {
		return models.PaymentMethodCash
	}
	words := textutils.ExtractWords(*hint)
	if len(words) == 0 {
		return models.PaymentMethodCash
	}

	scorer, err := m.scorer(ctx)
	if err != nil {
		m.logger.WithError(err).Warn("Payment methods unavailable, using default")
		return models.PaymentMethodCash
	}

	name, score, ok := scorer.Best(words)
	if !ok {
		return models.PaymentMethodCash
	}

	m.logger.Debug("Matched payment method",
		logging.Field{Key: logging.FieldPaymentMethod, Value: name},
		logging.Field{Key: logging.FieldScore, Value: score})
	return name
}

func (m *PaymentMethodMatcher) scorer(ctx context.Context) (*Scorer, error) {
	if s, ok := m.cache.get(); ok {
		return s, nil
	}
	if m.source == nil {
		return NewScorer(nil, nil), nil
	}

	methods, err := m.source.ActivePaymentMethods(ctx)
	if err != nil {
		return nil, &parsererror.CatalogError{Source: "payment_methods", Err: err}
	}

	names := make([]string, 0, len(methods))
	keywords := make([][]string, 0, len(methods))
	for _, pm := range methods {
		if !pm.Active {
			continue
		}
		names = append(names, pm.Name)
		keywords = append(keywords, pm.Keywords)
	}

	s := NewScorer(names, keywords)
	m.cache.set(s)
	return s, nil
}
