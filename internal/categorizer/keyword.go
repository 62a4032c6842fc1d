package categorizer

import (
	"context"
	"time"

	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/models"
	"fjacquet/gastos-bot/internal/textutils"
)

// KeywordStrategy is the LOCAL tier: it scores the description's words
// against every non catch-all entry of the synonym catalog.
type KeywordStrategy struct {
	scorer         *Scorer
	resolver       SubcategoryResolver
	resolveTimeout time.Duration
	logger         logging.Logger
}

// NewKeywordStrategyFromCatalog builds the strategy over an in-memory catalog.
func NewKeywordStrategyFromCatalog(catalog models.SynonymCatalog, logger logging.Logger) *KeywordStrategy {
	logger = logging.OrDefault(logger)

	var names []string
	var keywords [][]string
	for _, entry := range catalog {
		if models.IsCatchAll(entry.Name) {
			continue
		}
		names = append(names, entry.Name)
		keywords = append(keywords, entry.Keywords)
	}

	logger.Debug("Prepared keyword scorer",
		logging.Field{Key: logging.FieldStrategy, Value: "Keyword"},
		logging.Field{Key: logging.FieldCount, Value: len(names)})

	return &KeywordStrategy{
		scorer: NewScorer(names, keywords),
		logger: logger,
	}
}

// WithResolver returns a copy of s that looks up the id of every local match
// through resolver. A non-positive timeout selects DefaultRemoteTimeout.
func (s *KeywordStrategy) WithResolver(resolver SubcategoryResolver, timeout time.Duration) *KeywordStrategy {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	out := *s
	out.resolver = resolver
	out.resolveTimeout = timeout
	return &out
}

// Name returns the name of this strategy.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// ClassifyLocal returns the best scoring subcategory for description. ok is
// false when the description has no significant words or no subcategory
// reaches MinScore.
func (s *KeywordStrategy) ClassifyLocal(description string) (name string, score int, ok bool) {
	words := textutils.ExtractWords(description)
	if len(words) == 0 {
		return "", 0, false
	}
	return s.scorer.Best(words)
}

// Categorize implements CategorizationStrategy.
func (s *KeywordStrategy) Categorize(ctx context.Context, description string) (models.ClassificationResult, bool, error) {
	name, score, ok := s.ClassifyLocal(description)

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: name},
		logging.Field{Key: logging.FieldScore, Value: score},
	).Debug("Keyword scoring finished")

	if !ok {
		return models.ClassificationResult{}, false, nil
	}
	return models.ClassificationResult{
		SubcategoryName: name,
		Score:           score,
		Tier:            models.TierLocal,
		SubcategoryID:   s.resolveID(ctx, name),
	}, true, nil
}

// resolveID returns the stored id of subcategory name, or "" when no
// resolver is set or the lookup fails. A failed lookup never discards the
// local match.
func (s *KeywordStrategy) resolveID(ctx context.Context, name string) string {
	if s.resolver == nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, s.resolveTimeout)
	defer cancel()

	sub, err := s.resolver.FindByName(ctx, name)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to resolve subcategory id",
			logging.Field{Key: logging.FieldCategory, Value: name})
		return ""
	}
	if sub == nil {
		return ""
	}
	return sub.ID
}
