package categorizer

import (
	"context"
	"strings"
	"time"

	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/models"
	"fjacquet/gastos-bot/internal/parsererror"
)

// DefaultRemoteTimeout bounds a remote lookup when none is configured.
const DefaultRemoteTimeout = 3 * time.Second

// RemoteStrategy is the REMOTE_FALLBACK tier backed by a SubcategoryFinder.
type RemoteStrategy struct {
	finder  SubcategoryFinder
	timeout time.Duration
	logger  logging.Logger
}

// NewRemoteStrategy wraps finder. A non-positive timeout selects
// DefaultRemoteTimeout.
func NewRemoteStrategy(finder SubcategoryFinder, timeout time.Duration, logger logging.Logger) *RemoteStrategy {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &RemoteStrategy{
		finder:  finder,
		timeout: timeout,
		logger:  logging.OrDefault(logger),
	}
}

// Name returns the name of this strategy.
func (s *RemoteStrategy) Name() string {
	return "Remote"
}

// Categorize asks the remote store for a keyword contained in description.
// Failures are returned as *parsererror.CategorizationError.
func (s *RemoteStrategy) Categorize(ctx context.Context, description string) (models.ClassificationResult, bool, error) {
	if s.finder == nil || strings.TrimSpace(description) == "" {
		return models.ClassificationResult{}, false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sub, err := s.finder.FindBySubstringMatch(ctx, description)
	if err != nil {
		return models.ClassificationResult{}, false, &parsererror.CategorizationError{
			Description: description,
			Strategy:    s.Name(),
			Err:         err,
		}
	}
	if sub == nil || strings.TrimSpace(sub.Name) == "" {
		return models.ClassificationResult{}, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: sub.Name},
	).Debug("Remote keyword store matched")

	return models.ClassificationResult{
		SubcategoryName: sub.Name,
		Tier:            models.TierRemoteFallback,
		SubcategoryID:   sub.ID,
	}, true, nil
}
