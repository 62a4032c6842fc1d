package categorizer

import (
	"context"

	"fjacquet/gastos-bot/internal/models"
)

// CategorizationStrategy is one classification tier.
type CategorizationStrategy interface {
	// Categorize classifies description. found is false on a miss; a non-nil
	// error is always a miss as well.
	Categorize(ctx context.Context, description string) (result models.ClassificationResult, found bool, err error)

	// Name identifies the strategy in logs and metrics.
	Name() string
}
