package categorizer

import (
	"context"

	"fjacquet/gastos-bot/internal/models"
)

// SubcategoryResolver looks up a stored subcategory by its exact name.
type SubcategoryResolver interface {
	// FindByName returns the subcategory named name, or nil when none is
	// stored.
	FindByName(ctx context.Context, name string) (*models.Subcategory, error)
}

// SubcategoryFinder is the remote keyword store consulted when the local tier
// misses.
type SubcategoryFinder interface {
	// FindBySubstringMatch returns the subcategory one of whose keywords
	// occurs in description, or nil when none does.
	FindBySubstringMatch(ctx context.Context, description string) (*models.Subcategory, error)
}

// PaymentMethodSource supplies the active payment methods.
type PaymentMethodSource interface {
	ActivePaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
}

// MetricsRecorder receives classification outcomes.
type MetricsRecorder interface {
	ObserveClassification(tier models.Tier, seconds float64)
	IncStrategyFailure(strategy string)
}
