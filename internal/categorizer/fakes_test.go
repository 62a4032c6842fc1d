package categorizer

import (
	"context"
	"sync"

	"fjacquet/gastos-bot/internal/models"
)

// fakeFinder is a SubcategoryFinder driven by a function.
type fakeFinder struct {
	mu    sync.Mutex
	calls int
	fn    func(ctx context.Context, description string) (*models.Subcategory, error)
}

func (f *fakeFinder) FindBySubstringMatch(ctx context.Context, description string) (*models.Subcategory, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.fn(ctx, description)
}

func (f *fakeFinder) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeResolver is a SubcategoryResolver driven by a function.
type fakeResolver struct {
	mu    sync.Mutex
	names []string
	fn    func(ctx context.Context, name string) (*models.Subcategory, error)
}

func (f *fakeResolver) FindByName(ctx context.Context, name string) (*models.Subcategory, error) {
	f.mu.Lock()
	f.names = append(f.names, name)
	f.mu.Unlock()
	return f.fn(ctx, name)
}

func (f *fakeResolver) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.names...)
}

// fakeMetrics records what the categorizer reports.
type fakeMetrics struct {
	mu       sync.Mutex
	tiers    []models.Tier
	failures []string
}

func (m *fakeMetrics) ObserveClassification(tier models.Tier, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tiers = append(m.tiers, tier)
}

func (m *fakeMetrics) IncStrategyFailure(strategy string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, strategy)
}
