// Package container provides dependency injection for the gastos-bot
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"fjacquet/gastos-bot/internal/batch"
	"fjacquet/gastos-bot/internal/categorizer"
	"fjacquet/gastos-bot/internal/config"
	"fjacquet/gastos-bot/internal/expenseparser"
	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/metrics"
	"fjacquet/gastos-bot/internal/models"
	"fjacquet/gastos-bot/internal/repository"
	"fjacquet/gastos-bot/internal/store"

	"github.com/prometheus/client_golang/prometheus"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation.
type Container struct {
	logger         logging.Logger
	config         *config.Config
	store          *store.CategoryStore
	catalog        models.SynonymCatalog
	paymentMethods categorizer.PaymentMethodSource
	metrics        *metrics.Recorder
	categorizer    *categorizer.Categorizer
	parser         *expenseparser.Parser
	processor      *batch.Processor

	closePool func()
}

// NewContainer creates and wires all application dependencies. When a
// database is configured and reachable, the REMOTE_FALLBACK tier and the
// payment-method catalog use it; otherwise the YAML catalogs are used alone.
//
// Parameters:
//   - ctx: bounds the database connection attempt
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	var pool repository.PgxPool
	var closePool func()
	if cfg.RemoteAvailable() {
		connectCtx, cancel := context.WithTimeout(ctx, cfg.RemoteTimeout())
		p, err := repository.Connect(connectCtx, cfg.Database.URL)
		cancel()
		if err != nil {
			logger.WithError(err).Warn("Database unavailable, remote fallback disabled")
		} else {
			pool, closePool = p, p.Close
		}
	}

	return newContainer(cfg, logger, pool, closePool), nil
}

func newContainer(cfg *config.Config, logger logging.Logger, pool repository.PgxPool, closePool func()) *Container {
	categoryStore := store.NewCategoryStore(cfg.Catalog.File, cfg.Catalog.PaymentMethodsFile, logger)

	catalog, err := categoryStore.LoadCatalog()
	if err != nil {
		logger.WithError(err).Warn("Catalog override unusable, using embedded seed")
		catalog = store.SeedCatalog()
	}

	var recorder *metrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = metrics.New(prometheus.NewRegistry())
	}

	local := categorizer.NewKeywordStrategyFromCatalog(catalog, logger)
	var remote *categorizer.RemoteStrategy
	var paymentMethods categorizer.PaymentMethodSource = categoryStore
	if pool != nil {
		subcategories := repository.NewPostgresSubcategoryRepository(pool)
		local = local.WithResolver(subcategories, cfg.RemoteTimeout())
		remote = categorizer.NewRemoteStrategy(subcategories, cfg.RemoteTimeout(), logger)
		paymentMethods = repository.NewPostgresPaymentMethodRepository(pool)
	}

	cat := categorizer.NewCategorizer(local, remote, recorder, logger)
	matcher := categorizer.NewPaymentMethodMatcher(paymentMethods, cfg.PaymentMethodsCacheTTL(), logger)
	parser := expenseparser.NewParser(matcher, recorder, logger)

	logger.Info("Container initialized successfully",
		logging.Field{Key: "tiers", Value: cat.Strategies()},
		logging.Field{Key: logging.FieldCount, Value: len(catalog)},
		logging.Field{Key: "metrics_enabled", Value: cfg.Metrics.Enabled})

	return &Container{
		logger:         logger,
		config:         cfg,
		store:          categoryStore,
		catalog:        catalog,
		paymentMethods: paymentMethods,
		metrics:        recorder,
		categorizer:    cat,
		parser:         parser,
		processor:      batch.NewProcessor(parser, cat, logger),
		closePool:      closePool,
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the container's category store instance.
func (c *Container) GetStore() *store.CategoryStore {
	return c.store
}

// GetCatalog returns a copy of the synonym catalog used by the LOCAL tier.
func (c *Container) GetCatalog() models.SynonymCatalog {
	return c.catalog.Clone()
}

// GetPaymentMethodSource returns where active payment methods come from.
func (c *Container) GetPaymentMethodSource() categorizer.PaymentMethodSource {
	return c.paymentMethods
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetParser returns the expense message parser.
func (c *Container) GetParser() *expenseparser.Parser {
	return c.parser
}

// GetProcessor returns the parse-and-classify processor.
func (c *Container) GetProcessor() *batch.Processor {
	return c.processor
}

// GetMetrics returns the metrics recorder, nil when metrics are disabled.
func (c *Container) GetMetrics() *metrics.Recorder {
	return c.metrics
}

// Close releases the database pool, if any.
func (c *Container) Close() error {
	if c.closePool != nil {
		c.closePool()
	}
	c.logger.Debug("Container closed")
	return nil
}
