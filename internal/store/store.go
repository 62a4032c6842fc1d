// Package store loads the subcategory synonym catalog and the payment-method
// catalog from YAML, falling back to the seeds embedded in the binary.
package store

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/models"
	"fjacquet/gastos-bot/internal/parsererror"
)

//go:embed seed/catalog.yaml
var seedCatalog []byte

//go:embed seed/payment_methods.yaml
var seedPaymentMethods []byte

// CategoryStore reads catalogs from optional override files. An empty file
// name selects the embedded seed.
type CategoryStore struct {
	CatalogFile        string
	PaymentMethodsFile string
	logger             logging.Logger
}

// NewCategoryStore creates a store for the given override files.
func NewCategoryStore(catalogFile, paymentMethodsFile string, logger logging.Logger) *CategoryStore {
	return &CategoryStore{
		CatalogFile:        catalogFile,
		PaymentMethodsFile: paymentMethodsFile,
		logger:             logging.OrDefault(logger).WithField(logging.FieldComponent, "store"),
	}
}

// FindConfigFile looks for filename as given, then under ./config and
// ~/.config/gastos-bot.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".config", "gastos-bot", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// readOverride returns the content of the override file, or seed when the
// file is unset or cannot be found.
func (s *CategoryStore) readOverride(filename string, seed []byte) ([]byte, string, error) {
	if filename == "" {
		return seed, "embedded seed", nil
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		s.logger.Warn("Catalog file not found, using embedded seed",
			logging.Field{Key: logging.FieldFile, Value: filename})
		return seed, "embedded seed", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, &parsererror.CatalogError{Source: path, Err: err}
	}
	return data, path, nil
}

// LoadCatalog returns the synonym catalog in file order.
func (s *CategoryStore) LoadCatalog() (models.SynonymCatalog, error) {
	data, source, err := s.readOverride(s.CatalogFile, seedCatalog)
	if err != nil {
		return nil, err
	}

	catalog, err := DecodeCatalog(data, s.logger)
	if err != nil {
		return nil, &parsererror.CatalogError{Source: source, Err: err}
	}

	s.logger.Debug("Loaded synonym catalog",
		logging.Field{Key: logging.FieldFile, Value: source},
		logging.Field{Key: logging.FieldCount, Value: len(catalog)})
	return catalog, nil
}

// LoadPaymentMethods returns every payment method in file order.
func (s *CategoryStore) LoadPaymentMethods() ([]models.PaymentMethod, error) {
	data, source, err := s.readOverride(s.PaymentMethodsFile, seedPaymentMethods)
	if err != nil {
		return nil, err
	}

	methods, err := DecodePaymentMethods(data)
	if err != nil {
		return nil, &parsererror.CatalogError{Source: source, Err: err}
	}

	s.logger.Debug("Loaded payment methods",
		logging.Field{Key: logging.FieldFile, Value: source},
		logging.Field{Key: logging.FieldCount, Value: len(methods)})
	return methods, nil
}

// ActivePaymentMethods returns the active payment methods. The context is
// accepted so the store can stand in for a database-backed source.
func (s *CategoryStore) ActivePaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	methods, err := s.LoadPaymentMethods()
	if err != nil {
		return nil, err
	}
	active := make([]models.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		if m.Active {
			active = append(active, m)
		}
	}
	return active, nil
}

// SeedCatalog decodes the embedded catalog. It panics if the embedded file is
// broken, which only a bad build can cause.
func SeedCatalog() models.SynonymCatalog {
	catalog, err := DecodeCatalog(seedCatalog, nil)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return catalog
}

// SeedPaymentMethods decodes the embedded payment-method catalog. It panics
// if the embedded file is broken.
func SeedPaymentMethods() []models.PaymentMethod {
	methods, err := DecodePaymentMethods(seedPaymentMethods)
	if err != nil {
		panic(fmt.Sprintf("embedded payment methods are invalid: %v", err))
	}
	return methods
}
