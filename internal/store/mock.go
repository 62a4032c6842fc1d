package store

import (
	"context"

	"fjacquet/gastos-bot/internal/models"
)

// MockCategoryStore is an in-memory catalog source for tests.
type MockCategoryStore struct {
	Catalog        models.SynonymCatalog
	PaymentMethods []models.PaymentMethod

	LoadCatalogError        error
	LoadPaymentMethodsError error

	// PaymentMethodCalls counts ActivePaymentMethods invocations.
	PaymentMethodCalls int
}

// LoadCatalog returns a copy of the mock catalog.
func (m *MockCategoryStore) LoadCatalog() (models.SynonymCatalog, error) {
	if m.LoadCatalogError != nil {
		return nil, m.LoadCatalogError
	}
	return m.Catalog.Clone(), nil
}

// ActivePaymentMethods returns the active mock payment methods.
func (m *MockCategoryStore) ActivePaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	m.PaymentMethodCalls++
	if m.LoadPaymentMethodsError != nil {
		return nil, m.LoadPaymentMethodsError
	}
	var active []models.PaymentMethod
	for _, pm := range m.PaymentMethods {
		if pm.Active {
			active = append(active, pm)
		}
	}
	return active, nil
}

// FindConfigFile returns a fixed dummy path.
func (m *MockCategoryStore) FindConfigFile(filename string) (string, error) {
	return "/mock/path/" + filename, nil
}
