package batch

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fjacquet/gastos-bot/internal/categorizer"
	"fjacquet/gastos-bot/internal/expenseparser"
	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/models"
	"fjacquet/gastos-bot/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedProcessor(t *testing.T, logger logging.Logger) *Processor {
	t.Helper()
	source := &store.MockCategoryStore{
		Catalog:        store.SeedCatalog(),
		PaymentMethods: store.SeedPaymentMethods(),
	}
	matcher := categorizer.NewPaymentMethodMatcher(source, time.Minute, logger)
	parser := expenseparser.NewParser(matcher, nil, logger)
	local := categorizer.NewKeywordStrategyFromCatalog(source.Catalog, logger)
	classifier := categorizer.NewCategorizer(local, nil, nil, logger)
	return NewProcessor(parser, classifier, logger)
}

func TestProcessor_EndToEnd(t *testing.T) {
	p := newSeedProcessor(t, logging.NewMockLogger())

	out := p.Process(context.Background(), "50 almuerzo en restaurante")

	require.True(t, out.Expense.HasAmount())
	assert.True(t, decimal.NewFromInt(50).Equal(out.Expense.Amount.Decimal))
	assert.Equal(t, "almuerzo en restaurante", out.Expense.Description)
	assert.Equal(t, models.PaymentMethodCash, out.Expense.PaymentMethodName)
	assert.Equal(t, "Comida", out.Classification.SubcategoryName)
	assert.Equal(t, models.TierLocal, out.Classification.Tier)
	assert.Equal(t, "Keyword:success", out.Trace.Summary())
}

func TestProcessor_Process(t *testing.T) {
	tests := []struct {
		message     string
		subcategory string
		payment     string
		tier        models.Tier
	}{
		{"1200 uber a casa. tarjeta de crédito", "Transporte", "Tarjeta de crédito", models.TierLocal},
		{"15 farmacia. Efectivo", "Salud", "Efectivo", models.TierLocal},
		{"800 peluquería. débito", "Belleza", "Tarjeta de débito", models.TierLocal},
		{"300 xyzzy", models.SubcategoryUncategorized, "Efectivo", models.TierDefault},
		{"sin monto", models.SubcategoryUncategorized, "Efectivo", models.TierDefault},
		{"300", models.SubcategoryUncategorized, "Efectivo", models.TierDefault},
		{"300. tarjeta", models.SubcategoryUncategorized, "Tarjeta de crédito", models.TierDefault},
	}

	p := newSeedProcessor(t, nil)
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			out := p.Process(context.Background(), tt.message)
			assert.Equal(t, tt.subcategory, out.Classification.SubcategoryName)
			assert.Equal(t, tt.payment, out.Expense.PaymentMethodName)
			assert.Equal(t, tt.tier, out.Classification.Tier)
		})
	}
}

// countingClassifier answers with a fixed LOCAL result and counts calls.
type countingClassifier struct {
	calls int
}

func (c *countingClassifier) ClassifyExplained(context.Context, string) (models.ClassificationResult, categorizer.StrategyResults) {
	c.calls++
	return models.ClassificationResult{SubcategoryName: "Mascotas", Score: 4, Tier: models.TierLocal},
		categorizer.StrategyResults{}
}

func TestProcessor_SkipsClassificationWithoutAmountOrDescription(t *testing.T) {
	tests := []struct {
		message       string
		expectedCalls int
	}{
		{"300", 0},
		{"sin monto", 0},
		{"", 0},
		{"300 gato", 1},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			classifier := &countingClassifier{}
			logger := logging.NewMockLogger()
			p := NewProcessor(expenseparser.NewParser(nil, nil, nil), classifier, logger)

			out := p.Process(context.Background(), tt.message)

			assert.Equal(t, tt.expectedCalls, classifier.calls)
			if tt.expectedCalls == 0 {
				assert.Equal(t, models.DefaultClassification(), out.Classification)
				assert.Empty(t, out.Trace.Results)
				assert.True(t, logger.HasEntry("DEBUG", "Skipped classification"))
			}
		})
	}
}

func TestOutcome_Record(t *testing.T) {
	p := newSeedProcessor(t, nil)

	rec := p.Process(context.Background(), "25,5 uber").Record()
	assert.Equal(t, models.ExpenseRecord{
		Message:       "25,5 uber",
		Amount:        "25.50",
		Description:   "uber",
		PaymentMethod: "Efectivo",
		Subcategory:   "Transporte",
		Score:         categorizer.ScoreExact,
		Tier:          models.TierLocal,
	}, rec)

	rec = p.Process(context.Background(), "nada").Record()
	assert.Empty(t, rec.Amount)
	assert.Equal(t, models.DescriptionPlaceholder, rec.Description)
	assert.Equal(t, models.SubcategoryUncategorized, rec.Subcategory)
	assert.Equal(t, models.TierDefault, rec.Tier)

	rec = p.Process(context.Background(), "300").Record()
	assert.Equal(t, "300.00", rec.Amount)
	assert.Equal(t, models.SubcategoryUncategorized, rec.Subcategory)
	assert.Equal(t, models.TierDefault, rec.Tier)
}

func TestOutcome_Confirmation(t *testing.T) {
	p := newSeedProcessor(t, nil)

	got := p.Process(context.Background(), "12500 almuerzo en restaurante. visa").Confirmation()
	assert.Equal(t, "Gasto registrado\n\n"+
		"Categoría: Comida (detectada automáticamente)\n"+
		"Monto: 12.500,00 ARS\n"+
		"Descripción: Almuerzo en restaurante\n"+
		"Medio de pago: Tarjeta de crédito", got)

	got = p.Process(context.Background(), "75 xyzzy").Confirmation()
	assert.Contains(t, got, "Categoría: Otros no clasificados\n")
	assert.NotContains(t, got, "detectada")

	assert.Equal(t, NoAmountMessage, p.Process(context.Background(), "sin monto").Confirmation())

	got = p.Process(context.Background(), "300").Confirmation()
	assert.Contains(t, got, "Categoría: Otros no clasificados\n")
	assert.Contains(t, got, "Descripción: Gasto sin descripción")
}

func TestProcessor_ProcessAll(t *testing.T) {
	p := newSeedProcessor(t, nil)

	for _, n := range []int{0, 3, SequentialThreshold + 57} {
		t.Run(fmt.Sprintf("%d messages", n), func(t *testing.T) {
			messages := make([]string, n)
			for i := range messages {
				messages[i] = fmt.Sprintf("%d taxi", i+1)
			}

			outcomes, err := p.ProcessAll(context.Background(), messages, 4)
			require.NoError(t, err)
			require.Len(t, outcomes, n)
			for i, o := range outcomes {
				assert.Equal(t, messages[i], o.Message)
				assert.True(t, decimal.NewFromInt(int64(i+1)).Equal(o.Expense.Amount.Decimal))
				assert.Equal(t, "Transporte", o.Classification.SubcategoryName)
			}
		})
	}
}

func TestProcessor_ProcessAll_Cancelled(t *testing.T) {
	p := newSeedProcessor(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	messages := make([]string, 2*SequentialThreshold)
	for i := range messages {
		messages[i] = "10 taxi"
	}

	_, err := p.ProcessAll(ctx, messages, 4)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = p.ProcessAll(ctx, messages[:3], 1)
	assert.ErrorIs(t, err, context.Canceled)
}
