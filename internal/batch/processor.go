// Package batch parses and classifies expense messages, one at a time or in
// bulk.
package batch

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/gastos-bot/internal/categorizer"
	"fjacquet/gastos-bot/internal/currencyutils"
	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/models"
	"fjacquet/gastos-bot/internal/textutils"
)

// ExpenseParser extracts amount, description and payment method from a
// message.
type ExpenseParser interface {
	Parse(ctx context.Context, message string) models.ParsedExpense
}

// Classifier assigns a subcategory to a description and reports the tiers
// it tried.
type Classifier interface {
	ClassifyExplained(ctx context.Context, description string) (models.ClassificationResult, categorizer.StrategyResults)
}

// Outcome is the result of processing one message.
type Outcome struct {
	Message        string
	Expense        models.ParsedExpense
	Classification models.ClassificationResult
	// Trace is empty when classification was skipped.
	Trace categorizer.StrategyResults
}

// Record flattens the outcome for CSV export. Amount is empty when none was
// detected.
func (o Outcome) Record() models.ExpenseRecord {
	amount := ""
	if o.Expense.HasAmount() {
		amount = o.Expense.Amount.Decimal.StringFixed(2)
	}
	return models.ExpenseRecord{
		Message:       o.Message,
		Amount:        amount,
		Description:   o.Expense.Description,
		PaymentMethod: o.Expense.PaymentMethodName,
		Subcategory:   o.Classification.SubcategoryName,
		Score:         o.Classification.Score,
		Tier:          o.Classification.Tier,
	}
}

// NoAmountMessage is shown when a message carries no positive amount.
const NoAmountMessage = "No pude detectar el monto.\n\nEjemplo: 50 almuerzo en restaurante"

// Confirmation renders the reply sent back for a processed message.
func (o Outcome) Confirmation() string {
	if !o.Expense.HasAmount() {
		return NoAmountMessage
	}

	var b strings.Builder
	b.WriteString("Gasto registrado\n\n")
	fmt.Fprintf(&b, "Categoría: %s", o.Classification.SubcategoryName)
	if o.Classification.Tier != models.TierDefault {
		b.WriteString(" (detectada automáticamente)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Monto: %s\n", currencyutils.FormatCurrency(o.Expense.Amount.Decimal, models.CurrencyARS))
	fmt.Fprintf(&b, "Descripción: %s\n", textutils.CapitalizeSentence(o.Expense.Description))
	fmt.Fprintf(&b, "Medio de pago: %s", o.Expense.PaymentMethodName)
	return b.String()
}

// Processor chains parsing and classification.
type Processor struct {
	parser     ExpenseParser
	classifier Classifier
	logger     logging.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(parser ExpenseParser, classifier Classifier, logger logging.Logger) *Processor {
	return &Processor{
		parser:     parser,
		classifier: classifier,
		logger:     logging.OrDefault(logger).WithField(logging.FieldComponent, "processor"),
	}
}

// Process parses message and classifies its description. A message without
// an amount, or without a description, gets the DEFAULT classification
// without consulting any tier.
func (p *Processor) Process(ctx context.Context, message string) Outcome {
	expense := p.parser.Parse(ctx, message)

	if !expense.HasAmount() || expense.Description == models.DescriptionPlaceholder {
		p.logger.Debug("Skipped classification",
			logging.Field{Key: logging.FieldDescription, Value: expense.Description},
			logging.Field{Key: logging.FieldReason, Value: skipReason(expense)})
		return Outcome{Message: message, Expense: expense, Classification: models.DefaultClassification()}
	}

	result, trace := p.classifier.ClassifyExplained(ctx, expense.Description)

	p.logger.Debug("Processed message",
		logging.Field{Key: logging.FieldDescription, Value: expense.Description},
		logging.Field{Key: logging.FieldCategory, Value: result.SubcategoryName},
		logging.Field{Key: logging.FieldTier, Value: result.Tier})

	return Outcome{Message: message, Expense: expense, Classification: result, Trace: trace}
}

func skipReason(expense models.ParsedExpense) string {
	if !expense.HasAmount() {
		return "no_amount"
	}
	return "no_description"
}
