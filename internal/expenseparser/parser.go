// Package expenseparser turns a free-text expense message such as
// "1500 super. debito" into an amount, a description and a payment method.
package expenseparser

import (
	"context"
	"strings"

	"fjacquet/gastos-bot/internal/currencyutils"
	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/models"

	"github.com/shopspring/decimal"
)

// PaymentSeparator splits the message from its payment-method hint. Only the
// first occurrence is significant.
const PaymentSeparator = "."

// PaymentMatcher resolves a payment hint to a payment method name. A nil hint
// means the message carried no separator.
type PaymentMatcher interface {
	Match(ctx context.Context, hint *string) string
}

// MetricsRecorder receives one observation per parsed message.
type MetricsRecorder interface {
	ObserveParse(amountFound bool)
}

// Parser extracts ParsedExpense values from messages. It holds no mutable
// state and is safe for concurrent use.
type Parser struct {
	matcher PaymentMatcher
	metrics MetricsRecorder
	logger  logging.Logger
}

// NewParser creates a Parser.
//
// Parameters:
//   - matcher: resolves the text after the first '.'; nil always yields models.PaymentMethodCash
//   - metrics: optional, may be nil
//   - logger: the logger to use; nil selects the default logger
func NewParser(matcher PaymentMatcher, metrics MetricsRecorder, logger logging.Logger) *Parser {
	return &Parser{
		matcher: matcher,
		metrics: metrics,
		logger:  logging.OrDefault(logger).WithField(logging.FieldComponent, "expense_parser"),
	}
}

// Parse reads message. The first positive number before the separator is the
// amount, every token after it forms the description and the text after the
// separator is the payment hint. Tokens before the amount are dropped. A
// message without any positive number yields an invalid Amount; this is not
// an error.
func (p *Parser) Parse(ctx context.Context, message string) models.ParsedExpense {
	main, hint := SplitPaymentHint(message)
	amount, description := ExtractAmountAndDescription(main)

	if description == "" {
		description = models.DescriptionPlaceholder
	}

	expense := models.ParsedExpense{
		Amount:            amount,
		Description:       description,
		PaymentMethodName: p.paymentMethod(ctx, hint),
	}

	fields := []logging.Field{
		{Key: logging.FieldDescription, Value: expense.Description},
		{Key: logging.FieldPaymentMethod, Value: expense.PaymentMethodName},
	}
	if expense.HasAmount() {
		fields = append(fields, logging.Field{Key: logging.FieldAmount, Value: expense.Amount.Decimal.String()})
	}
	p.logger.Debug("Parsed expense message", fields...)

	if p.metrics != nil {
		p.metrics.ObserveParse(expense.HasAmount())
	}
	return expense
}

func (p *Parser) paymentMethod(ctx context.Context, hint *string) string {
	if p.matcher == nil {
		return models.PaymentMethodCash
	}
	name := p.matcher.Match(ctx, hint)
	if name == "" {
		return models.PaymentMethodCash
	}
	return name
}

// SplitPaymentHint cuts message at the first PaymentSeparator. hint is nil
// when the message has no separator and points to the raw remainder, which
// may be empty or contain further separators, otherwise.
func SplitPaymentHint(message string) (main string, hint *string) {
	before, after, found := strings.Cut(message, PaymentSeparator)
	if !found {
		return message, nil
	}
	return before, &after
}

// ExtractAmountAndDescription scans the whitespace separated tokens of text
// for the first positive number. Tokens following it are joined verbatim
// into the description.
func ExtractAmountAndDescription(text string) (decimal.NullDecimal, string) {
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		amount, ok := currencyutils.ExtractAmount(tok)
		if !ok {
			continue
		}
		return decimal.NewNullDecimal(amount), strings.Join(tokens[i+1:], " ")
	}
	return decimal.NullDecimal{}, ""
}
