// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// ParsedExpense is the structured form of one free-text expense message.
type ParsedExpense struct {
	// Amount is invalid when no positive number precedes the first '.'.
	Amount decimal.NullDecimal
	// Description is never empty; see DescriptionPlaceholder.
	Description string
	// PaymentMethodName is never empty; see PaymentMethodCash.
	PaymentMethodName string
}

// HasAmount reports whether a positive amount was detected.
func (p ParsedExpense) HasAmount() bool {
	return p.Amount.Valid
}

// ExpenseRecord is the flattened outcome of parsing and classifying a
// message, used for CSV export.
type ExpenseRecord struct {
	Message       string `csv:"message"`
	Amount        string `csv:"amount"`
	Description   string `csv:"description"`
	PaymentMethod string `csv:"payment_method"`
	Subcategory   string `csv:"subcategory"`
	Score         int    `csv:"score"`
	Tier          Tier   `csv:"tier"`
}

// MessageRow is one input line of a batch CSV file.
type MessageRow struct {
	Message string `csv:"message"`
}
