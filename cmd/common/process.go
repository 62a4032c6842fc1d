// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"fjacquet/gastos-bot/internal/batch"
	"fjacquet/gastos-bot/internal/currencyutils"
	"fjacquet/gastos-bot/internal/models"
)

// tierOrder is the order tiers are attempted in.
var tierOrder = []models.Tier{models.TierLocal, models.TierRemoteFallback, models.TierDefault}

// MessageFromArgs joins positional arguments into a single message, so
// unquoted input like `classify 50 almuerzo` works.
func MessageFromArgs(args []string) string {
	return strings.Join(args, " ")
}

// WriteExpense prints the parsed fields of an expense message.
func WriteExpense(w io.Writer, expense models.ParsedExpense) {
	if expense.HasAmount() {
		fmt.Fprintf(w, "Monto: %s\n", currencyutils.FormatCurrency(expense.Amount.Decimal, models.CurrencyARS))
	} else {
		fmt.Fprintln(w, "Monto: -")
	}
	fmt.Fprintf(w, "Descripción: %s\n", expense.Description)
	fmt.Fprintf(w, "Medio de pago: %s\n", expense.PaymentMethodName)
}

// WriteSummary prints batch totals: tier counts in attempt order, then
// amounts per subcategory sorted by name.
func WriteSummary(w io.Writer, s batch.Summary) {
	fmt.Fprintf(w, "Mensajes: %d (sin monto: %d, posibles duplicados: %d)\n", s.Total, s.WithoutAmount, s.Duplicates)
	for _, tier := range tierOrder {
		fmt.Fprintf(w, "  %-16s %d\n", tier, s.ByTier[tier])
	}

	names := make([]string, 0, len(s.BySubcategory))
	for name := range s.BySubcategory {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-24s %s\n", name, currencyutils.FormatCurrency(s.BySubcategory[name], models.CurrencyARS))
	}
}
