package batch

import (
	"strings"

	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/models"
	"fjacquet/gastos-bot/internal/textutils"

	"github.com/shopspring/decimal"
)

// Summary aggregates a processed batch.
type Summary struct {
	Total         int
	WithoutAmount int
	ByTier        map[models.Tier]int
	BySubcategory map[string]decimal.Decimal
	Duplicates    int
}

// Summarize counts outcomes per tier, sums amounts per subcategory and logs
// potential duplicates. Duplicates are kept, only reported.
func Summarize(outcomes []Outcome, logger logging.Logger) Summary {
	logger = logging.OrDefault(logger)
	s := Summary{
		Total:         len(outcomes),
		ByTier:        make(map[models.Tier]int),
		BySubcategory: make(map[string]decimal.Decimal),
	}

	for _, o := range outcomes {
		s.ByTier[o.Classification.Tier]++
		if !o.Expense.HasAmount() {
			s.WithoutAmount++
			continue
		}
		name := o.Classification.SubcategoryName
		s.BySubcategory[name] = s.BySubcategory[name].Add(o.Expense.Amount.Decimal)
	}

	s.Duplicates = detectAndLogDuplicates(outcomes, logger)
	return s
}

// detectAndLogDuplicates reports outcomes with the same amount and the same
// normalized description as an earlier one.
func detectAndLogDuplicates(outcomes []Outcome, logger logging.Logger) int {
	seen := make(map[string]struct{}, len(outcomes))
	count := 0
	for _, o := range outcomes {
		if !o.Expense.HasAmount() {
			continue
		}
		key := o.Expense.Amount.Decimal.String() + "|" + strings.Join(textutils.ExtractWords(o.Expense.Description), " ")
		if _, dup := seen[key]; dup {
			count++
			logger.Warn("Potential duplicate expense",
				logging.Field{Key: logging.FieldAmount, Value: o.Expense.Amount.Decimal.String()},
				logging.Field{Key: logging.FieldDescription, Value: o.Expense.Description})
			continue
		}
		seen[key] = struct{}{}
	}

	if count > 0 {
		logger.Warn("Found potential duplicate expenses",
			logging.Field{Key: logging.FieldCount, Value: count})
	}
	return count
}
