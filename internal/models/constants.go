package models

// Fixed labels of the expense taxonomy.
const (
	// DescriptionPlaceholder is used when a message carries no description.
	DescriptionPlaceholder = "Gasto sin descripción"

	// SubcategoryUncategorized is the label of the DEFAULT classification tier.
	SubcategoryUncategorized = "Otros no clasificados"

	// SubcategoryUnforeseen is a catch-all that never takes part in scoring.
	SubcategoryUnforeseen = "Gastos imprevistos"

	// PaymentMethodCash is the payment method assumed when none matches.
	PaymentMethodCash = "Efectivo"

	// CurrencyARS is the currency every expense is recorded in.
	CurrencyARS = "ARS"
)

// IsCatchAll reports whether name is one of the catch-all subcategories
// excluded from local scoring.
func IsCatchAll(name string) bool {
	return name == SubcategoryUncategorized || name == SubcategoryUnforeseen
}
