package logging

// Standard field names so log lines stay filterable.
const (
	FieldComponent     = "component"
	FieldStrategy      = "strategy"
	FieldTier          = "tier"
	FieldCategory      = "category"
	FieldScore         = "score"
	FieldPaymentMethod = "payment_method"
	FieldAmount        = "amount"
	FieldDescription   = "description"
	FieldKeyword       = "keyword"
	FieldReason        = "reason"
	FieldError         = "error"
	FieldDuration      = "duration_ms"
	FieldCount         = "count"
	FieldFile          = "file_path"
	FieldDelimiter     = "delimiter"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
