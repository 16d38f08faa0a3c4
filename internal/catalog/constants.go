package catalog

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read producer catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse producer catalog: %w"

	ErrFmtSchemaValidationFailed = "%w: schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil          = "config is nil"
	ErrMsgNoProducersDefined = "no producers defined"
)

// Validation error formats
const (
	ErrFmtProducerAtIndexEmpty   = "%w: producer at index %d has empty id"
	ErrFmtProducerEmptyName      = "%w: producer '%s' has empty display_name"
	ErrFmtProducerNonPositive    = "%w: producer '%s' has non-positive base_cost"
	ErrFmtProducerCostTooLow     = "%w: producer '%s' base_cost is below %d and would never rise"
	ErrFmtProducerNegativeYield  = "%w: producer '%s' has negative base_yield"
	ErrFmtProducerIDHasSeparator = "%w: producer '%s' id contains ':'"
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Producer catalog loaded"
	LogMsgCatalogFallback = "Using built-in producer catalog"
)
