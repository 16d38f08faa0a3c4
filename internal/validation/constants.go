package validation

// Error message formats
const (
	ErrFmtReadDataFile     = "failed to read data file %s: %w"
	ErrFmtLoadSchema       = "failed to load schema %s: %w"
	ErrFmtParseData        = "failed to parse JSON data: %w"
	ErrFmtReadSchema       = "failed to read schema file: %w"
	ErrFmtParseSchema      = "failed to parse schema JSON: %w"
	ErrFmtAddSchema        = "failed to add schema resource: %w"
	ErrFmtCompileSchema    = "failed to compile schema: %w"
	ErrFmtSchemaNotFound   = "schema file not found: %s"
	ErrFmtSchemaNotFoundIn = "schema file not found: %s (searched from %s)"
)

// ErrMsgSchemaValidation prefixes the list of violations
const ErrMsgSchemaValidation = "schema validation failed"

// RootLocation names the document root in violation messages
const RootLocation = "(root)"
