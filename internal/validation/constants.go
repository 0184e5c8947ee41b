package validation

// Formatted error messages
const (
	ErrMsgLoadSchemaFmt    = "failed to load schema %s: %w"
	ErrMsgReadSchemaFmt    = "failed to read schema file: %w"
	ErrMsgParseSchemaFmt   = "failed to parse schema JSON: %w"
	ErrMsgAddSchemaFmt     = "failed to add schema resource: %w"
	ErrMsgCompileSchemaFmt = "failed to compile schema: %w"
	ErrMsgParseDataFmt     = "failed to parse JSON data: %w"
	ErrMsgSchemaFailedFmt  = "schema validation failed: %s"
	ErrMsgValidationFmt    = "validation error: %w"
)
