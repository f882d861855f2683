package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldImporter   = "importer"
	FieldAccount    = "account"
	FieldOwner      = "owner"
	FieldCount      = "count"
	FieldAmount     = "amount"
	FieldBalance    = "balance"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
