// Package parsererror defines the typed errors shared by the statement
// importers. Callers can use errors.As to distinguish fatal extraction
// failures from format mismatches.
package parsererror

import "fmt"

// OwnerNotFoundError indicates that no account owner header matched in the
// statement text. Without an owner the per-account sections cannot be
// delimited, so this aborts extraction for the whole file.
type OwnerNotFoundError struct {
	FilePath string
}

func (e *OwnerNotFoundError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("no account owner found in statement %s", e.FilePath)
	}
	return "no account owner found in statement"
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific importer.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// ParseError represents an error during parsing of a specific field or value.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DataExtractionError represents an error where specific required data could
// not be extracted from a file, even if the file format itself is valid.
type DataExtractionError struct {
	FilePath  string
	FieldName string
	Reason    string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s",
		e.FilePath, e.FieldName, e.Reason)
}
