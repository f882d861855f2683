// Package common provides the CSV plumbing shared by the importers and the
// ledger export.
package common

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/ArthurFDLR/beancount-ce/internal/logging"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Delimiter is the field separator used when writing CSV output.
var Delimiter rune = ','

// SetDelimiter allows configuring the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SkipLines consumes n lines from the reader, returning a reader positioned
// on the line after them. Bank CSV exports carry preamble lines before the
// actual header.
func SkipLines(r io.Reader, n int) (io.Reader, error) {
	br := bufio.NewReader(r)
	for i := 0; i < n; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return nil, fmt.Errorf("error skipping preamble line %d: %w", i+1, err)
		}
	}
	return br, nil
}

// ReadCSVRows reads `;`-delimited, `"`-quoted CSV data into a slice of
// structs using gocsv struct tags. TCSVRow is the struct type mapping the
// columns of one exporter revision.
func ReadCSVRows[TCSVRow any](r io.Reader, delimiter rune) ([]TCSVRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV rows: %w", err)
	}

	log.Debug("read CSV rows",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// WriteCSVRows writes struct-tagged rows to a CSV file using the configured
// delimiter, creating parent directories as needed.
func WriteCSVRows[TCSVRow any](rows []TCSVRow, csvFile string) error {
	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: csvFile})
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV rows: %w", err)
	}

	log.Info("wrote CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}
