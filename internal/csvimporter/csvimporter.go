// Package csvimporter implements the statement importer for Caisse d'Epargne
// CSV exports. The bank shipped several exporter revisions over the years;
// each one is described by an ordered format probe.
package csvimporter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ArthurFDLR/beancount-ce/internal/currencyutils"
	"github.com/ArthurFDLR/beancount-ce/internal/ledger"
	"github.com/ArthurFDLR/beancount-ce/internal/logging"
	"github.com/ArthurFDLR/beancount-ce/internal/models"
	"github.com/ArthurFDLR/beancount-ce/internal/parsererror"
	"github.com/ArthurFDLR/beancount-ce/internal/rules"
)

// canonicalFileName is the archive name for identified exports.
const canonicalFileName = "CaisseEpargne_Statement.csv"

// Config holds the per-instance settings of a CSV importer.
type Config struct {
	// Account is the ledger account name receiving the main posting.
	Account string
	// ExpenseCategory and CreditCategory, when set, add a balancing
	// posting to debits resp. credits.
	ExpenseCategory string
	CreditCategory  string
	// ShowOperationTypes appends the taxonomy tag to transaction payees.
	ShowOperationTypes bool
}

// Importer extracts ledger transactions from CSV exports.
type Importer struct {
	cfg   Config
	rules *rules.Rules
	log   logging.Logger
}

// New creates a CSV importer. A nil rules set falls back to the built-in
// defaults.
func New(cfg Config, r *rules.Rules, logger logging.Logger) *Importer {
	if r == nil {
		r = rules.Default()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{cfg: cfg, rules: r, log: logger}
}

// Name implements importer.Importer.
func (i *Importer) Name() string {
	return "CaisseEpargne CSV"
}

// Identify reports whether the file is a Caisse d'Epargne CSV export: the
// extension must be .csv and the header line of some known exporter revision
// must be present. Read failures make this false, not an error.
func (i *Importer) Identify(path string) bool {
	if strings.ToLower(filepath.Ext(path)) != ".csv" {
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	_, ok := detectFormat(string(data))
	return ok
}

// Extract returns the ledger transactions of the export. Files that fail
// identification yield an empty list.
func (i *Importer) Extract(path string) ([]ledger.Transaction, error) {
	ops, err := i.readOperations(path)
	if err != nil || ops == nil {
		return nil, err
	}

	emitter := ledger.Emitter{
		Account:            i.cfg.Account,
		ExpenseCategory:    i.cfg.ExpenseCategory,
		CreditCategory:     i.cfg.CreditCategory,
		ShowOperationTypes: i.cfg.ShowOperationTypes,
	}
	return emitter.Emit(ops, path), nil
}

// FileDate returns the date of the most recent row in the export. CSV
// exports carry no emission date, so the newest operation stands in for it.
func (i *Importer) FileDate(path string) (time.Time, error) {
	ops, err := i.readOperations(path)
	if err != nil {
		return time.Time{}, err
	}
	if len(ops) == 0 {
		return time.Time{}, &parsererror.DataExtractionError{
			FilePath:  path,
			FieldName: "date",
			Reason:    "no dated rows in CSV export",
		}
	}

	latest := ops[0].Date
	for _, op := range ops[1:] {
		if op.Date.After(latest) {
			latest = op.Date
		}
	}
	return latest, nil
}

// FileAccount returns the configured ledger account name.
func (i *Importer) FileAccount(string) string {
	return i.cfg.Account
}

// FileName returns the canonical archive filename.
func (i *Importer) FileName(string) string {
	return canonicalFileName
}

// readOperations detects the exporter revision, parses the data rows and
// normalizes them. A file matching no revision yields (nil, nil).
func (i *Importer) readOperations(path string) ([]models.Operation, error) {
	if !i.Identify(path) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading CSV file: %w", err)
	}
	f, ok := detectFormat(string(data))
	if !ok {
		return nil, nil
	}
	i.log.Debug("detected CSV exporter revision",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: "format", Value: f.name})

	r, err := skipPreamble(bytes.NewReader(data), f)
	if err != nil {
		return nil, err
	}
	rows, err := f.parse(r)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "Caisse d'Epargne CSV export",
			Msg:            err.Error(),
		}
	}

	ops := make([]models.Operation, 0, len(rows))
	for _, row := range rows {
		op, err := i.normalizeRow(row)
		if err != nil {
			i.log.WithError(err).Warn("skipping unparseable CSV row",
				logging.Field{Key: logging.FieldFile, Value: path})
			continue
		}
		ops = append(ops, op)
	}
	i.log.Info("extracted operations from CSV export",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(ops)})
	return ops, nil
}

// normalizeRow maps one data row to a normalized operation. Debit amounts
// are negative in the file; the operation stores them unsigned on the debit
// side.
func (i *Importer) normalizeRow(row csvOperation) (models.Operation, error) {
	raw := row.credit
	isDebit := false
	if row.debit != "" {
		raw = row.debit
		isDebit = true
	}

	amount, err := currencyutils.ParseAmount(raw)
	if err != nil {
		return models.Operation{}, &parsererror.ParseError{
			Parser: "csv",
			Field:  "amount",
			Value:  raw,
			Err:    err,
		}
	}

	return models.NewOperation(
		row.date,
		i.cfg.Account,
		i.rules.Classify(row.label),
		row.label,
		row.detail,
		amount.Abs(),
		isDebit,
	), nil
}
