// Package pdfimporter implements the statement importer for Caisse d'Epargne
// PDF statement exports (and their pre-extracted .txt dumps).
package pdfimporter

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/ArthurFDLR/beancount-ce/internal/extractor"
	"github.com/ArthurFDLR/beancount-ce/internal/ledger"
	"github.com/ArthurFDLR/beancount-ce/internal/logging"
	"github.com/ArthurFDLR/beancount-ce/internal/models"
	"github.com/ArthurFDLR/beancount-ce/internal/parsererror"
	"github.com/ArthurFDLR/beancount-ce/internal/rules"
	"github.com/ArthurFDLR/beancount-ce/internal/statement"
)

// bankMarker is the content sniff: every statement carries the bank's domain
// in its footer.
const bankMarker = "www.caisse-epargne.fr"

// canonicalFileName is the archive name for identified statements.
const canonicalFileName = "CaisseEpargne_Statement.pdf"

// Config holds the per-instance settings of a PDF importer.
type Config struct {
	// IBAN (or bare account number) selects the account sections to
	// extract; comparison ignores whitespace.
	IBAN string
	// Account is the ledger account name receiving the main posting.
	Account string
	// ExpenseCategory and CreditCategory, when set, add a balancing
	// posting to debits resp. credits.
	ExpenseCategory string
	CreditCategory  string
	// ShowOperationTypes appends the taxonomy tag to transaction payees.
	ShowOperationTypes bool
}

// Importer extracts ledger transactions from PDF statements.
type Importer struct {
	cfg       Config
	extractor extractor.TextExtractor
	rules     *rules.Rules
	log       logging.Logger
}

// New creates a PDF importer. A nil extractor falls back to pdftotext, a nil
// rules set falls back to the built-in defaults.
func New(cfg Config, ext extractor.TextExtractor, r *rules.Rules, logger logging.Logger) *Importer {
	if ext == nil {
		ext = extractor.NewPdftotextExtractor()
	}
	if r == nil {
		r = rules.Default()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{cfg: cfg, extractor: ext, rules: r, log: logger}
}

// Name implements importer.Importer.
func (i *Importer) Name() string {
	return "CaisseEpargne PDF"
}

// Identify reports whether the file is a Caisse d'Epargne statement: the
// extension must be .pdf or .txt and the extracted text must carry the
// bank's domain marker. Extraction failures make this false, not an error.
func (i *Importer) Identify(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".txt":
	default:
		return false
	}

	text, err := i.extractor.ExtractText(path)
	if err != nil {
		return false
	}
	return strings.Contains(text, bankMarker)
}

// Extract returns the ledger transactions of the statement. Files that fail
// identification, and statements whose owner header cannot be located, yield
// an empty list: a fatal condition never surfaces a partial transaction set.
func (i *Importer) Extract(path string) ([]ledger.Transaction, error) {
	txs, _, err := i.ExtractWithDiagnostics(path)
	return txs, err
}

// ExtractWithDiagnostics is Extract plus the structured warnings gathered
// during extraction (balance drift, missing banners).
func (i *Importer) ExtractWithDiagnostics(path string) ([]ledger.Transaction, []models.Warning, error) {
	if !i.Identify(path) {
		return nil, nil, nil
	}

	text, err := i.extractor.ExtractText(path)
	if err != nil {
		return nil, nil, err
	}

	result, err := statement.Extract(text, i.cfg.IBAN, i.rules)
	if err != nil {
		var ownerErr *parsererror.OwnerNotFoundError
		if errors.As(err, &ownerErr) {
			i.log.WithError(err).Error("cannot segment accounts, skipping file",
				logging.Field{Key: logging.FieldFile, Value: path})
			return nil, nil, nil
		}
		return nil, nil, err
	}

	emitter := ledger.Emitter{
		Account:            i.cfg.Account,
		ExpenseCategory:    i.cfg.ExpenseCategory,
		CreditCategory:     i.cfg.CreditCategory,
		ShowOperationTypes: i.cfg.ShowOperationTypes,
	}
	return emitter.Emit(result.Operations, path), result.Warnings, nil
}

// FileDate returns the statement's emission date.
func (i *Importer) FileDate(path string) (time.Time, error) {
	if !i.Identify(path) {
		return time.Time{}, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "Caisse d'Epargne PDF statement",
			Msg:            "file not identified",
		}
	}

	text, err := i.extractor.ExtractText(path)
	if err != nil {
		return time.Time{}, err
	}
	return statement.EmissionDate(text)
}

// FileAccount returns the configured ledger account name.
func (i *Importer) FileAccount(string) string {
	return i.cfg.Account
}

// FileName returns the canonical archive filename.
func (i *Importer) FileName(string) string {
	return canonicalFileName
}
