// Package statement implements the Caisse d'Epargne statement extraction
// pipeline: noise normalization, owner and account segmentation, section
// cleaning, line-item matching, balance reconciliation and operation
// normalization. Input is the linearized text of one statement as produced by
// the text-extraction collaborator; the pipeline itself holds no state across
// calls.
package statement

import (
	"regexp"
	"time"

	"github.com/ArthurFDLR/beancount-ce/internal/dateutils"
	"github.com/ArthurFDLR/beancount-ce/internal/logging"
	"github.com/ArthurFDLR/beancount-ce/internal/models"
	"github.com/ArthurFDLR/beancount-ce/internal/parsererror"
	"github.com/ArthurFDLR/beancount-ce/internal/rules"
	"github.com/ArthurFDLR/beancount-ce/internal/textnorm"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// The emission date is the first full date token of the statement.
var emissionDateRe = regexp.MustCompile(`\b[\d/]{10}\b`)

// Result is the outcome of extracting one statement for one configured
// account. Warnings carry the non-fatal diagnostics (balance drift, missing
// banners) so that callers have programmatic access to them.
type Result struct {
	EmissionDate time.Time
	Operations   []models.Operation
	Checks       []models.BalanceCheck
	Warnings     []models.Warning
}

// EmissionDate finds and parses the statement's emission date in raw or
// normalized statement text.
func EmissionDate(text string) (time.Time, error) {
	token := emissionDateRe.FindString(text)
	if token == "" {
		return time.Time{}, &parsererror.DataExtractionError{
			FieldName: "emission date",
			Reason:    "no DD/MM/YYYY token found in statement text",
		}
	}
	return dateutils.ParseEmission(token)
}

// Extract runs the whole pipeline over raw statement text and returns the
// normalized operations of every account section matching the configured
// account number or IBAN. A statement whose owner cannot be located returns
// an OwnerNotFoundError; everything below that severity degrades to skipped
// matches or warnings.
func Extract(text, iban string, r *rules.Rules) (*Result, error) {
	if r == nil {
		r = rules.Default()
	}

	normalized := textnorm.Normalize(text)

	emission, err := EmissionDate(normalized)
	if err != nil {
		return nil, err
	}

	accounts, err := FindAccounts(normalized)
	if err != nil {
		return nil, err
	}
	log.Debug("located account headers",
		logging.Field{Key: logging.FieldCount, Value: len(accounts)})

	result := &Result{EmissionDate: emission}

	sections := Sections(normalized, accounts, func(a Account) bool {
		return MatchesAccountNumber(a.Number, iban)
	})
	for _, section := range sections {
		extractSection(section, emission, r, result)
	}

	log.Info("extracted statement operations",
		logging.Field{Key: logging.FieldCount, Value: len(result.Operations)})
	return result, nil
}

func extractSection(section AccountSection, emission time.Time, r *rules.Rules, result *Result) {
	check := ReadBalances(section.Body)

	cleaned := CleanSection(section.Body, section.Account.Header, r)
	raws := MatchLineItems(cleaned)

	check, warnings := Reconcile(check, raws, section.Account.Number)
	for _, w := range warnings {
		log.Warn(w.Message,
			logging.Field{Key: logging.FieldAccount, Value: w.AccountNumber},
			logging.Field{Key: "code", Value: string(w.Code)})
	}
	result.Checks = append(result.Checks, check)
	result.Warnings = append(result.Warnings, warnings...)

	for _, raw := range raws {
		op, err := NormalizeOperation(raw, section.Account.Number, emission, r)
		if err != nil {
			// A single malformed line item is skipped, never fatal.
			log.WithError(err).Warn("dropping unparseable line item",
				logging.Field{Key: logging.FieldAccount, Value: section.Account.Number})
			continue
		}
		result.Operations = append(result.Operations, op)
	}
}
