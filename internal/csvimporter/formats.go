package csvimporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ArthurFDLR/beancount-ce/internal/common"
	"github.com/ArthurFDLR/beancount-ce/internal/dateutils"
)

// delimiter and quoting of every Caisse d'Epargne CSV revision.
const csvDelimiter = ';'

// csvOperation is one data row after field mapping, independent of the
// exporter revision it came from. Debit and Credit keep the file's signed
// French-formatted amount strings; exactly one of them is non-empty.
type csvOperation struct {
	date   time.Time
	label  string
	detail string
	debit  string
	credit string
}

// format is one exporter revision probe. Probes are tried in order; a file
// whose header matches none of them is simply not ours.
type format struct {
	name          string
	preambleLines int
	header        []string
	parse         func(r io.Reader) ([]csvOperation, error)
}

// formats lists the known exporter revisions, newest first.
var formats = []format{
	{
		name:          "debit-credit columns",
		preambleLines: 4,
		header:        []string{"Date", "Numéro d'opération", "Libellé", "Débit", "Crédit", "Détail"},
		parse:         parseDebitCreditRows,
	},
	{
		name:          "signed amount column",
		preambleLines: 0,
		header:        []string{"Date", "Libellé", "Montant", "Devise"},
		parse:         parseSignedAmountRows,
	},
}

// headerMatches compares the expected column names against a raw header
// line. Only the expected columns are checked, so revisions appending extra
// columns still match.
func headerMatches(line string, expected []string) bool {
	actual := strings.Split(strings.TrimRight(line, "\r\n"), string(csvDelimiter))
	if len(actual) < len(expected) {
		return false
	}
	for i, want := range expected {
		if strings.Trim(actual[i], `"`) != want {
			return false
		}
	}
	return true
}

// detectFormat finds the first probe whose header line matches the file
// content.
func detectFormat(data string) (format, bool) {
	lines := strings.Split(data, "\n")
	for _, f := range formats {
		if f.preambleLines < len(lines) && headerMatches(lines[f.preambleLines], f.header) {
			return f, true
		}
	}
	return format{}, false
}

type debitCreditRow struct {
	Date            string `csv:"Date"`
	OperationNumber string `csv:"Numéro d'opération"`
	Label           string `csv:"Libellé"`
	Debit           string `csv:"Débit"`
	Credit          string `csv:"Crédit"`
	Detail          string `csv:"Détail"`
}

func parseDebitCreditRows(r io.Reader) ([]csvOperation, error) {
	rows, err := common.ReadCSVRows[debitCreditRow](r, csvDelimiter)
	if err != nil {
		return nil, err
	}

	var ops []csvOperation
	for _, row := range rows {
		date, err := dateutils.ParseShort(row.Date)
		if err != nil {
			// Rows after the data block (totals, disclaimers) carry no
			// date; stop at the first one.
			break
		}
		ops = append(ops, csvOperation{
			date:   date,
			label:  row.Label,
			detail: row.Detail,
			debit:  row.Debit,
			credit: row.Credit,
		})
	}
	return ops, nil
}

type signedAmountRow struct {
	Date     string `csv:"Date"`
	Label    string `csv:"Libellé"`
	Amount   string `csv:"Montant"`
	Currency string `csv:"Devise"`
	Detail   string `csv:"Détail"`
}

func parseSignedAmountRows(r io.Reader) ([]csvOperation, error) {
	rows, err := common.ReadCSVRows[signedAmountRow](r, csvDelimiter)
	if err != nil {
		return nil, err
	}

	var ops []csvOperation
	for _, row := range rows {
		date, err := dateutils.ParseShort(row.Date)
		if err != nil {
			break
		}
		op := csvOperation{
			date:   date,
			label:  row.Label,
			detail: row.Detail,
		}
		// The sign of the combined column decides the side.
		if strings.HasPrefix(strings.TrimSpace(row.Amount), "-") {
			op.debit = row.Amount
		} else {
			op.credit = row.Amount
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// skipPreamble positions a reader after a format's preamble lines.
func skipPreamble(r io.Reader, f format) (io.Reader, error) {
	if f.preambleLines == 0 {
		return r, nil
	}
	skipped, err := common.SkipLines(r, f.preambleLines)
	if err != nil {
		return nil, fmt.Errorf("error skipping CSV preamble: %w", err)
	}
	return skipped, nil
}
