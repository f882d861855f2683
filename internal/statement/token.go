package statement

import (
	"regexp"
	"strings"
)

// Token shapes of the statement layout. An amount is either plain ("13,40")
// or thousands-separated ("1 026,44"); a date token is always DD/MM.
const (
	datePattern   = `\d{2}/\d{2}`
	amountPattern = `\d{1,3}(?: \d{1,3})?,\d{2}`
)

var (
	dateStartRe   = regexp.MustCompile(`^` + datePattern)
	amountStartRe = regexp.MustCompile(`^` + amountPattern)

	// Credit lines render the amount directly against the date, no separator:
	// "150,0008/11 VIREMENT PAR INTERNET"
	creditHeadRe = regexp.MustCompile(`^(` + amountPattern + `)(` + datePattern + `)(.*)$`)

	// A trailing amount must be preceded by whitespace so that a reference
	// number glued to a value is not read as part of the amount.
	trailingAmountRe = regexp.MustCompile(`[ \t](` + amountPattern + `)$`)

	// dateTokenRe finds a date token anywhere in a line. A continuation
	// line carrying a record's amount also carries its own value date, as
	// in "VALEUR AU 18/10     4,45".
	dateTokenRe = regexp.MustCompile(datePattern)
)

// lineKind classifies a physical line by what its first tokens are.
type lineKind int

const (
	// lineText is a continuation line: it belongs to the preceding record.
	lineText lineKind = iota
	// lineDebitHead starts with a date token (debit rendering order).
	lineDebitHead
	// lineCreditHead starts with an amount token glued to a date token
	// (credit rendering order).
	lineCreditHead
	// lineAmountStart starts with a bare amount token. It terminates the
	// preceding record's continuation but opens no record of its own.
	lineAmountStart
)

func classifyLine(line string) lineKind {
	switch {
	case creditHeadRe.MatchString(line):
		return lineCreditHead
	case dateStartRe.MatchString(line):
		return lineDebitHead
	case amountStartRe.MatchString(line):
		return lineAmountStart
	default:
		return lineText
	}
}

// isRecordBoundary reports whether a line ends the continuation of the
// preceding record.
func (k lineKind) isRecordBoundary() bool {
	return k != lineText
}

// trailingAmount returns the amount token ending the line, if any.
func trailingAmount(line string) (string, bool) {
	m := trailingAmountRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// isPlainAmount reports whether an amount token uses the plain form, without
// a thousands separator. Only plain trailing amounts are candidates for the
// stacked-line reassignment in the debit matcher.
func isPlainAmount(token string) bool {
	return !strings.Contains(token, " ")
}
