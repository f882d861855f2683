package ledger

import (
	"fmt"
	"strings"

	"github.com/ArthurFDLR/beancount-ce/internal/dateutils"
)

// Render formats one transaction in beancount syntax:
//
//	2020-05-02 * "CB CENTRE LECLERC"
//	  Assets:FR:CdE:CompteCourant  -14.90 EUR
//	  Expenses:FIXME                14.90 EUR
func Render(t Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %q\n", dateutils.ToISO(t.Date), t.Flag, t.Payee)

	width := 0
	for _, p := range t.Postings {
		if len(p.Account) > width {
			width = len(p.Account)
		}
	}
	for _, p := range t.Postings {
		fmt.Fprintf(&b, "  %-*s  %s %s\n", width, p.Account, p.Amount.StringFixed(2), p.Currency)
	}
	return b.String()
}

// RenderAll formats transactions as one ledger document, blank-line
// separated.
func RenderAll(txs []Transaction) string {
	parts := make([]string, 0, len(txs))
	for _, t := range txs {
		parts = append(parts, Render(t))
	}
	return strings.Join(parts, "\n")
}
