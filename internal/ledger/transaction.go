// Package ledger defines the plain-text-ledger record shape that importers
// emit and provides rendering and CSV export for it.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ArthurFDLR/beancount-ce/internal/models"
)

// FlagOkay marks a regular, confirmed transaction.
const FlagOkay = "*"

// Posting is one account effect within a transaction.
type Posting struct {
	Account  string
	Amount   decimal.Decimal
	Currency string
}

// Transaction is one emitted ledger record. With two postings the amounts
// are negatives of each other, so the record balances to zero.
type Transaction struct {
	Date     time.Time
	Flag     string
	Payee    string
	Type     models.OperationType
	Postings []Posting

	// SourceFile and Index locate the record's origin inside the imported
	// statement for traceability.
	SourceFile string
	Index      int
}

// Balanced reports whether the posting amounts sum to zero. A single-posting
// transaction is considered balanced against its implicit counter-account.
func (t Transaction) Balanced() bool {
	if len(t.Postings) < 2 {
		return true
	}
	sum := decimal.Zero
	for _, p := range t.Postings {
		sum = sum.Add(p.Amount)
	}
	return sum.IsZero()
}
