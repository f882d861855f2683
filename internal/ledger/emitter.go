package ledger

import (
	"github.com/ArthurFDLR/beancount-ce/internal/currencyutils"
	"github.com/ArthurFDLR/beancount-ce/internal/models"
)

// Emitter maps normalized operations to ledger transactions for one
// configured target account.
type Emitter struct {
	// Account is the ledger account receiving the main posting.
	Account string
	// ExpenseCategory, when set, receives a balancing posting for debits.
	ExpenseCategory string
	// CreditCategory, when set, receives a balancing posting for credits.
	CreditCategory string
	// ShowOperationTypes appends the taxonomy tag to the payee.
	ShowOperationTypes bool
}

// Emit converts operations into ledger transactions. The main posting takes
// the signed amount (negative for debits); the optional category posting
// takes the opposite sign so the record balances to zero.
func (e Emitter) Emit(ops []models.Operation, sourceFile string) []Transaction {
	txs := make([]Transaction, 0, len(ops))
	for i, op := range ops {
		txs = append(txs, e.emitOne(op, sourceFile, i))
	}
	return txs
}

func (e Emitter) emitOne(op models.Operation, sourceFile string, index int) Transaction {
	payee := op.Label
	if e.ShowOperationTypes {
		payee += " - " + string(op.Type)
	}

	signed := op.SignedAmount()
	postings := []Posting{{
		Account:  e.Account,
		Amount:   signed,
		Currency: currencyutils.Currency,
	}}

	category := ""
	if op.IsDebit() {
		category = e.ExpenseCategory
	} else {
		category = e.CreditCategory
	}
	if category != "" {
		postings = append(postings, Posting{
			Account:  category,
			Amount:   signed.Neg(),
			Currency: currencyutils.Currency,
		})
	}

	return Transaction{
		Date:       op.Date,
		Flag:       FlagOkay,
		Payee:      payee,
		Type:       op.Type,
		Postings:   postings,
		SourceFile: sourceFile,
		Index:      index,
	}
}
