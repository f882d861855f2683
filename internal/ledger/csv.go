package ledger

import (
	"github.com/ArthurFDLR/beancount-ce/internal/common"
	"github.com/ArthurFDLR/beancount-ce/internal/dateutils"
)

// ExportRow is the flattened CSV shape of one emitted transaction.
type ExportRow struct {
	Date           string `csv:"Date"`
	Payee          string `csv:"Payee"`
	OperationType  string `csv:"OperationType"`
	Account        string `csv:"Account"`
	Amount         string `csv:"Amount"`
	Currency       string `csv:"Currency"`
	Category       string `csv:"Category"`
	CategoryAmount string `csv:"CategoryAmount"`
}

// WriteToCSV writes emitted transactions to a CSV file, one row per
// transaction with the optional category posting flattened into two columns.
func WriteToCSV(txs []Transaction, csvFile string) error {
	rows := make([]ExportRow, 0, len(txs))
	for _, t := range txs {
		row := ExportRow{
			Date:          dateutils.ToISO(t.Date),
			Payee:         t.Payee,
			OperationType: string(t.Type),
		}
		if len(t.Postings) > 0 {
			row.Account = t.Postings[0].Account
			row.Amount = t.Postings[0].Amount.StringFixed(2)
			row.Currency = t.Postings[0].Currency
		}
		if len(t.Postings) > 1 {
			row.Category = t.Postings[1].Account
			row.CategoryAmount = t.Postings[1].Amount.StringFixed(2)
		}
		rows = append(rows, row)
	}
	return common.WriteCSVRows(rows, csvFile)
}
