package statement

import (
	"time"

	"github.com/ArthurFDLR/beancount-ce/internal/currencyutils"
	"github.com/ArthurFDLR/beancount-ce/internal/dateutils"
	"github.com/ArthurFDLR/beancount-ce/internal/models"
	"github.com/ArthurFDLR/beancount-ce/internal/rules"
)

// NormalizeOperation turns a raw line item into a fully resolved operation:
// the label prefix picks the taxonomy tag, the DD/MM token gets its year from
// the statement's emission date, and the amount lands on the debit or credit
// side. The authoritative label stays the matched one; the short head-line
// fragment, when present, becomes the display label used as ledger payee.
func NormalizeOperation(raw models.RawOperation, accountNumber string, emission time.Time, r *rules.Rules) (models.Operation, error) {
	date, err := dateutils.ResolveYear(raw.DayMonth, emission)
	if err != nil {
		return models.Operation{}, err
	}

	amount, err := currencyutils.ParseAmount(raw.Amount)
	if err != nil {
		return models.Operation{}, err
	}

	label := raw.ShortLabel
	if label == "" {
		label = raw.Label
	}

	return models.NewOperation(
		date,
		accountNumber,
		r.Classify(raw.Label),
		label,
		raw.ExtraLabel,
		amount,
		raw.IsDebit,
	), nil
}
