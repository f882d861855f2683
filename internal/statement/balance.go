package statement

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/ArthurFDLR/beancount-ce/internal/currencyutils"
	"github.com/ArthurFDLR/beancount-ce/internal/models"
)

// Balance banners. The previous-balance banner is absent on brand-new
// accounts and first statements; the new-balance banner additionally quotes
// the amount in francs, a leftover of the pre-euro layout.
//
//	SOLDE PRECEDENT AU 15/10/14 1 575,00
//	NOUVEAU SOLDE CREDITEUR AU 15/11/14 (en francs : 1 026,44) 156,48
var (
	previousBalanceRe = regexp.MustCompile(`(?m)SOLDE PRECEDENT AU (\d{2}/\d{2}/\d{2})\s+([\d, ]+?)$`)
	newBalanceRe      = regexp.MustCompile(`(?m)NOUVEAU SOLDE CREDITEUR AU (\d{2}/\d{2}/\d{2})\s+\(en francs : [\d, ]+\)\s+([\d, ]+?)$`)
)

// ReadBalances extracts the previous and new balance banner values from a raw
// (uncleaned) account section body. Missing banners leave the corresponding
// amount at zero with the Has flag unset.
func ReadBalances(body string) models.BalanceCheck {
	check := models.BalanceCheck{}

	if m := previousBalanceRe.FindStringSubmatch(body); m != nil {
		if amt, err := currencyutils.ParseAmount(m[2]); err == nil {
			check.PreviousBalance = amt
			check.HasPrevious = true
		}
	}
	if m := newBalanceRe.FindStringSubmatch(body); m != nil {
		if amt, err := currencyutils.ParseAmount(m[2]); err == nil {
			check.NewBalance = amt
			check.HasNew = true
		}
	}
	return check
}

// Reconcile cross-checks the extracted operations against the section's
// balance banners. ComputedTotal sums debits negated and credits added. Any
// discrepancy is reported as warnings, never as an error: the check is a
// best-effort guard against matcher drift, and the statement is imported
// either way.
func Reconcile(check models.BalanceCheck, ops []models.RawOperation, accountNumber string) (models.BalanceCheck, []models.Warning) {
	total := decimal.Zero
	for _, op := range ops {
		amt, err := currencyutils.ParseAmount(op.Amount)
		if err != nil {
			continue
		}
		if op.IsDebit {
			total = total.Sub(amt)
		} else {
			total = total.Add(amt)
		}
	}
	check.ComputedTotal = total

	var warnings []models.Warning
	if !check.HasPrevious {
		warnings = append(warnings, models.Warning{
			Code:          models.WarnMissingPreviousBalance,
			AccountNumber: accountNumber,
			Message:       "no previous balance banner found; assuming 0.00",
		})
	}
	if !check.HasNew {
		warnings = append(warnings, models.Warning{
			Code:          models.WarnMissingNewBalance,
			AccountNumber: accountNumber,
			Message:       "no new balance banner found; skipping consistency check",
		})
		return check, warnings
	}

	if !check.Consistent() {
		warnings = append(warnings, models.Warning{
			Code:          models.WarnBalanceMismatch,
			AccountNumber: accountNumber,
			Message: fmt.Sprintf("operations predict balance %s but statement says %s (previous %s)",
				check.Predicted().StringFixed(2), check.NewBalance.StringFixed(2), check.PreviousBalance.StringFixed(2)),
		})
	}
	return check, warnings
}
