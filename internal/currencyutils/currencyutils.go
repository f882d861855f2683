// Package currencyutils provides the amount parsing and formatting used by
// the statement importers. Caisse d'Epargne statements use the French
// notation: comma as decimal separator, optional space as thousands separator.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the fixed currency of every statement handled here.
const Currency = "EUR"

// ParseAmount parses a statement amount string ("1 026,44", "13,40") into a
// decimal value.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount converts the French statement notation to a form that
// decimal.NewFromString accepts: comma becomes period, spaces are dropped.
func StandardizeAmount(amountStr string) string {
	s := strings.TrimSpace(amountStr)
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// FormatAmount formats a decimal with two decimal places, the precision the
// statements themselves use.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
