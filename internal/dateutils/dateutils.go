// Package dateutils provides the date handling shared by the statement
// importers.
package dateutils

import (
	"fmt"
	"time"
)

// Date layouts appearing in Caisse d'Epargne exports.
const (
	LayoutDayMonth = "02/01"      // operation line items, no year
	LayoutEmission = "02/01/2006" // statement emission date
	LayoutShort    = "02/01/06"   // balance banners and CSV rows
)

// ParseDayMonth parses a DD/MM token. The token carries no year, so it is
// anchored to year 2000, a leap year, to keep 29/02 parseable.
func ParseDayMonth(s string) (time.Time, error) {
	t, err := time.Parse(LayoutEmission, s+"/2000")
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day/month token '%s': %w", s, err)
	}
	return t, nil
}

// ResolveYear assigns the real year to a DD/MM operation token using the
// statement's emission date: an operation month less than or equal to the
// emission month belongs to the emission year, any later month belongs to the
// previous year (a statement emitted in January can list December operations).
func ResolveYear(dayMonth string, emission time.Time) (time.Time, error) {
	t, err := ParseDayMonth(dayMonth)
	if err != nil {
		return time.Time{}, err
	}
	year := emission.Year()
	if t.Month() > emission.Month() {
		year--
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseEmission parses a full DD/MM/YYYY emission date.
func ParseEmission(s string) (time.Time, error) {
	t, err := time.Parse(LayoutEmission, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid emission date '%s': %w", s, err)
	}
	return t, nil
}

// ParseShort parses a two-digit-year DD/MM/YY date as used by the balance
// banners and the CSV export rows.
func ParseShort(s string) (time.Time, error) {
	t, err := time.Parse(LayoutShort, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': %w", s, err)
	}
	return t, nil
}

// ToISO formats a date as YYYY-MM-DD, the form used in emitted ledger records.
func ToISO(t time.Time) string {
	return t.Format("2006-01-02")
}
