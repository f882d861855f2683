package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WarningCode identifies the kind of diagnostic raised during extraction.
type WarningCode string

const (
	WarnBalanceMismatch        WarningCode = "balance_mismatch"
	WarnMissingNewBalance      WarningCode = "missing_new_balance"
	WarnMissingPreviousBalance WarningCode = "missing_previous_balance"
)

// Warning is a non-fatal diagnostic produced while extracting a statement.
// Warnings never prevent transactions from being emitted; they are returned
// alongside the operations so callers have programmatic access to them.
type Warning struct {
	Code          WarningCode
	AccountNumber string
	Message       string
}

func (w Warning) String() string {
	if w.AccountNumber == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s (account %s): %s", w.Code, w.AccountNumber, w.Message)
}

// BalanceCheck holds the balance arithmetic of one account section. It is a
// diagnostic value only and is never persisted.
type BalanceCheck struct {
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	ComputedTotal   decimal.Decimal

	// HasPrevious and HasNew record whether the corresponding banner was
	// found. A missing previous balance is normal for a first statement.
	HasPrevious bool
	HasNew      bool
}

// Consistent reports whether the previous balance plus the computed total of
// the extracted operations equals the stated new balance.
func (b BalanceCheck) Consistent() bool {
	return b.PreviousBalance.Add(b.ComputedTotal).Equal(b.NewBalance)
}

// Predicted returns the new balance implied by the extracted operations.
func (b BalanceCheck) Predicted() decimal.Decimal {
	return b.PreviousBalance.Add(b.ComputedTotal)
}
