// Package models provides the data structures shared by the statement
// extraction pipeline and the importers.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType is the fixed taxonomy tag assigned to an operation from its
// label prefix.
type OperationType string

const (
	OperationBank         OperationType = "BANK"
	OperationDeposit      OperationType = "DEPOSIT"
	OperationWireTransfer OperationType = "WIRETRANSFER"
	OperationCheck        OperationType = "CHECK"
	OperationCardDebit    OperationType = "CARDDEBIT"
	OperationWithdrawal   OperationType = "WITHDRAWAL"
	OperationDirectDebit  OperationType = "DIRECTDEBIT"
	OperationOther        OperationType = "OTHER"
)

// RawOperation is one debit or credit line item as matched in a cleaned
// account section, before classification and date resolution. DayMonth has no
// year; Amount keeps the statement's French formatting (comma decimal
// separator, optional space as thousands separator).
type RawOperation struct {
	DayMonth   string
	Label      string
	ExtraLabel string
	ShortLabel string
	Amount     string
	IsDebit    bool
}

// Operation is a fully normalized line item. Exactly one of Debit and Credit
// is non-empty; both hold amounts formatted with two decimal places.
type Operation struct {
	Date          time.Time
	AccountNumber string
	Type          OperationType
	Label         string
	ExtraLabel    string
	Debit         string
	Credit        string
}

// NewOperation builds an Operation, placing the amount on the debit or credit
// side so that the one-sided invariant holds by construction.
func NewOperation(date time.Time, accountNumber string, opType OperationType, label, extraLabel string, amount decimal.Decimal, isDebit bool) Operation {
	op := Operation{
		Date:          date,
		AccountNumber: accountNumber,
		Type:          opType,
		Label:         label,
		ExtraLabel:    extraLabel,
	}
	if isDebit {
		op.Debit = amount.StringFixed(2)
	} else {
		op.Credit = amount.StringFixed(2)
	}
	return op
}

// IsDebit reports whether the operation carries its amount on the debit side.
func (o Operation) IsDebit() bool {
	return o.Debit != ""
}

// Amount returns the operation's amount as a decimal, regardless of side.
// Returns zero if the stored amount string does not parse, which cannot
// happen for operations built through NewOperation.
func (o Operation) Amount() decimal.Decimal {
	s := o.Credit
	if o.IsDebit() {
		s = o.Debit
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SignedAmount returns the amount negated for debits, as posted on the main
// ledger account.
func (o Operation) SignedAmount() decimal.Decimal {
	if o.IsDebit() {
		return o.Amount().Neg()
	}
	return o.Amount()
}
