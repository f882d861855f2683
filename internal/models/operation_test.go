package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewOperation(t *testing.T) {
	date := time.Date(2020, time.May, 2, 0, 0, 0, 0, time.UTC)

	t.Run("debit side", func(t *testing.T) {
		op := NewOperation(date, "04123456789", OperationCardDebit,
			"CB CENTRE LECLERC", "", decimal.NewFromFloat(14.9), true)

		assert.Equal(t, "14.90", op.Debit)
		assert.Empty(t, op.Credit)
		assert.True(t, op.IsDebit())
		assert.True(t, op.Amount().Equal(decimal.NewFromFloat(14.90)))
		assert.True(t, op.SignedAmount().Equal(decimal.NewFromFloat(-14.90)))
	})

	t.Run("credit side", func(t *testing.T) {
		op := NewOperation(date, "04123456789", OperationWireTransfer,
			"VIREMENT SALAIRE", "", decimal.NewFromFloat(24), false)

		assert.Equal(t, "24.00", op.Credit)
		assert.Empty(t, op.Debit)
		assert.False(t, op.IsDebit())
		assert.True(t, op.SignedAmount().Equal(decimal.NewFromInt(24)))
	})
}

func TestBalanceCheck(t *testing.T) {
	tests := []struct {
		name       string
		previous   float64
		computed   float64
		stated     float64
		consistent bool
	}{
		{"exact match", 100.00, -25.00, 75.00, true},
		{"drift detected", 100.00, -25.00, 80.00, false},
		{"zero previous", 0, 59.64, 59.64, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			check := BalanceCheck{
				PreviousBalance: decimal.NewFromFloat(tc.previous),
				ComputedTotal:   decimal.NewFromFloat(tc.computed),
				NewBalance:      decimal.NewFromFloat(tc.stated),
				HasPrevious:     true,
				HasNew:          true,
			}
			assert.Equal(t, tc.consistent, check.Consistent())
			assert.True(t, check.Predicted().Equal(
				decimal.NewFromFloat(tc.previous+tc.computed)))
		})
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Code: WarnBalanceMismatch, AccountNumber: "04123456789", Message: "drift"}
	assert.Equal(t, "balance_mismatch (account 04123456789): drift", w.String())

	w = Warning{Code: WarnMissingNewBalance, Message: "no banner"}
	assert.Equal(t, "missing_new_balance: no banner", w.String())
}
