package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected lineKind
	}{
		{"debit head", "02/05 CB CENTRE LECLERC FACT 300420 14,90", lineDebitHead},
		{"credit head", "4,4002/05 VIREMENT M OU MME DOE", lineCreditHead},
		{"credit head with thousands", "1 026,4408/11 VIREMENT SALAIRE", lineCreditHead},
		{"bare amount start", "14,40 REPORT", lineAmountStart},
		{"continuation text", "VALEUR AU 12/05", lineText},
		{"empty line", "", lineText},
		{"date without day-month shape", "2/5 CB", lineText},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifyLine(tc.line))
		})
	}
}

func TestIsRecordBoundary(t *testing.T) {
	assert.False(t, lineText.isRecordBoundary())
	assert.True(t, lineDebitHead.isRecordBoundary())
	assert.True(t, lineCreditHead.isRecordBoundary())
	assert.True(t, lineAmountStart.isRecordBoundary())
}

func TestTrailingAmount(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
		found    bool
	}{
		{"plain amount", "02/05 CB CENTRE LECLERC 14,90", "14,90", true},
		{"thousands amount", "SOLDE 1 575,00", "1 575,00", true},
		{"tab separated", "VALEUR AU 12/05\t4,45", "4,45", true},
		{"no amount", "VALEUR AU 12/05", "", false},
		{"amount glued to reference", "REF 00014,90", "", false},
		{"amount not at end", "14,90 EUROS", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, ok := trailingAmount(tc.line)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, amount)
		})
	}
}

func TestIsPlainAmount(t *testing.T) {
	assert.True(t, isPlainAmount("14,40"))
	assert.False(t, isPlainAmount("1 026,44"))
}
