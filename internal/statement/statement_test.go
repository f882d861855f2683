package statement

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArthurFDLR/beancount-ce/internal/models"
	"github.com/ArthurFDLR/beancount-ce/internal/parsererror"
)

// statementFixture is a full statement reduced to its structural lines: one
// owner identifier, one account section with both balance banners, five
// debits (one wrapped over a stacked value line) and two credits.
var statementFixture = strings.Join([]string{
	"Relevé édité le 16/05/2020",
	"Identifiant client JOHN DOE 12345",
	"MR JOHN DOE - COMPTE COURANT - 04 123456789",
	"Détail des opérations",
	"SOLDE PRECEDENT AU 15/04/20 200,00",
	"02/05 CB CENTRE LECLERC FACT 300420 14,90",
	"4,4002/05 VIREMENT M OU MME DOE",
	"05/05 CB AMAZON EU SARL FACT 040520 63,43",
	"24,0011/05 VIREMENT SALAIRE ACME",
	"11/05 CB CARREFOUR CITY FACT 100520 63,11",
	"12/05 CHEQUE N 1234567 20,00",
	"13/05 INTERETS DEBITEURS TAEG 21,40",
	"VALEUR AU 12/05     7,32",
	"NOUVEAU SOLDE CREDITEUR AU 16/05/20 (en francs : 391,21) 59,64",
	"www.caisse-epargne.fr",
}, "\n")

const fixtureIBAN = "FR76 0412 3456 789"

func TestEmissionDate(t *testing.T) {
	date, err := EmissionDate(statementFixture)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.May, 16, 0, 0, 0, 0, time.UTC), date)
}

func TestEmissionDateMissing(t *testing.T) {
	_, err := EmissionDate("no full date token here")
	require.Error(t, err)

	var dataErr *parsererror.DataExtractionError
	assert.ErrorAs(t, err, &dataErr)
}

func TestExtract(t *testing.T) {
	result, err := Extract(statementFixture, fixtureIBAN, nil)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2020, time.May, 16, 0, 0, 0, 0, time.UTC), result.EmissionDate)
	require.Len(t, result.Operations, 7)
	assert.Empty(t, result.Warnings)

	// Debits come first, then credits; the signed amounts reconstruct the
	// statement's balance movement.
	expected := []struct {
		date   string
		label  string
		opType models.OperationType
		signed string
	}{
		{"2020-05-02", "CB CENTRE LECLERC", models.OperationCardDebit, "-14.9"},
		{"2020-05-05", "CB AMAZON EU SARL", models.OperationCardDebit, "-63.43"},
		{"2020-05-11", "CB CARREFOUR CITY", models.OperationCardDebit, "-63.11"},
		{"2020-05-12", "CHEQUE N 1234567", models.OperationCheck, "-20"},
		{"2020-05-13", "INTERETS DEBITEURS TAEG", models.OperationBank, "-7.32"},
		{"2020-05-02", "VIREMENT M OU MME DOE", models.OperationWireTransfer, "4.4"},
		{"2020-05-11", "VIREMENT SALAIRE ACME", models.OperationWireTransfer, "24"},
	}
	for i, want := range expected {
		op := result.Operations[i]
		assert.Equal(t, want.date, op.Date.Format("2006-01-02"), "operation %d date", i)
		assert.Equal(t, want.label, op.Label, "operation %d label", i)
		assert.Equal(t, want.opType, op.Type, "operation %d type", i)
		wantAmount, convErr := decimal.NewFromString(want.signed)
		require.NoError(t, convErr)
		assert.True(t, wantAmount.Equal(op.SignedAmount()),
			"operation %d signed amount: want %s got %s", i, want.signed, op.SignedAmount())
		assert.Equal(t, "04123456789", op.AccountNumber)
	}

	require.Len(t, result.Checks, 1)
	check := result.Checks[0]
	assert.True(t, check.HasPrevious)
	assert.True(t, check.HasNew)
	assert.True(t, check.Consistent())
	assert.True(t, check.ComputedTotal.Equal(decimal.NewFromFloat(-140.36)))
}

func TestExtractBalanceMismatchWarning(t *testing.T) {
	// Same statement with a doctored new balance.
	doctored := strings.Replace(statementFixture, "59,64", "60,00", 1)

	result, err := Extract(doctored, fixtureIBAN, nil)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, models.WarnBalanceMismatch, result.Warnings[0].Code)
	// Warnings never suppress the extracted operations.
	assert.Len(t, result.Operations, 7)
}

func TestExtractNoMatchingAccount(t *testing.T) {
	result, err := Extract(statementFixture, "FR76 9999 9999 999", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Operations)
	assert.Empty(t, result.Checks)
}

func TestExtractOwnerNotFound(t *testing.T) {
	text := "Relevé édité le 16/05/2020\nno owner markers in this text"
	_, err := Extract(text, fixtureIBAN, nil)
	require.Error(t, err)

	var ownerErr *parsererror.OwnerNotFoundError
	assert.ErrorAs(t, err, &ownerErr)
}
