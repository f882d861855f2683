package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArthurFDLR/beancount-ce/internal/models"
)

func TestClassify(t *testing.T) {
	r := Default()

	tests := []struct {
		name     string
		label    string
		expected models.OperationType
	}{
		{"interest charge", "INTERETS TAEG", models.OperationBank},
		{"star prefix", "* SOLDE DES ECRITURES", models.OperationBank},
		{"deposit", "VERSEMENT ESPECES", models.OperationDeposit},
		{"wire transfer", "VIREMENT PAR INTERNET", models.OperationWireTransfer},
		{"wire transfer short", "VIR SEPA SALAIRE", models.OperationWireTransfer},
		{"check", "CHEQUE N 1234567", models.OperationCheck},
		{"check remittance", "REMISE CHEQUES REF 12", models.OperationCheck},
		{"card debit", "CB CENTRE LECLERC FACT 300420", models.OperationCardDebit},
		{"withdrawal", "RETRAIT DAB 12/05", models.OperationWithdrawal},
		{"withdrawal short", "RET DAB CAISSE EPARGNE", models.OperationWithdrawal},
		{"direct debit", "PRLV ORANGE SA", models.OperationDirectDebit},
		{"lowercase label", "cb centre leclerc", models.OperationCardDebit},
		{"unmatched label", "COTISATION COMPTE", models.OperationOther},
		{"empty label", "", models.OperationOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Classify(tc.label))
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	r := &Rules{
		Classification: []ClassificationRule{
			{Type: models.OperationWireTransfer, Prefixes: []string{"VIR"}},
			{Type: models.OperationDeposit, Prefixes: []string{"VIREMENT"}},
		},
	}
	// "VIREMENT" also matches the broader "VIR" prefix listed first.
	assert.Equal(t, models.OperationWireTransfer, r.Classify("VIREMENT SALAIRE"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `
classification:
  - type: CARDDEBIT
    prefixes: ["CB", "CARTE"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r, err := LoadFile(path)
	require.NoError(t, err)

	// Overridden table replaces the default one entirely.
	assert.Equal(t, models.OperationCardDebit, r.Classify("CARTE 12/05"))
	assert.Equal(t, models.OperationOther, r.Classify("VIREMENT SALAIRE"))

	// Untouched fields keep their defaults.
	assert.Equal(t, Default().BoilerplatePhrases, r.BoilerplatePhrases)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classification: {not: [a, list"), 0644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
