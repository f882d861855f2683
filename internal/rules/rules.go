// Package rules holds the statement-revision data that the matcher logic
// depends on: the boilerplate phrases removed from account sections and the
// label-prefix classification table. Keeping these as data, with an optional
// YAML override, lets new bank statement revisions be supported without
// touching the extraction code.
package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ArthurFDLR/beancount-ce/internal/models"
)

// ClassificationRule maps a set of label prefixes to one operation type.
type ClassificationRule struct {
	Type     models.OperationType `yaml:"type"`
	Prefixes []string             `yaml:"prefixes"`
}

// Rules groups the revision-specific data used by the section cleaner and
// the operation classifier.
type Rules struct {
	// BoilerplatePhrases flags any section line containing one of these
	// phrases for removal. The account header line is added per section.
	BoilerplatePhrases []string `yaml:"boilerplate_phrases"`

	// Classification is an ordered prefix table; the first rule with a
	// matching prefix wins.
	Classification []ClassificationRule `yaml:"classification"`
}

// Default returns the rules matching the statement revisions seen so far.
func Default() *Rules {
	return &Rules{
		BoilerplatePhrases: []string{
			"Relevé",
			"vos comptes",
			"Page",
			"Débit Crédit",
			"Détail des opérations",
			"frais bancaires et cotisations",
			"SOLDE PRECEDENT AU",
		},
		Classification: []ClassificationRule{
			{Type: models.OperationBank, Prefixes: []string{"*", "INTERETS"}},
			{Type: models.OperationDeposit, Prefixes: []string{"VERSEMENT"}},
			{Type: models.OperationWireTransfer, Prefixes: []string{"VIREMENT", "VIR"}},
			{Type: models.OperationCheck, Prefixes: []string{"CHEQUE", "REMISE CHEQUES", "REMISE CHQ"}},
			{Type: models.OperationCardDebit, Prefixes: []string{"CB"}},
			{Type: models.OperationWithdrawal, Prefixes: []string{"RETRAIT", "RET DAB"}},
			{Type: models.OperationDirectDebit, Prefixes: []string{"PRLV"}},
		},
	}
}

// LoadFile reads a YAML rules file. Fields left empty in the file keep their
// default values.
func LoadFile(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var loaded Rules
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	r := Default()
	if len(loaded.BoilerplatePhrases) > 0 {
		r.BoilerplatePhrases = loaded.BoilerplatePhrases
	}
	if len(loaded.Classification) > 0 {
		r.Classification = loaded.Classification
	}
	return r, nil
}

// Classify assigns the taxonomy tag for an operation label. Matching is
// case-insensitive on the label; the first matching prefix in table order
// wins and unmatched labels map to OTHER, so the classification is total.
func (r *Rules) Classify(label string) models.OperationType {
	upper := strings.ToUpper(strings.TrimSpace(label))
	for _, rule := range r.Classification {
		for _, prefix := range rule.Prefixes {
			if strings.HasPrefix(upper, prefix) {
				return rule.Type
			}
		}
	}
	return models.OperationOther
}
