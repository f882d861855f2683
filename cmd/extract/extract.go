// Package extract handles single-file statement conversion.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ArthurFDLR/beancount-ce/cmd/root"
	"github.com/ArthurFDLR/beancount-ce/internal/fileutils"
	"github.com/ArthurFDLR/beancount-ce/internal/ledger"
)

// Cmd represents the extract command.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract ledger transactions from a statement export",
	Long: `Extract the transactions of one Caisse d'Epargne statement export
(PDF, pre-extracted .txt, or CSV) and write them as beancount text, or as
CSV when the output file ends in .csv. Without --output the beancount text
goes to stdout.`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if input == "" {
		logger.Fatal("--input is required")
	}

	reg := root.GetRegistry()
	txs, err := reg.Extract(input)
	if err != nil {
		root.Log.Fatalf("Error extracting transactions: %v", err)
	}
	root.Log.Infof("Extracted %d transactions from %s", len(txs), input)

	if output == "" {
		fmt.Print(ledger.RenderAll(txs))
		return
	}

	if strings.EqualFold(filepath.Ext(output), ".csv") {
		if err := ledger.WriteToCSV(txs, output); err != nil {
			root.Log.Fatalf("Error writing CSV output: %v", err)
		}
	} else {
		if err := fileutils.WriteFile(output, []byte(ledger.RenderAll(txs)), 0644); err != nil {
			root.Log.Fatalf("Error writing output file: %v", err)
		}
	}
	root.Log.Infof("Wrote %s", output)
}
