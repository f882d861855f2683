// Package probe handles statement identification without extraction.
package probe

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArthurFDLR/beancount-ce/cmd/root"
)

// Cmd represents the probe command.
var Cmd = &cobra.Command{
	Use:   "probe",
	Short: "Report which importer claims a file and its filing metadata",
	Long: `Probe a file against the registered importers and report the one
claiming it, together with the statement date, the configured ledger account
and the canonical archive filename it would be filed under.`,
	Run: probeFunc,
}

func probeFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("--input is required")
	}

	imp, ok := root.GetRegistry().FirstMatch(input)
	if !ok {
		fmt.Printf("%s: not identified by any importer\n", input)
		return
	}

	fmt.Printf("importer: %s\n", imp.Name())
	fmt.Printf("account:  %s\n", imp.FileAccount(input))
	fmt.Printf("filename: %s\n", imp.FileName(input))

	date, err := imp.FileDate(input)
	if err != nil {
		root.Log.Warnf("Could not determine file date: %v", err)
		return
	}
	fmt.Printf("date:     %s\n", date.Format("2006-01-02"))
}
