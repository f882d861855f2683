// Package batch handles directory-wide statement conversion.
package batch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ArthurFDLR/beancount-ce/cmd/root"
	"github.com/ArthurFDLR/beancount-ce/internal/fileutils"
	"github.com/ArthurFDLR/beancount-ce/internal/ledger"
)

// Cmd represents the batch command. For batch, the shared -i/-o flags refer
// to directories.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every statement export in a directory",
	Long: `Convert all Caisse d'Epargne statement exports (.pdf, .txt, .csv)
found directly under the input directory, writing one .beancount file per
identified input into the output directory. Files no importer claims are
skipped.

Example:
  beancount-ce batch -i statements/ -o ledger/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Input and output directories must be specified")
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		root.Log.Fatalf("Failed to create output directory: %v", err)
	}

	files, err := fileutils.ListFilesWithExtensions(inputDir, ".pdf", ".txt", ".csv")
	if err != nil {
		root.Log.Fatalf("Error listing input directory: %v", err)
	}

	reg := root.GetRegistry()
	converted := 0
	for _, file := range files {
		imp, ok := reg.FirstMatch(file)
		if !ok {
			root.Log.Debugf("No importer claims %s, skipping", file)
			continue
		}

		txs, err := imp.Extract(file)
		if err != nil {
			root.Log.Warnf("Error extracting %s: %v", file, err)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		outFile := filepath.Join(outputDir, base+".beancount")
		if err := fileutils.WriteFile(outFile, []byte(ledger.RenderAll(txs)), 0644); err != nil {
			root.Log.Warnf("Error writing %s: %v", outFile, err)
			continue
		}
		root.Log.Infof("Converted %s (%d transactions)", file, len(txs))
		converted++
	}
	root.Log.Infof("Batch processing completed. %d of %d files converted.", converted, len(files))
}
