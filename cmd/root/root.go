// Package root contains the root command for the application.
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ArthurFDLR/beancount-ce/internal/common"
	"github.com/ArthurFDLR/beancount-ce/internal/config"
	"github.com/ArthurFDLR/beancount-ce/internal/csvimporter"
	"github.com/ArthurFDLR/beancount-ce/internal/extractor"
	"github.com/ArthurFDLR/beancount-ce/internal/importer"
	"github.com/ArthurFDLR/beancount-ce/internal/logging"
	"github.com/ArthurFDLR/beancount-ce/internal/pdfimporter"
	"github.com/ArthurFDLR/beancount-ce/internal/rules"
	"github.com/ArthurFDLR/beancount-ce/internal/statement"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the resolved application configuration.
	Cfg *config.Config

	registry *importer.Registry

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "beancount-ce",
		Short: "Convert Caisse d'Epargne statement exports to plain-text-ledger transactions.",
		Long: `beancount-ce converts Caisse d'Epargne bank statement exports (PDF
statements and CSV exports) into beancount-style ledger transactions.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to beancount-ce!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)
			adapter := logging.NewLogrusAdapterFromLogger(Log)

			// Fan the configured logger out to the packages that keep one.
			statement.SetLogger(adapter)
			common.SetLogger(adapter)

			common.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])

			r := rules.Default()
			if Cfg.RulesFile != "" {
				r, err = rules.LoadFile(Cfg.RulesFile)
				if err != nil {
					Log.Fatalf("Failed to load rules file %s: %v", Cfg.RulesFile, err)
				}
			}

			ext := extractor.NewPdftotextExtractor()

			pdf := pdfimporter.New(pdfimporter.Config{
				IBAN:               Cfg.Importer.IBAN,
				Account:            Cfg.Importer.Account,
				ExpenseCategory:    Cfg.Importer.ExpenseCategory,
				CreditCategory:     Cfg.Importer.CreditCategory,
				ShowOperationTypes: Cfg.Importer.ShowOperationTypes,
			}, ext, r, adapter)

			csv := csvimporter.New(csvimporter.Config{
				Account:            Cfg.Importer.Account,
				ExpenseCategory:    Cfg.Importer.ExpenseCategory,
				CreditCategory:     Cfg.Importer.CreditCategory,
				ShowOperationTypes: Cfg.Importer.ShowOperationTypes,
			}, r, adapter)

			registry = importer.NewRegistry(adapter, pdf, csv)
		},
	}

	// SharedFlags are the common flags accessible to all commands.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// GetRegistry returns the importer registry built during command setup.
func GetRegistry() *importer.Registry {
	return registry
}

// GetLogrusAdapter wraps the shared logger in the logging abstraction.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := Cmd.Execute(); err != nil {
		Log.Error(err)
		os.Exit(1)
	}
}
