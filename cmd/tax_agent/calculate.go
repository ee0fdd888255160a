package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/tax-return-agent/internal/config"
	"github.com/jonathan/tax-return-agent/internal/observability"
	"github.com/jonathan/tax-return-agent/internal/pipeline"
	"github.com/jonathan/tax-return-agent/internal/rendering"
	"github.com/jonathan/tax-return-agent/internal/types"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate [documents...]",
	Short: "Calculate a complete tax return from documents",
	Long:  "Extract every given tax document, aggregate income, and print the assembled return summary.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCalculate,
}

var (
	calcConfigFile   string
	calcName         string
	calcSSN          string
	calcAddress      string
	calcFilingStatus string
	calcAPIKey       string
	calcConcurrency  int
	calcVerbose      bool
)

func init() {
	calculateCmd.Flags().StringVar(&calcConfigFile, "config", "", "Path to JSON config file with taxpayer defaults")
	calculateCmd.Flags().StringVar(&calcName, "name", "", "Taxpayer full name")
	calculateCmd.Flags().StringVar(&calcSSN, "ssn", "", "Social security number")
	calculateCmd.Flags().StringVar(&calcAddress, "address", "", "Mailing address")
	calculateCmd.Flags().StringVar(&calcFilingStatus, "filing-status", "", "Single, Married Filing Jointly, Married Filing Separately, or Head of Household")
	calculateCmd.Flags().StringVar(&calcAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	calculateCmd.Flags().IntVar(&calcConcurrency, "concurrency", 0, "Parallel document extractions (0 = default)")
	calculateCmd.Flags().BoolVarP(&calcVerbose, "verbose", "v", false, "Print per-document extraction details")
	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, args []string) error {
	cfg := config.Config{
		Name:         calcName,
		SSN:          calcSSN,
		Address:      calcAddress,
		FilingStatus: calcFilingStatus,
		APIKey:       calcAPIKey,
		Concurrency:  calcConcurrency,
	}
	if calcConfigFile != "" {
		fileCfg, err := config.LoadConfig(calcConfigFile)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	docs := make([]pipeline.Document, 0, len(args))
	for _, path := range args {
		text, err := readDocument(path)
		if err != nil {
			return err
		}
		docs = append(docs, pipeline.Document{Name: path, Text: text})
	}

	client, err := modelClient(cmd, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	if client != nil {
		defer client.Close()
	}

	opts := pipeline.RunOptions{
		Documents: docs,
		Personal: types.PersonalInfo{
			Name:         cfg.Name,
			SSN:          cfg.SSN,
			Address:      cfg.Address,
			FilingStatus: types.FilingStatus(cfg.FilingStatus),
		},
		Client:      client,
		Concurrency: cfg.Concurrency,
	}

	result, err := pipeline.Run(cmd.Context(), opts)
	if result != nil {
		for _, docResult := range result.Documents {
			if docResult.Err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %s skipped: %v\n", docResult.Name, docResult.Err)
			}
		}
	}
	if err != nil {
		return err
	}

	if calcVerbose {
		printer := observability.NewPrinter(os.Stderr)
		for _, docResult := range result.Documents {
			if docResult.Err == nil {
				printer.PrintDocument(docResult.Name, docResult.Document)
			}
		}
		printer.PrintIncomeTotals(result.Return.Income)
		printer.PrintTaxResult(result.Return.TaxCalculation)
	}

	fmt.Fprintln(os.Stdout, rendering.Summary(result.Return))
	return nil
}
