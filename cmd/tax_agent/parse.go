package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/tax-return-agent/internal/extraction"
	"github.com/jonathan/tax-return-agent/internal/llm"
	"github.com/jonathan/tax-return-agent/internal/textextract"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract structured data from a single tax document",
	Long:  "Classify one tax document (PDF or plain text) and extract its fields as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var (
	parseOutputFile string
	parseAPIKey     string
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rootCmd.AddCommand(parseCmd)
}

// readDocument loads one input file as plain text, running PDF text
// extraction when the content calls for it.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") || textextract.IsPDF(data) {
		text, err := textextract.ExtractText(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract PDF text: %w", err)
		}
		return text, nil
	}
	return string(data), nil
}

// modelClient builds the optional generative client for fallback extraction.
// Returns nil when no API key is available.
func modelClient(cmd *cobra.Command, apiKeyFlag string) (llm.Client, error) {
	apiKey := apiKeyFlag
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil
	}
	return llm.NewClient(cmd.Context(), llm.DefaultConfig(), apiKey)
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readDocument(args[0])
	if err != nil {
		return err
	}

	client, err := modelClient(cmd, parseAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	if client != nil {
		defer client.Close()
	}

	extractor := extraction.New(client)
	doc, err := extractor.Extract(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("failed to extract document: %w", err)
	}

	out := map[string]any{
		"document_type": doc.Type(),
		"data":          doc,
	}
	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile == "" {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)
	return nil
}
