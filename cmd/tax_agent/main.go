// Package main provides the entry point for the tax return agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tax_agent",
	Short: "Tax document extraction and return calculator",
	Long:  "Tax return agent extracts W-2, 1099-INT, and 1099-NEC data from uploaded documents, aggregates income, and computes a 2024 federal return.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
