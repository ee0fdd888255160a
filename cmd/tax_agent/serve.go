package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/tax-return-agent/internal/llm"
	"github.com/jonathan/tax-return-agent/internal/server"
)

var (
	servePort        int
	serveConcurrency int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for uploading tax documents and calculating returns.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().IntVar(&serveConcurrency, "concurrency", 0, "Parallel document extractions (0 = default)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Without an API key the server still runs; extraction is pattern-only.
	var client llm.Client
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		var err error
		client, err = llm.NewClient(cmd.Context(), llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}
		defer client.Close()
	} else {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set; model fallback disabled")
	}

	srv := server.New(server.Config{
		Port:        servePort,
		Client:      client,
		Concurrency: serveConcurrency,
	})

	return srv.Start()
}
