// Package main provides the entry point for the Outreach Composer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outreach_agent",
	Short: "Outreach Composer CLI and HTTP API Server",
	Long:  "Outreach Composer assembles prompts from versioned templates, a stored profile and tone catalogs, and generates cold emails, cover letters, LinkedIn messages and follow-ups.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
