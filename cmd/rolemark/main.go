// Package main provides the entry point for the rolemark resume screening CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rolemark",
	Short: "Deterministic resume screening engine",
	Long:  "Rolemark scores resumes against weighted role criteria using deterministic text analysis, producing auditable per-criterion breakdowns and rankings via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
