// Package main provides the entry point for the placement prep agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prep_agent",
	Short: "Placement Prep JD Analyzer",
	Long:  "Placement Prep analyzes job descriptions into extracted skills, a readiness score, a round-wise checklist, a 7-day plan and likely interview questions, with persisted history.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
