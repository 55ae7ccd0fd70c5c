package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/placement-prep/internal/export"
	"github.com/jonathan/placement-prep/internal/history"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored analysis as plain text",
	Long:  "Render a stored analysis as plain text. By default the full report is written; --section selects just the plan, checklist or questions.",
	RunE:  runExport,
}

var (
	exportID          string
	exportSection     string
	exportOutputFile  string
	exportHistoryFile string
	exportDatabaseURL string
)

func init() {
	exportCmd.Flags().StringVar(&exportID, "id", "", "Analysis ID (required)")
	exportCmd.Flags().StringVar(&exportSection, "section", "", "Section to export: plan, checklist or questions (default: full report)")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Output file (default: derived from company and role)")
	exportCmd.Flags().StringVar(&exportHistoryFile, "history-file", "", "Path to the JSON history file")
	exportCmd.Flags().StringVar(&exportDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	_ = exportCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	id, err := uuid.Parse(exportID)
	if err != nil {
		return fmt.Errorf("invalid analysis id: %w", err)
	}

	switch exportSection {
	case "", "plan", "checklist", "questions":
	default:
		return fmt.Errorf("unknown section: %s (expected plan, checklist or questions)", exportSection)
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, exportHistoryFile, exportDatabaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	record, err := history.NewService(store).Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load analysis: %w", err)
	}

	var text string
	switch exportSection {
	case "plan":
		text = export.Plan(record)
	case "checklist":
		text = export.Checklist(record)
	case "questions":
		text = export.Questions(record)
	default:
		text = export.Document(record)
	}

	// Section exports go to stdout unless a file is named; the full
	// report defaults to its download filename.
	if exportOutputFile == "" && exportSection != "" {
		fmt.Fprintln(os.Stdout, text)
		return nil
	}

	outputFile := exportOutputFile
	if outputFile == "" {
		outputFile = export.Filename(record)
	}

	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Exported to %s\n", outputFile)

	return nil
}
