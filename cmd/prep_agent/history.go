package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/placement-prep/internal/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored analyses, newest first",
	RunE:  runHistory,
}

var (
	historyFileFlag    string
	historyDatabaseURL string
)

func init() {
	historyCmd.Flags().StringVar(&historyFileFlag, "history-file", "", "Path to the JSON history file")
	historyCmd.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	store, closeStore, err := openStore(ctx, historyFileFlag, historyDatabaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := history.NewService(store).LoadHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if result.Corrupted {
		fmt.Fprintf(os.Stderr, "Warning: stored history was unreadable and has been reset.\n")
	}
	if result.Dropped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: skipped %d malformed history record(s).\n", result.Dropped)
	}

	if len(result.Records) == 0 {
		fmt.Fprintln(os.Stdout, "No analyses yet. Run 'prep_agent analyze' to create one.")
		return nil
	}

	for _, record := range result.Records {
		fmt.Fprintf(os.Stdout, "%s  %3d/100  %s at %s  (%s)\n",
			record.CreatedAt.Format("2006-01-02 15:04"),
			record.FinalScore,
			record.DisplayRole(),
			record.DisplayCompany(),
			record.ID)
	}

	return nil
}
