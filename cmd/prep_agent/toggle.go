package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/placement-prep/internal/history"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle a skill between 'know' and 'practice'",
	Long:  "Flip one extracted skill's confidence on a stored analysis and recompute its readiness score.",
	RunE:  runToggle,
}

var (
	toggleID          string
	toggleSkill       string
	toggleHistoryFile string
	toggleDatabaseURL string
)

func init() {
	toggleCmd.Flags().StringVar(&toggleID, "id", "", "Analysis ID (required)")
	toggleCmd.Flags().StringVar(&toggleSkill, "skill", "", "Skill to toggle (required)")
	toggleCmd.Flags().StringVar(&toggleHistoryFile, "history-file", "", "Path to the JSON history file")
	toggleCmd.Flags().StringVar(&toggleDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	_ = toggleCmd.MarkFlagRequired("id")
	_ = toggleCmd.MarkFlagRequired("skill")
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(_ *cobra.Command, _ []string) error {
	id, err := uuid.Parse(toggleID)
	if err != nil {
		return fmt.Errorf("invalid analysis id: %w", err)
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, toggleHistoryFile, toggleDatabaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	record, err := history.NewService(store).ToggleSkillConfidence(ctx, id, toggleSkill)
	if err != nil {
		return fmt.Errorf("failed to toggle skill: %w", err)
	}

	fmt.Fprintf(os.Stdout, "%s is now marked as %q. Readiness score: %d/100\n",
		toggleSkill, record.SkillConfidenceMap[toggleSkill], record.FinalScore)

	return nil
}
