package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/placement-prep/internal/analyzer"
	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/export"
	"github.com/jonathan/placement-prep/internal/history"
	"github.com/jonathan/placement-prep/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and store the result",
	Long:  "Analyze a job description into extracted skills, a readiness score, a round-wise checklist, a 7-day plan and interview questions. The result is prepended to the stored history.",
	RunE:  runAnalyze,
}

var (
	analyzeCompany     string
	analyzeRole        string
	analyzeJDFile      string
	analyzeJDText      string
	analyzeHistoryFile string
	analyzeDatabaseURL string
	analyzeConfigFile  string
	analyzeOutputFile  string
	analyzeVerbose     bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name (optional)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Role title (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeJDFile, "jd", "i", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJDText, "jd-text", "", "Job description text (alternative to --jd)")
	analyzeCmd.Flags().StringVar(&analyzeHistoryFile, "history-file", "", "Path to the JSON history file")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to a JSON config file (flags win over its values)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Write the full report to a text file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed analysis output")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeJDFile != "" && analyzeJDText != "" {
		return fmt.Errorf("cannot use --jd with --jd-text")
	}

	cfg := config.Config{
		JD:          analyzeJDFile,
		Company:     analyzeCompany,
		Role:        analyzeRole,
		HistoryFile: analyzeHistoryFile,
		DatabaseURL: analyzeDatabaseURL,
		Verbose:     analyzeVerbose,
	}
	if analyzeConfigFile != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	jdText := analyzeJDText
	if jdText == "" {
		if cfg.JD == "" {
			return fmt.Errorf("must provide either --jd or --jd-text")
		}
		content, err := os.ReadFile(cfg.JD)
		if err != nil {
			return fmt.Errorf("failed to read jd file: %w", err)
		}
		jdText = string(content)
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg.HistoryFile, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	service := history.NewService(store)
	record, err := service.Submit(ctx, cfg.Company, cfg.Role, jdText)
	if err != nil {
		return fmt.Errorf("failed to analyze job description: %w", err)
	}

	if analyzer.ShortJD(jdText) {
		fmt.Fprintf(os.Stderr, "Warning: the job description is very short; paste the full JD for a more accurate analysis.\n")
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(record)
	if cfg.Verbose {
		printer.PrintSkills(record)
		printer.PrintRoundMapping(record)
		printer.PrintActionNext(record)
	}

	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, []byte(export.Document(record)), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Report written to %s\n", analyzeOutputFile)
	}

	fmt.Fprintf(os.Stdout, "Analysis stored with ID %s\n", record.ID)

	return nil
}
