package main

import (
	"context"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort        int
	serveHistoryFile string
	serveDatabaseURL string
	serveConfigFile  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyzing job descriptions and managing the stored history.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveHistoryFile, "history-file", "", "Path to the JSON history file (default jd_analyzer_history.json)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a JSON config file (flags win over its values)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		HistoryFile: serveHistoryFile,
		DatabaseURL: serveDatabaseURL,
		Port:        servePort,
	}
	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	store, _, err := openStore(context.Background(), cfg.HistoryFile, cfg.DatabaseURL)
	if err != nil {
		return err
	}

	// The server closes the store on shutdown.
	srv := server.New(server.Config{
		Port:  cfg.Port,
		Store: store,
	})

	return srv.Start()
}
