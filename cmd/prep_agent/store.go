package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/history"
)

// openStore builds a history store from flags and environment.
// A database URL wins over a file path; the file store is the default.
func openStore(ctx context.Context, historyFile, databaseURL string) (history.Store, func(), error) {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		store, err := history.ConnectPostgres(ctx, databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return store, store.Close, nil
	}

	if historyFile == "" {
		historyFile = os.Getenv("HISTORY_FILE")
	}
	if historyFile == "" {
		historyFile = config.DefaultHistoryFile
	}
	return history.NewFileStore(historyFile), func() {}, nil
}
