// Package cli defines the cobra command tree for vlog.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/visitor-log/internal/db"
	"github.com/evcraddock/visitor-log/internal/visitor"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vlog",
		Short:         "Track visitors on premises",
		Long:          "A visitor log. Check visitors in and out, browse and filter the log, and export it as a PDF, via CLI or a local web page.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.config/vlog/visitors.db)")

	root.AddCommand(
		newCheckinCmd(),
		newCheckoutCmd(),
		newListCmd(),
		newExportCmd(),
		newResetCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// openService opens the visitor store at the configured path and loads the
// in-memory view. When the database cannot be opened the command degrades
// to an empty in-memory store so it still runs; records will not survive
// the process.
func openService() (*visitor.Service, func(), error) {
	path, err := dbPath()
	if err != nil {
		return nil, nil, err
	}

	repo, err := visitor.Open(path)
	if err != nil {
		slog.Warn("visitor database unavailable; records will not be saved",
			"path", path, "error", err)
		return visitor.NewService(visitor.NewMemStore()), func() {}, nil
	}

	svc := visitor.NewService(repo)
	if err := svc.Load(); err != nil {
		closeStore(repo)
		return nil, nil, err
	}

	return svc, func() { closeStore(repo) }, nil
}

// dbPath returns the database path from the --db flag, env var, config
// file, or default, in that order.
func dbPath() (string, error) {
	if flagDB != "" {
		return flagDB, nil
	}
	if v := os.Getenv("VLOG_DB"); v != "" {
		return v, nil
	}
	cfg, err := loadConfig()
	if err == nil && cfg.DatabasePath != "" {
		return cfg.DatabasePath, nil
	}
	return db.DefaultPath()
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeStore closes the repository, logging any error to stderr.
func closeStore(repo *visitor.Repository) {
	if err := repo.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
