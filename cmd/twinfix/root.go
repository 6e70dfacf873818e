package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ArturStory/Twin-Fix-sub002/internal/logging"
	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
	"github.com/ArturStory/Twin-Fix-sub002/internal/store"
)

var (
	cfgFile  string
	dbPath   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "twinfix",
	Short: "Twin Fix - maintenance issue tracker",
	Long: `Twin Fix tracks maintenance issues for a facility: reported problems,
their status lifecycle, discussion, attached images, and fix statistics,
all backed by a local SQLite database.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default ~/.config/twinfix/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"SQLite database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: debug, info, warn, or error (overrides config)")
}

// loadAppConfig resolves the effective configuration.
// Precedence: CLI flag > config file > built-in default.
func loadAppConfig() (*model.AppConfig, error) {
	path := cfgFile
	if path == "" {
		path = model.DefaultConfigPath()
	}
	cfg, err := model.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// openStore opens the configured database, creating its directory on
// first use. The caller owns the returned store and must Close it.
func openStore() (*store.SQLiteStore, *slog.Logger, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	if dir := filepath.Dir(cfg.Database.Path); dir != "." && cfg.Database.Path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating database directory %s: %w", dir, err)
		}
	}

	s, err := store.NewSQLiteStore(cfg.Database.Path, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, logger, nil
}

// parseID parses a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// int64PtrIfChanged returns a pointer to the flag value only when the
// flag was given on the command line.
func int64PtrIfChanged(cmd *cobra.Command, name string, v int64) *int64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

// float64PtrIfChanged returns a pointer to the flag value only when the
// flag was given on the command line.
func float64PtrIfChanged(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

// stringPtrIfChanged returns a pointer to the flag value only when the
// flag was given on the command line.
func stringPtrIfChanged(cmd *cobra.Command, name string, v string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
