// Package cli implements the cub3rctl command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/cub3r/internal/config"
	"github.com/Faultbox/cub3r/internal/logger"
	"github.com/Faultbox/cub3r/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath      string
	configPath  string
	verbose     bool
	plainOutput bool

	// cfg is loaded before any command runs.
	cfg = config.Default()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cub3rctl",
	Short: "Terminal frontend for the cub3r puzzle engine",
	Long: `cub3rctl drives the cub3r cube engine from the terminal.

Apply move sequences headlessly, play interactively in a TUI, and browse
the sessions recorded by either frontend.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: <config dir>/cub3r.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "Print colour letters instead of coloured blocks")
}

// setup loads the config and starts the logger. The play command owns
// the terminal, so it only logs to the configured file.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = loaded

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	console := cmd.Name() != "play"
	return logger.InitWithFileConfig(level, fileCfg, console)
}

// openDB opens the session database from the flag or the config.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" {
		path = cfg.DBPath()
	}
	return storage.Open(path)
}
