// Package cmd wires the item-notes command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"item-notes/config"
	"item-notes/config/setup"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	dbPath  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "item-notes",
	Short: "Multi-user items and notes service",
	Long: `item-notes serves a REST API and a small web UI for managing
categorised items and pinnable notes, backed by SQLite.

Running it without a subcommand starts the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if verbose {
			config.AppConfig.LogLevel = "debug"
		}
		if dbPath != "" {
			config.AppConfig.DBPath = dbPath
		}

		slog.SetDefault(setup.NewLogger(os.Stdout, config.AppConfig))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides DB_PATH)")
}
