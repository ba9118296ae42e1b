package cmd

import (
	"fmt"
	"log/slog"

	"item-notes/config"
	"item-notes/config/setup"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := setup.InitDatabase(cmd.Context(), config.AppConfig.DBPath, slog.Default())
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		return db.Close()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
