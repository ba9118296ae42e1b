package cmd

import (
	"fmt"
	"log/slog"

	"item-notes/config"
	"item-notes/config/setup"
	"item-notes/models"

	"github.com/spf13/cobra"
)

var (
	superuserEmail    string
	superuserPassword string
)

var createSuperuserCmd = &cobra.Command{
	Use:   "create-superuser",
	Short: "Create a superuser account",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		db, err := setup.InitDatabase(cmd.Context(), config.AppConfig.DBPath, logger)
		if err != nil {
			return err
		}

		application := setup.InitApp(db, logger)
		defer setup.Shutdown(application, db, logger)

		in := models.UserCreate{
			Email:       superuserEmail,
			Password:    superuserPassword,
			IsSuperuser: true,
		}
		if err := application.Validator.Validate(&in); err != nil {
			return fmt.Errorf("invalid superuser: %w", err)
		}

		user, err := application.UserService.Create(cmd.Context(), in)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created superuser %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	createSuperuserCmd.Flags().StringVar(&superuserEmail, "email", "", "Superuser email")
	createSuperuserCmd.Flags().StringVar(&superuserPassword, "password", "", "Superuser password")
	_ = createSuperuserCmd.MarkFlagRequired("email")
	_ = createSuperuserCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createSuperuserCmd)
}

