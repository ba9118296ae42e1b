package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"item-notes/config"
	"item-notes/config/setup"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()
		cfg := config.AppConfig

		db, err := setup.InitDatabase(cmd.Context(), cfg.DBPath, logger)
		if err != nil {
			return fmt.Errorf("init database: %w", err)
		}

		application := setup.InitApp(db, logger)
		defer setup.Shutdown(application, db, logger)

		if err := setup.EnsureFirstSuperuser(cmd.Context(), application, logger); err != nil {
			return fmt.Errorf("create first superuser: %w", err)
		}

		fiberApp := setup.NewFiberApp(logger)
		setup.ApplyMiddleware(fiberApp, application, logger)
		setup.RegisterRoutes(fiberApp, application)

		logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)

		serverErr := make(chan error, 1)
		go func() {
			serverErr <- fiberApp.Listen(":" + cfg.Port)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-serverErr:
			return fmt.Errorf("server failed: %w", err)
		case <-quit:
		}

		logger.Info("shutting down server gracefully")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := fiberApp.ShutdownWithContext(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}

		logger.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
