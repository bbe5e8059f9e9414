package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chennai-a11y/prefsync/internal/interfaces/cli/edit"
	"github.com/chennai-a11y/prefsync/internal/interfaces/cli/migrate"
	"github.com/chennai-a11y/prefsync/internal/interfaces/cli/server"
	"github.com/chennai-a11y/prefsync/internal/interfaces/cli/tab"
)

// @title prefsync API
// @version 1.0
// @description Per-user accessibility settings and UI translations.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "prefsync",
		Short: "prefsync - accessibility settings sync",
		Long:  `prefsync stores per-user accessibility settings, serves UI translations and keeps open tabs in step with the latest saved settings.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		tab.NewCommand(),
		edit.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
