package tab

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chennai-a11y/prefsync/internal/interfaces/cli/clientenv"
	"github.com/chennai-a11y/prefsync/internal/presentation"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tab",
		Short: "Run a headless page that follows the saved settings",
		Long:  `Open a page for the configured origin, apply the cached settings and re-apply them whenever another tab saves.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := clientenv.Open(ctx, env, true)
	if err != nil {
		return err
	}
	defer e.Close()

	t := presentation.NewTab(e.Cache, e.Logger)
	log := e.Logger.With("tab", t.ID(), "origin", e.Config.Client.Origin)

	t.OnApply(func(s presentation.State) {
		log.Infow("settings applied",
			"classes", s.Classes,
			"font_size", s.FontSize,
			"lang", s.Lang,
		)
	})

	if err := t.Load(ctx); err != nil {
		return err
	}

	log.Infow("tab open, waiting for settings changes")
	if err := t.Run(ctx); err != nil {
		return err
	}
	log.Infow("tab closed")
	return nil
}
