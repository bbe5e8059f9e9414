package edit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chennai-a11y/prefsync/internal/client"
	"github.com/chennai-a11y/prefsync/internal/interfaces/cli/clientenv"
	"github.com/chennai-a11y/prefsync/internal/presentation"
)

var (
	env         string
	assignments []string
	userID      string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change settings the way the settings page does",
		Long: `Fetch the current settings, overwrite the given fields, save them to the
server and share them with the other tabs of the configured origin.

Values are JSON; anything that is not valid JSON is sent as a string:

  prefsync edit --set darkMode=true --set fontSize=large`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringArrayVar(&assignments, "set", nil, "field=value to change (repeatable)")
	cmd.Flags().StringVar(&userID, "user", "", "User id sent in the userId cookie (default: client.user_id)")
	cmd.MarkFlagRequired("set")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	changes, err := parseAssignments(assignments)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	e, err := clientenv.Open(ctx, env, false)
	if err != nil {
		return err
	}
	defer e.Close()

	id := userID
	if id == "" {
		id = e.Config.Client.UserID
	}

	api := client.New(e.Config.Client.BaseURL, id, e.Logger)
	editor := client.NewEditor(api, presentation.NewTab(e.Cache, e.Logger))

	ack, err := editor.Update(ctx, changes)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ack.Message)
	return nil
}

// parseAssignments turns field=value pairs into JSON members.
func parseAssignments(pairs []string) (map[string]json.RawMessage, error) {
	changes := make(map[string]json.RawMessage, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q, want field=value", pair)
		}

		if json.Valid([]byte(value)) {
			changes[name] = json.RawMessage(value)
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		changes[name] = encoded
	}
	return changes, nil
}
