// Package menu provides the interactive menu command.
package menu

import (
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/application"
	"github.com/agentstation/roster/internal/cmd/output"
)

// NewCommand creates the menu command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		GroupID: "core",
		Short:   "Manage employees through an interactive menu",
		Long: `Menu starts an interactive session for adding, searching, listing,
filtering, editing and deleting employees. Press Ctrl+C or Ctrl+D, or choose 0,
to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			line := liner.NewLiner()
			defer line.Close() //nolint:errcheck
			line.SetCtrlCAborts(true)

			app.Logger().Debug().Str("path", client.Path()).Msg("Starting interactive menu")
			m := New(client, line, cmd.OutOrStdout(), output.Format(app.OutputFormat()))
			return m.Run(cmd.Context())
		},
	}
}
