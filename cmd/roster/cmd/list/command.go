// Package list provides the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/application"
	"github.com/agentstation/roster/internal/cmd/output"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List all employees sorted by last name",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			list, err := client.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			app.Logger().Debug().Int("count", len(list)).Msg("Listing employees")
			return output.FormatEmployees(cmd.OutOrStdout(), list, output.Format(app.OutputFormat()))
		},
	}
}
