// Package filter provides the filter command.
package filter

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/application"
	"github.com/agentstation/roster/internal/cmd/output"
)

// NewCommand creates the filter command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "filter <last-name-fragment>",
		GroupID: "core",
		Short:   "List employees whose last name contains a fragment",
		Long: `Filter lists employees whose last name contains the given fragment,
ignoring case. Employees are shown in storage order.`,
		Example: `  roster filter sm     # matches Smith and BLACKSMITH`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			list, err := client.FilterByLastName(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			app.Logger().Debug().Str("fragment", args[0]).Int("count", len(list)).Msg("Filtered employees")
			return output.FormatEmployees(cmd.OutOrStdout(), list, output.Format(app.OutputFormat()))
		},
	}
}
