// Package search provides the search command.
package search

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/application"
	"github.com/agentstation/roster/internal/cmd/output"
)

// NewCommand creates the search command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "search <pesel>",
		GroupID: "core",
		Aliases: []string{"get", "show"},
		Short:   "Show the employee with a PESEL number",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			e, found, err := client.SearchByPESEL(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !found {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Employee with PESEL %s not found\n", args[0])
				return err
			}

			return output.FormatEmployee(cmd.OutOrStdout(), e, output.Format(app.OutputFormat()))
		},
	}
}
