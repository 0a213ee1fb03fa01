// Package remove provides the delete command.
package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/application"
)

// NewCommand creates the delete command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <pesel>",
		GroupID: "core",
		Aliases: []string{"remove", "rm"},
		Short:   "Delete the employee with a PESEL number",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pesel := args[0]

			client, err := app.Client()
			if err != nil {
				return err
			}

			e, found, err := client.SearchByPESEL(ctx, pesel)
			if err != nil {
				return err
			}
			if err := client.DeleteEmployee(ctx, pesel); err != nil {
				return err
			}

			if !found {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Employee with PESEL %s not found\n", pesel)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted employee %s (PESEL %s)\n", e.FullName(), pesel)
			return err
		},
	}
}
