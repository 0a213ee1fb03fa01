// Package edit provides the edit command.
package edit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/application"
	"github.com/agentstation/roster/internal/cmd/cmdutil"
	"github.com/agentstation/roster/internal/cmd/output"
)

// NewCommand creates the edit command.
func NewCommand(app application.Application) *cobra.Command {
	var flags *cmdutil.EmployeeFlags

	cmd := &cobra.Command{
		Use:     "edit <pesel>",
		GroupID: "core",
		Aliases: []string{"update"},
		Short:   "Change fields of the employee with a PESEL number",
		Long: `Edit changes the fields given as flags and keeps every other field. An empty
flag value also keeps the current value. The PESEL number itself cannot change.`,
		Example: `  roster edit 00210112345 --city Krakow --street "Long 5"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pesel := args[0]

			updates, err := flags.Updates(cmd)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			_, found, err := client.SearchByPESEL(ctx, pesel)
			if err != nil {
				return err
			}
			updated, err := client.EditEmployee(ctx, pesel, updates)
			if err != nil {
				return err
			}

			if !found {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Employee with PESEL %s not found\n", pesel)
				return err
			}
			return output.FormatEmployee(cmd.OutOrStdout(), updated, output.Format(app.OutputFormat()))
		},
	}

	flags = cmdutil.AddEmployeeFlags(cmd, false)

	return cmd
}
