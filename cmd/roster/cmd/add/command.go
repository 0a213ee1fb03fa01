// Package add provides the add command.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/roster/cmd/application"
	"github.com/agentstation/roster/internal/cmd/cmdutil"
	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/pkg/employees"
)

// NewCommand creates the add command.
func NewCommand(app application.Application) *cobra.Command {
	var flags *cmdutil.EmployeeFlags

	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "core",
		Short:   "Add an employee",
		Long: `Add appends a new employee to the storage file. The PESEL number must not
already be registered.`,
		Example: `  roster add --first-name Jan --last-name Kowalski --birthday 2000-01-01 \
    --pesel 00210112345 --country PL --city Warsaw --street Main --postal-code 00-000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := flags.Employee()
			if err := employees.Validate(e); err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			if err := client.AddEmployee(cmd.Context(), e); err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return output.FormatEmployee(cmd.OutOrStdout(), e, format)
			default:
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Added employee %s (PESEL %s)\n", e.FullName(), e.PESEL)
				return err
			}
		},
	}

	flags = cmdutil.AddEmployeeFlags(cmd, true)
	_ = cmd.MarkFlagRequired("pesel")

	return cmd
}
