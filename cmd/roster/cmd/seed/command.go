// Package seed provides the seed command.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/cmd/application"
	"github.com/agentstation/roster/internal/fake"
	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/employees"
	"github.com/agentstation/roster/pkg/errors"
)

// NewCommand creates the seed command.
func NewCommand(app application.Application) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "seed",
		GroupID: "management",
		Short:   "Append randomly generated employees",
		Long: `Seed appends fake employees, useful for trying out the other commands.
Generated PESEL numbers that are already registered are regenerated.`,
		Example: `  roster seed --count 25`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return errors.NewValidationError("count", count, "must not be negative")
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			added, err := Seed(cmd.Context(), client, fake.New(), count, app.Logger())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %d employees to %s\n", added, client.Path())
			return err
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", constants.DefaultSeedCount, "number of employees to add")

	return cmd
}

// Seed appends count generated employees whose keys are not yet stored and
// returns how many were added.
func Seed(ctx context.Context, client roster.Client, gen *fake.Generator, count int, logger *zerolog.Logger) (int, error) {
	existing, err := client.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	idx := employees.NewIndex(existing)

	added := 0
	for i := 0; i < count; i++ {
		var e employees.Employee
		fresh := false
		for attempt := 0; attempt < constants.MaxSeedAttempts; attempt++ {
			e = gen.Employee()
			if !idx.Has(e.PESEL) {
				fresh = true
				break
			}
		}
		if !fresh {
			logger.Warn().Str("pesel", e.PESEL).Msg("Could not generate an unused PESEL, skipping")
			continue
		}

		if err := client.AddEmployee(ctx, e); err != nil {
			return added, err
		}
		idx.Add(e)
		added++
	}

	logger.Debug().Int("count", added).Msg("Seeded employees")
	return added, nil
}
