package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/agentstation/roster/cmd/roster/cmd/add"
	"github.com/agentstation/roster/cmd/roster/cmd/edit"
	"github.com/agentstation/roster/cmd/roster/cmd/filter"
	"github.com/agentstation/roster/cmd/roster/cmd/list"
	"github.com/agentstation/roster/cmd/roster/cmd/menu"
	"github.com/agentstation/roster/cmd/roster/cmd/remove"
	"github.com/agentstation/roster/cmd/roster/cmd/search"
	"github.com/agentstation/roster/cmd/roster/cmd/seed"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(filter.NewCommand(a))
	rootCmd.AddCommand(edit.NewCommand(a))
	rootCmd.AddCommand(remove.NewCommand(a))
	rootCmd.AddCommand(menu.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(seed.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
	rootCmd.AddCommand(a.NewManCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the roster CLI.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(w, "roster %s\n", a.version); err != nil {
				return err
			}
			if !a.config.Verbose {
				return nil
			}
			_, err := fmt.Fprintf(w, "commit: %s\nbuilt: %s\nbuilt by: %s\ngo version: %s\nplatform: %s/%s\n",
				a.commit, a.date, a.builtBy, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}

// NewManCommand creates the hidden man command that prints the roff man page.
func (a *App) NewManCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Long:   `Generate the man page for the roster CLI.`,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			header := &doc.GenManHeader{
				Title:   "ROSTER",
				Section: "1",
				Source:  "roster " + a.version,
				Manual:  "roster Manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
