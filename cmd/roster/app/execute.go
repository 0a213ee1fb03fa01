package app

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/roster/internal/cmd/constants"
	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/pkg/errors"
)

// Execute runs the roster CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "roster",
		Short:   "Employee register backed by a CSV file",
		Version: a.version,
		Long: `Roster keeps a register of employees in a single CSV file.

Employees are identified by their PESEL number. Records can be added,
looked up, listed, filtered by last name, edited and deleted, either with
one-shot commands or through the interactive menu.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	if a.out != nil {
		rootCmd.SetOut(a.out)
	}
	if a.err != nil {
		rootCmd.SetErr(a.err)
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	// Global flags. Values are copied into the config in setupCommand, and
	// only for flags the user actually set.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.roster.yaml)")
	flags.StringP("file", "f", a.config.File, "path of the employee CSV file")
	flags.Bool("atomic", a.config.Atomic, "rewrite the file through a temporary file and rename")
	flags.Bool("strict", a.config.Strict, "fail when deleting or editing an unknown PESEL")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: "+strings.Join(constants.Formats, ", "))
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("roster {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		config, err := LoadConfig(mustGetString(cmd, "config"))
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(cmd)

	if a.config.Format != "" {
		if _, err := output.ParseFormat(a.config.Format); err != nil {
			return err
		}
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	// Drop a client built from the pre-flag configuration
	a.mu.Lock()
	if !a.injected {
		a.client = nil
	}
	a.mu.Unlock()

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		msg := "Error: " + err.Error() + "\n"
		if hint := hintFor(err); hint != "" {
			msg += "Hint: " + hint + "\n"
		}
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(msg)
		os.Exit(1)
	}
}

// hintFor suggests a next step for the error classes an operator can act on.
func hintFor(err error) string {
	switch {
	case errors.IsCanceled(err):
		return "the operation was interrupted before touching the storage file"
	case errors.IsMalformedData(err):
		return "the storage file does not follow the employee schema; fix the reported line or point --file elsewhere"
	case errors.IsStorageUnavailable(err):
		return "check that --file points to a readable and writable location"
	case errors.IsAlreadyExists(err):
		return "use 'roster edit <pesel>' to change an existing employee"
	case errors.IsValidationError(err):
		return "see 'roster <command> --help' for the expected flags"
	case errors.IsNotFound(err):
		return "use 'roster list' to see stored PESEL numbers"
	default:
		return ""
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
