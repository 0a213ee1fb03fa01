// Package constants provides shared constants for CLI commands.
package constants

// Output format constants used throughout the CLI.
const (
	// FormatTable is the default table output format.
	FormatTable = "table"

	// FormatWide is a table with the address split into its parts.
	FormatWide = "wide"

	// FormatJSON outputs data as JSON.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"

	// FormatMarkdown outputs tables as GitHub-flavored markdown.
	FormatMarkdown = "markdown"
)

// Formats lists every accepted --format value.
var Formats = []string{FormatTable, FormatWide, FormatJSON, FormatYAML, FormatMarkdown}
