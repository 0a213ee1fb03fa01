package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Storage configuration
	File   string
	Atomic bool
	Strict bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (ROSTER_FILE, ROSTER_STRICT, ...)
// 3. .env and .env.local files
// 4. Config file (configFile, or .roster.yaml in $HOME or the working directory)
// 5. Defaults
//
// A missing config file is not an error; an explicitly named one that cannot
// be read is.
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("file", constants.DefaultStoreFile)
	v.SetDefault("atomic", true)
	v.SetDefault("strict", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "reading "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)

		// Read config file (ignore error if not found)
		_ = v.ReadInConfig()
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		File:   v.GetString("file"),
		Atomic: v.GetBool("atomic"),
		Strict: v.GetBool("strict"),

		// Logging keeps the unprefixed LOG_* variables
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// UpdateFromFlags copies the values of every flag the user set on the
// command line into the configuration. Flags left at their defaults do not
// override values loaded from files or the environment.
func (c *Config) UpdateFromFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		c.Verbose = mustGetBool(cmd, "verbose")
	}
	if flags.Changed("quiet") {
		c.Quiet = mustGetBool(cmd, "quiet")
	}
	if flags.Changed("no-color") {
		c.NoColor = mustGetBool(cmd, "no-color")
	}
	if flags.Changed("format") {
		c.Format = mustGetString(cmd, "format")
	}
	if flags.Changed("log-level") {
		c.LogLevel = mustGetString(cmd, "log-level")
	}
	if flags.Changed("file") {
		c.File = mustGetString(cmd, "file")
	}
	if flags.Changed("atomic") {
		c.Atomic = mustGetBool(cmd, "atomic")
	}
	if flags.Changed("strict") {
		c.Strict = mustGetBool(cmd, "strict")
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment win, and .env.local is read
// before .env so its values take precedence.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
