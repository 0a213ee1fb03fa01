package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/roster/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		require.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.Equal(t, "stderr", cfg.Output)
		assert.False(t, cfg.AddCaller)
	})

	t.Run("NewLoggerFromConfig writes json to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.log")

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "debug",
			Format: "json",
			Output: path,
		})
		logger.Info().Str("pesel", "123").Msg("test message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"message":"test message"`)
		assert.Contains(t, string(content), `"pesel":"123"`)
	})

	t.Run("Configure filters below the configured level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.log")

		logging.Configure(&logging.Config{
			Level:  "warn",
			Format: "json",
			Output: path,
		})
		logging.Debug().Msg("debug message")
		logging.Info().Msg("info message")
		logging.Warn().Msg("warn message")
		logging.Error().Msg("error message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		output := string(content)
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logging.NewLoggerFromConfig(&logging.Config{Level: "chatty", Output: "discard"})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)
	tl.Info().Msg("first")
	tl.Debug().Str("operation", "rewrite").Msg("second")

	assert.Len(t, tl.Lines(), 2)
	tl.AssertContains(t, `"operation":"rewrite"`)
	assert.False(t, tl.Contains("third"))
}

func TestCaptureLoggingForTest(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)
	logging.Info().Msg("captured")
	tl.AssertContains(t, "captured")
}
