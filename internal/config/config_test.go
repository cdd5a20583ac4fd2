package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		// Then: the defaults are used
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel: "warn",
			Display: Display{
				HumanMarker:    "X",
				OpponentMarker: "O",
				EmptyMarker:    "-",
				SeparatorWidth: 39,
			},
		}, conf)
	})

	t.Run("File values override defaults", func(t *testing.T) {
		// Given: a config file setting some values
		path := writeConfig(t, "log-level: debug\ndisplay:\n  human-marker: \"#\"\n")

		// When: loading it
		conf, err := Load(path)

		// Then: set values are read and the rest keep their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "#", conf.Display.HumanMarker)
		assert.Equal(t, "O", conf.Display.OpponentMarker)
		assert.Equal(t, 39, conf.Display.SeparatorWidth)
	})

	t.Run("Unknown log level is rejected", func(t *testing.T) {
		path := writeConfig(t, "log-level: verbose\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("Markers must be distinct single characters", func(t *testing.T) {
		for _, content := range []string{
			"display:\n  human-marker: \"O\"\n",
			"display:\n  empty-marker: \"..\"\n",
		} {
			path := writeConfig(t, content)

			_, err := Load(path)

			require.Error(t, err, content)
		}
	})

	t.Run("MustLoad panics on invalid config", func(t *testing.T) {
		path := writeConfig(t, "log-level: verbose\n")

		require.Panics(t, func() {
			MustLoad(path)
		})
	})
}
