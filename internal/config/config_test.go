package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads log level and moves", func(t *testing.T) {
		// Given: a config file with a level and a script
		path := writeConfig(t, `
log-level: debug
game:
  moves:
    - {mark: X, x: 1, y: 1}
    - {mark: O, x: 2, y: 2}
`)

		// When: loading it
		conf, err := Load(path)

		// Then: both sections are decoded
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, []entity.Move{
			{Mark: entity.PlayerX, X: 1, Y: 1},
			{Mark: entity.PlayerO, X: 2, Y: 2},
		}, conf.Game.Moves)
	})

	t.Run("Applies the default log level", func(t *testing.T) {
		// Given: a config file without a level
		path := writeConfig(t, "game:\n  moves: []\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the level falls back to info
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file level and an environment level
		path := writeConfig(t, "log-level: info\n")
		t.Setenv("LOG_LEVEL", "debug")

		// When: loading it
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Missing file returns an error", func(t *testing.T) {
		// When: loading a file that does not exist
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: an error is returned
		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	// Given: an unreadable path
	path := filepath.Join(t.TempDir(), "missing.yml")

	// Then: MustLoad panics
	assert.Panics(t, func() { MustLoad(path) })
}
