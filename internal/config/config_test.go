package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
name = "testworld"

[game]
tick_rate = "50ms"
players = 2
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "testworld", cfg.Server.Name)
	assert.Equal(t, 50*time.Millisecond, cfg.Game.TickRate)
	assert.Equal(t, 2, cfg.Game.Players)
	assert.Equal(t, 4, cfg.Game.AIInterval, "default preserved")
	assert.Equal(t, "scripts", cfg.Game.ScriptsDir, "default preserved")
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotZero(t, cfg.Server.StartTime)
}

func TestLoadRejectsZeroPlayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[game]
players = 0
`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
