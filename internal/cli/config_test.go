package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("WAYPOINT_CONFIG", "")
	t.Setenv("WAYPOINT_LOG_LEVEL", "")
	t.Setenv("WAYPOINT_ROOT", "")
	t.Setenv("WAYPOINT_PATH_CONFIG", "")
	t.Setenv("WAYPOINT_LANGUAGE", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/", cfg.Root)
	assert.Equal(t, "en", cfg.Language)
	assert.Empty(t, cfg.PathConfig)
}

func TestLoadConfigFile(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
root = "https://example.com/"
path_config = "path-configuration.json"
language = "es"

[log]
level = "debug"

[theme]
accent = "#FF8800"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/", cfg.Root)
	assert.Equal(t, "path-configuration.json", cfg.PathConfig)
	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "#FF8800", cfg.Theme.Accent)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`root = "/file"`), 0o644))
	t.Setenv("WAYPOINT_CONFIG", path)
	t.Setenv("WAYPOINT_ROOT", "/env")
	t.Setenv("WAYPOINT_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/env", cfg.Root)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	isolateConfig(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
