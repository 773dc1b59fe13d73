package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{"DECK", "MANAGER", "LOG_LEVEL", "LOG_FILE", "MARKDOWN_STYLE", "MOUSE"} {
		t.Setenv(EnvPrefix+"_"+k, "")
		os.Unsetenv(EnvPrefix + "_" + k)
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Deck)
	assert.False(t, cfg.Manager)
	assert.Equal(t, "", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "state", "alertdeck", "alertdeck.log"), cfg.LogFile)
	assert.Equal(t, "dark", cfg.MarkdownStyle)
	assert.True(t, cfg.Mouse)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	path := ConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
deck = "~/decks/prod.toml"
manager = true
log-level = "debug"
markdown-style = "Light"
`), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "decks", "prod.toml"), cfg.Deck)
	assert.True(t, cfg.Manager)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "light", cfg.MarkdownStyle)
}

func TestLoad_EnvOverridesFileAndFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	path := ConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`log-level = "info"`), 0o644))
	t.Setenv("ALERTDECK_LOG_LEVEL", "warn")
	t.Setenv("ALERTDECK_MARKDOWN_STYLE", "notty")

	v := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyMarkdownStyle, "dark", "")
	fs.Bool(KeyMouse, true, "")
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--mouse=false"}))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "notty", cfg.MarkdownStyle, "unchanged flag does not beat env")
	assert.False(t, cfg.Mouse)
}

func TestLoad_Rejects(t *testing.T) {
	isolate(t)
	t.Setenv("ALERTDECK_LOG_LEVEL", "loud")
	_, err := Load(New())
	assert.ErrorContains(t, err, "unknown log level")

	t.Setenv("ALERTDECK_LOG_LEVEL", "")
	t.Setenv("ALERTDECK_MARKDOWN_STYLE", "neon")
	_, err = Load(New())
	assert.ErrorContains(t, err, "unknown markdown style")
}

func TestLoad_BrokenConfigFile(t *testing.T) {
	isolate(t)
	path := ConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`deck = `), 0o644))

	_, err := Load(New())
	assert.ErrorContains(t, err, "read config")
}
