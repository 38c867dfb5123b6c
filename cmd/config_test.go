package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joescharf/ghissues/internal/output"
)

// testEnv sets up isolated config dir, viper, and output for testing.
// It returns the config dir and the buffer capturing ui.Out.
func testEnv(t *testing.T) (string, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()

	// Override configDirFunc for tests
	origFunc := configDirFunc
	configDirFunc = func() (string, error) { return dir, nil }
	t.Cleanup(func() { configDirFunc = origFunc })

	// Reset viper
	viper.Reset()
	viper.SetDefault("github.api_url", "https://api.github.com")
	viper.SetDefault("github.user_agent", "ghissues")
	viper.SetDefault("default_count", 4)

	// Initialize output against buffers
	out := &bytes.Buffer{}
	ui = &output.UI{Out: out, ErrOut: &bytes.Buffer{}}

	return dir, out
}

func TestConfigInit_CreatesFile(t *testing.T) {
	dir, _ := testEnv(t)

	err := configInitRun()
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, "config.yaml")
	_, err = os.Stat(cfgPath)
	assert.NoError(t, err, "config file should exist")

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ghissues configuration")
	assert.Contains(t, string(data), "api_url")
	assert.Contains(t, string(data), "default_count: 4")
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	dir, _ := testEnv(t)

	// Create existing file
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("existing"), 0644))

	configForce = false
	err := configInitRun()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigInit_ForceOverwrite(t *testing.T) {
	dir, _ := testEnv(t)

	// Create existing file
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("existing"), 0644))

	configForce = true
	err := configInitRun()
	require.NoError(t, err)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ghissues configuration")
}

func TestConfigShow_Defaults(t *testing.T) {
	_, out := testEnv(t)

	err := configShowRun()
	require.NoError(t, err)

	result := out.String()
	assert.Contains(t, result, "github.api_url")
	assert.Contains(t, result, "https://api.github.com")
	assert.Contains(t, result, "(default)")
}

func TestConfigShow_FileSource(t *testing.T) {
	dir, out := testEnv(t)

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("default_count: 7\n"), 0644))
	viper.SetConfigFile(cfgPath)
	require.NoError(t, viper.ReadInConfig())

	err := configShowRun()
	require.NoError(t, err)

	result := out.String()
	assert.Contains(t, result, "7")
	assert.Contains(t, result, "(file)")
}

func TestConfigShow_EnvSource(t *testing.T) {
	_, out := testEnv(t)
	t.Setenv("GHISSUES_DEFAULT_COUNT", "12")

	err := configShowRun()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(env: GHISSUES_DEFAULT_COUNT)")
}

func TestConfigEdit_NoEditor(t *testing.T) {
	testEnv(t)
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	err := configEditRun()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$EDITOR")
}
