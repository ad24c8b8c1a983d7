package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, dir, cfg.StateDir())
}

func TestLoadFrom_File(t *testing.T) {
	dir := t.TempDir()
	content := "api_url: https://quimidocs.example.com/api\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://quimidocs.example.com/api", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "api_url: https://from-file.example.com/api\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	t.Setenv(EnvAPIURL, "https://from-env.example.com/api")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example.com/api", cfg.APIURL)
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("api_url: [broken"), 0o600))

	_, err := LoadFrom(dir)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	cfg.APIURL = "https://saved.example.com/api"
	require.NoError(t, cfg.Save())

	reloaded, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://saved.example.com/api", reloaded.APIURL)
}

func TestDefaultStateDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvStateDir, "/tmp/quimidocs-test-state")
	assert.Equal(t, "/tmp/quimidocs-test-state", DefaultStateDir())
}
