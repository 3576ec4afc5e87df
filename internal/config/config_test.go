package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `prompt: "> "
banner: false
color: false
history_size: 25
verbose: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "> ", cfg.Prompt)
	assert.False(t, cfg.Banner)
	assert.False(t, cfg.Color)
	assert.Equal(t, 25, cfg.HistorySize)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MinimalYAMLKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("verbose: true\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Banner)
	assert.True(t, cfg.Color)
	assert.Equal(t, vfsh.DefaultPrompt, cfg.Prompt)
	assert.Equal(t, vfsh.DefaultHistorySize, cfg.HistorySize)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, vfsh.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestLoad_NegativeHistory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("history_size: -1\n"), 0644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, vfsh.ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvPrompt:   "% ",
		EnvNoBanner: "1",
		EnvNoColor:  "yes",
		EnvVerbose:  "true",
		EnvHistory:  "7",
	}
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, "% ", cfg.Prompt)
	assert.False(t, cfg.Banner)
	assert.False(t, cfg.Color)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 7, cfg.HistorySize)
}

func TestApplyEnv_EmptyEnvironmentChangesNothing(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(func(string) string { return "" }))
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv_BadHistory(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) string {
		if k == EnvHistory {
			return "lots"
		}
		return ""
	})
	assert.ErrorIs(t, err, vfsh.ErrInvalidConfig)
}

func TestResolve_ExplicitPathMissing(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestResolve_ExplicitPath(t *testing.T) {
	t.Setenv(EnvPrompt, "")
	t.Setenv(EnvNoBanner, "")
	t.Setenv(EnvNoColor, "")
	t.Setenv(EnvVerbose, "")
	t.Setenv(EnvHistory, "")

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"# \"\n"), 0644))

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "# ", cfg.Prompt)
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("banner: true\n"), 0644))
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvNoBanner, "1")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.False(t, cfg.Banner)
}
