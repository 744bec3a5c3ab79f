package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	{
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "#root", cfg.MountSelector)
	assert.Empty(t, cfg.ShellPath)
	assert.False(t, cfg.Fragment)
	assert.Equal(t, zapcore.InfoLevel, cfg.Level())
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mount_selector: \"#app\"\nfragment: true\nlog_level: warn\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "#app", cfg.MountSelector)
	assert.True(t, cfg.Fragment)
	assert.Equal(t, zapcore.WarnLevel, cfg.Level())

	t.Setenv("POLYTEXT_LOG_LEVEL", "debug")
	cfg, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("mount-selector", "#root", "")
	flags.String("output-path", "", "")
	require.NoError(t, flags.Parse([]string{"--output-path", "out.html"}))

	cfg, err = Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "out.html", cfg.OutputPath)
	assert.Equal(t, "#app", cfg.MountSelector, "unset flags must not override the file")
}

func TestLoad_WorkingDirectoryFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "polytext.yaml"), []byte("shell_path: index.html\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "index.html", cfg.ShellPath)
}

func TestLoad_Invalid(t *testing.T) {
	dir := chdirTemp(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err)

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mount_selector: root\n"), 0o644))
	_, err = Load(path, nil)
	assert.ErrorContains(t, err, "invalid config")

	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))
	_, err = Load(path, nil)
	assert.ErrorContains(t, err, "invalid config")
}
