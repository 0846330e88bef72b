package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv(envTheme, "")
	t.Setenv(envLogFile, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDefaultPathUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(envTheme, "")
	t.Setenv(envLogFile, "")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tada", "config.yaml"), p)

	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte("theme: neon\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.True(t, cfg.Confirm)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(envTheme, "")
	t.Setenv(envLogFile, "")
	p := writeFile(t, "theme: mono\nconfirm: false\nlog_file: /tmp/tada.log\ngroup: true\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Config{Theme: "mono", Confirm: false, LogFile: "/tmp/tada.log", Group: true}, cfg)
}

func TestLoadKeepsDefaultsForOmittedKeys(t *testing.T) {
	t.Setenv(envTheme, "")
	t.Setenv(envLogFile, "")
	p := writeFile(t, "group: true\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Theme)
	assert.True(t, cfg.Confirm)
	assert.True(t, cfg.Group)
}

func TestEnvOverridesFile(t *testing.T) {
	p := writeFile(t, "theme: mono\n")
	t.Setenv(envTheme, "neon")
	t.Setenv(envLogFile, "/var/tmp/x.log")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "/var/tmp/x.log", cfg.LogFile)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Setenv(envTheme, "")
	p := writeFile(t, "theme: [unterminated\n")

	_, err := Load(p)
	assert.ErrorContains(t, err, "parse config")
}
