package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)

	assert.Equal(t, defaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, defaultTimeout, cfg.API.Timeout)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.Equal(t, defaultLogFormat, cfg.Log.Format)

	wantLog, err := expandPath(defaultLogFile)
	require.NoError(t, err)
	assert.Equal(t, wantLog, cfg.Log.File)
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
base_url = "  http://127.0.0.1:9999  "
timeout = "3s"
user_agent = " doggallery/ci "

[log]
level = " DEBUG "
format = "json"
file = "~/logs/gallery.log"
max_backups = 9
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9999", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "doggallery/ci", cfg.API.UserAgent)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, filepath.Join(home, "logs", "gallery.log"), cfg.Log.File)
	assert.Equal(t, 9, cfg.Log.MaxBackups)
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
base_url = "   "

[log]
level = ""
file = ""
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, defaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.True(t, strings.HasSuffix(cfg.Log.File, filepath.FromSlash("doggallery/doggallery.log")))
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DOGGALLERY_API_BASE_URL", "http://mirror.local")
	t.Setenv("DOGGALLERY_API_TIMEOUT", "750ms")
	t.Setenv("DOGGALLERY_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
base_url = "http://from-file"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://mirror.local", cfg.API.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.API.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`base_url = [`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a/b"), got)
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	_, err := expandPath("   ")
	assert.Error(t, err)
}
