package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/doggallery/internal/dogapi"
	"github.com/five82/doggallery/internal/logger"
	"github.com/five82/doggallery/internal/prefs"
	"github.com/five82/doggallery/internal/state"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewSession_WiresConfigAndPrefs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfgPath := filepath.Join(dir, "config.toml")
	writeFile(t, cfgPath, `
[api]
base_url = "http://127.0.0.1:9999"
timeout = "3s"

[log]
level = "warn"
file = "`+filepath.Join(dir, "logs", "gallery.log")+`"
`)
	prefsPath := filepath.Join(dir, "prefs.toml")
	require.NoError(t, prefs.Save(prefsPath, prefs.Prefs{Theme: "Slate", Columns: 2}))

	s, err := newSession(context.Background(), Options{
		ConfigPath: cfgPath,
		PrefsPath:  prefsPath,
		LogLevel:   "debug",
		Version:    "1.2.3",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.log.Close() })

	assert.Equal(t, "http://127.0.0.1:9999", s.cfg.API.BaseURL)
	assert.Equal(t, "debug", s.cfg.Log.Level)
	assert.Equal(t, 3*time.Second, s.ui.FetchTimeout)
	assert.Equal(t, "Slate", s.ui.ThemeName)
	assert.Equal(t, 2, s.ui.Columns)
	assert.Equal(t, prefsPath, s.ui.PrefsPath)
	assert.Same(t, s.store, s.ui.Store)
	assert.Same(t, s.log, logger.FromContext(s.ui.Context))

	client, ok := s.ui.Fetcher.(*dogapi.Client)
	require.True(t, ok)
	assert.Same(t, s.client, client)
	assert.Equal(t, "http://127.0.0.1:9999", s.client.BaseURL())
}

func TestNewSession_ThemeFlagOverridesPrefs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	prefsPath := filepath.Join(dir, "prefs.toml")
	require.NoError(t, prefs.Save(prefsPath, prefs.Prefs{Theme: "Slate"}))

	s, err := newSession(context.Background(), Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		PrefsPath:  prefsPath,
		ThemeName:  "Kanagawa",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.log.Close() })

	assert.Equal(t, "Kanagawa", s.ui.ThemeName)
	assert.Equal(t, dogapi.DefaultBaseURL, s.cfg.API.BaseURL)
}

func TestNewSession_BrokenPrefsFallBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	prefsPath := filepath.Join(dir, "prefs.toml")
	writeFile(t, prefsPath, "not valid toml {{{")

	s, err := newSession(context.Background(), Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		PrefsPath:  prefsPath,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.log.Close() })

	assert.Equal(t, prefs.Default().Theme, s.ui.ThemeName)
	assert.Zero(t, s.ui.Columns)
}

func TestNewSession_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfgPath := filepath.Join(dir, "config.toml")
	writeFile(t, cfgPath, "[api\nbase_url = ")

	_, err := newSession(context.Background(), Options{ConfigPath: cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestNewSession_InvalidBaseURL(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfgPath := filepath.Join(dir, "config.toml")
	writeFile(t, cfgPath, "[api]\nbase_url = \"http://\"\n")

	_, err := newSession(context.Background(), Options{ConfigPath: cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init dog api client")
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "custom/1", userAgent(" custom/1 ", "2.0.0"))
	assert.Equal(t, "doggallery/2.0.0", userAgent("", "2.0.0"))
	assert.Equal(t, "doggallery/dev", userAgent("", ""))
}

func TestWatchShutdown_ClosesStoreOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := &state.Store{}
	gen := store.Begin()

	watchShutdown(ctx, store, logger.Discard())
	assert.False(t, store.Closed())

	cancel()
	require.Eventually(t, store.Closed, time.Second, 5*time.Millisecond)

	assert.False(t, store.Resolve(gen, dogapi.ImageList{"https://a/1.jpg"}, nil))
	assert.Equal(t, state.PhaseLoading, store.Snapshot().Phase)
}
