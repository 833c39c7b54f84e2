package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "doggallery")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte("theme = \"Slate\"\ncolumns = 2\n"), 0o644))

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Slate", p.Theme)
	assert.Equal(t, 2, p.Columns)
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	require.NoError(t, Save(path, Prefs{Theme: "Kanagawa", Columns: 3}))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Prefs{Theme: "Kanagawa", Columns: 3}, loaded)
}

func TestLoad_NormalizesOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"  \"\ncolumns = 7\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, defaultTheme, p.Theme)
	assert.Zero(t, p.Columns)
}

func TestLoad_InvalidTOMLFallsBackWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid toml {{{\n"), 0o644))

	p, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse prefs")
	assert.Equal(t, Default(), p)
}

func TestNextColumns(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 0},
		{-4, 0},
		{9, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NextColumns(tc.in), "NextColumns(%d)", tc.in)
	}
}
