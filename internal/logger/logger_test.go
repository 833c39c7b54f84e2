package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&Config{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	log.Component("fetcher").With(Fields{FieldGeneration: 3}).Info("fetch complete")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "fetch complete", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "doggallery", line[FieldService])
	assert.Equal(t, "fetcher", line[FieldComponent])
	assert.EqualValues(t, 3, line[FieldGeneration])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&Config{Level: "chatty", Output: &buf})
	require.NoError(t, err)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gallery.log")
	log, err := New(&Config{Level: "info", File: path})
	require.NoError(t, err)

	log.Info("hello file")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestNew_NilConfigDiscards(t *testing.T) {
	log, err := New(nil)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.NoError(t, log.Close())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&Config{Output: &buf})
	require.NoError(t, err)

	ctx := log.WithContext(context.Background())
	FromContext(ctx).Info("via context")
	assert.Contains(t, buf.String(), "via context")

	assert.NotNil(t, FromContext(context.Background()))
}
