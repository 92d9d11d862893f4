package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("GetQuote: property=%s", "p-1")
	log.Warn("GetQuote: property=%s not found", "p-2")

	out := buf.String()
	assert.NotContains(t, out, "p-1")
	assert.Contains(t, out, "GetQuote: property=p-2 not found")
	assert.Contains(t, out, "level=warning")
}

func TestLogger_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	assert.Error(t, err)
}

func TestLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")
	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("hello")
	assert.NoError(t, log.Close())
	assert.FileExists(t, path)
}
