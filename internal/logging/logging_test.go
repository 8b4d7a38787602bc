package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":  log.DebugLevel,
		"INFO":   log.InfoLevel,
		" warn ": log.WarnLevel,
		"error":  log.ErrorLevel,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ReportTimestamp = false
	logger := New(&buf, opts)

	logger.Debug("hidden")
	logger.Warn("persist failed", "key", "tasks")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "persist failed")
	assert.Contains(t, out, "key=tasks")
	assert.Contains(t, out, "td")
}

func TestOpenFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	opts := DefaultOptions()
	opts.Level = log.DebugLevel
	l, err := OpenFile(dir, opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), l.Path)

	l.Info("started", "tasks", 3)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(l.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")

	// Reopening appends.
	l, err = OpenFile(dir, opts)
	require.NoError(t, err)
	l.Info("again")
	require.NoError(t, l.Close())

	data, err = os.ReadFile(l.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
	assert.Contains(t, string(data), "again")
}

func TestCloseNil(t *testing.T) {
	var l *FileLogger
	assert.NoError(t, l.Close())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("dropped") })
}
