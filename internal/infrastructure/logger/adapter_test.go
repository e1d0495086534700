package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, dir string) []map[string]any {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerAdapter_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	log, err := NewLoggerAdapter(dir, "forecast germany berlin", "debug")
	require.NoError(t, err)

	log.Info("Navigating", "url", "https://example.com")
	log.WithField("city", "berlin").Warn("Table missing")
	log.WithFields(map[string]any{"tool": "forecast"}).Debug("done")
	require.NoError(t, log.Close())

	files, _ := filepath.Glob(filepath.Join(dir, "*.log"))
	require.Len(t, files, 1)
	assert.True(t, strings.HasSuffix(files[0], "_forecast_germany_berlin.log"))

	entries := readEntries(t, dir)
	require.Len(t, entries, 3)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "Navigating", entries[0]["message"])
	assert.Equal(t, "https://example.com", entries[0]["url"])
	assert.Contains(t, entries[0], "timestamp")
	assert.Equal(t, "berlin", entries[1]["city"])
	assert.Equal(t, "forecast", entries[2]["tool"])
}

func TestLoggerAdapter_LevelFilters(t *testing.T) {
	dir := t.TempDir()

	log, err := NewLoggerAdapter(dir, "currenttemp", "warn")
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("hidden")
	log.Error("shown")
	require.NoError(t, log.Close())

	entries := readEntries(t, dir)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
}

func TestNewLoggerAdapter_InvalidLevel(t *testing.T) {
	_, err := NewLoggerAdapter(t.TempDir(), "task", "loud")
	assert.Error(t, err)
}

func TestNewLoggerAdapter_EmptyDirIsNop(t *testing.T) {
	log, err := NewLoggerAdapter("", "task", "info")
	require.NoError(t, err)

	log.Info("discarded")
	assert.NoError(t, log.Close())
}

func TestLoggerAdapter_DerivedCloseKeepsFileOpen(t *testing.T) {
	dir := t.TempDir()
	log, err := NewLoggerAdapter(dir, "task", "info")
	require.NoError(t, err)

	child := log.WithField("k", "v")
	require.NoError(t, child.Close())

	log.Info("still writable")
	require.NoError(t, log.Close())

	assert.Len(t, readEntries(t, dir), 1)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"currenttemp New York", "currenttemp_New_York"},
		{"  ", "task"},
		{"", "task"},
		{"São Paulo", "S_o_Paulo"},
		{strings.Repeat("a", 80), strings.Repeat("a", 60)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize(tt.in))
		})
	}
}
