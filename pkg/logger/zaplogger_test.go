package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_InfoWritesFieldsAndMetadata(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", "test", &buf)

	l.Info("dataset loaded", map[string]any{"observations": 3})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "dataset loaded", entries[0]["msg"])
	assert.Equal(t, "test-app", entries[0]["app_name"])
	assert.Equal(t, "test", entries[0]["app_env"])
	assert.EqualValues(t, 3, entries[0]["observations"])
	assert.Contains(t, entries[0], "timestamp")
	assert.Contains(t, entries[0]["caller_func"], "TestLogger_InfoWritesFieldsAndMetadata")
}

func TestLogger_ErrorCarriesErrorText(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", "test", &buf)

	l.Error(errors.New("fetch failed"), map[string]any{"source": "remote"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "fetch failed", entries[0]["error"])
	assert.Equal(t, "remote", entries[0]["source"])
	assert.Contains(t, entries[0], "stack")
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", "test", &buf)

	require.NoError(t, l.SetLevel("warn"))
	l.Debug("hidden")
	l.Info("hidden too")
	l.Warning("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])

	assert.Error(t, l.SetLevel("loud"))
}

func TestLogger_MultipleWriters(t *testing.T) {
	var a, b bytes.Buffer
	l := NewZapLogger("test-app", "test", &a, &b)

	l.Info("both")

	assert.Contains(t, a.String(), `"msg":"both"`)
	assert.Contains(t, b.String(), `"msg":"both"`)
}
