package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		"INFO":    Info,
		"warning": Warn,
		" error ": Error,
		"verbose": Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("logfmt"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestJSONLogger_FiltersByLevelAndMergesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "vetdesk", Output: &buf})

	log.Debug("hidden", nil)
	log.With(map[string]any{"kind": "pet"}).Info("draft submitted", map[string]any{
		"location": "/pets/new/verify",
		"":         "ignored",
		"err":      errors.New("boom"),
	})
	require.NoError(t, log.Sync())

	lines := readLines(t, &buf)
	require.Len(t, lines, 1)

	entry := lines[0]
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "draft submitted", entry["msg"])
	assert.Equal(t, "vetdesk", entry["app"])
	assert.Equal(t, "pet", entry["kind"])
	assert.Equal(t, "/pets/new/verify", entry["location"])
	assert.Equal(t, "boom", entry["err"])
	assert.NotContains(t, entry, "")
	assert.NotEmpty(t, entry["ts"])
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := NewNop()
	log.With(map[string]any{"a": 1}).Error("x", map[string]any{"b": 2})
	require.NoError(t, log.Sync())
}

func readLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	out := make([]map[string]any, 0)
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	require.NoError(t, sc.Err())
	return out
}
