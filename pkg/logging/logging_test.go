package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	n, err := pw.Write([]byte("one\ntw"))
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, "> one\n", out.String())

	_, err = pw.Write([]byte("o\nthree"))
	require.NoError(t, err)
	require.Equal(t, "> one\n> two\n", out.String())

	require.NoError(t, pw.Flush())
	require.Equal(t, "> one\n> two\n> three", out.String())
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in    string
		level string
		json  bool
	}{
		{"", DefaultLevel, false},
		{"DEBUG", "debug", false},
		{"json:trace", "trace", true},
		{"json:", DefaultLevel, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			level, jsonFormat := ParseLevel(tc.in)
			require.Equal(t, tc.level, level)
			require.Equal(t, tc.json, jsonFormat)
		})
	}
}

func TestNewLoggerFormats(t *testing.T) {
	t.Setenv(EnvJSONLog, "")

	var text bytes.Buffer
	NewLogger("emfsrc-test", "info", &text).Info("decoded", "records", 3)
	require.True(t, strings.HasPrefix(text.String(), linePrefix))
	require.Contains(t, text.String(), "records=3")

	var structured bytes.Buffer
	NewLogger("emfsrc-test", "json:info", &structured).Info("decoded", "records", 3)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &entry))
	require.Equal(t, "decoded", entry["@message"])

	var quiet bytes.Buffer
	NewLogger("emfsrc-test", "warn", &quiet).Info("hidden")
	require.Empty(t, quiet.String())
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	require.Equal(t, DefaultLevel, GetLogLevel())

	t.Setenv(EnvLogLevel, "debug")
	require.Equal(t, "debug", GetLogLevel())
}
