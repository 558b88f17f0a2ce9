package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiermolinar/berlinclock/internal/config"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"off", zerolog.Disabled},
		{"", zerolog.WarnLevel},
		{"   nonsense   ", zerolog.WarnLevel},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, parseLevel(c.in), "parseLevel(%q)", c.in)
	}
}

func TestFromConfig(t *testing.T) {
	opt := FromConfig(config.LogConfig{Level: "info", Format: "json", File: "/tmp/x.log"})
	assert.Equal(t, Options{Level: "info", Format: "json", File: "/tmp/x.log"}, opt)
}

func TestGet_BeforeInitDiscards(t *testing.T) {
	root.Store(nil)
	l := Get()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestInit_JSONWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "info", Format: "json", Writer: &buf}))

	Named("clock").Info().Str("k", "v").Msg("hello")
	Get().Debug().Msg("filtered")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "clock", entry["component"])
	assert.Equal(t, "v", entry["k"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestInit_ConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "warn", Format: "console", Writer: &buf}))

	Get().Warn().Msg("careful")
	assert.Contains(t, buf.String(), "careful")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "console output should not be JSON")
}

func TestNamed_EmptyReturnsRoot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "info", Format: "json", Writer: &buf}))

	Named("").Info().Msg("root")
	assert.NotContains(t, buf.String(), "component")
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "berlinclock.log")
	require.NoError(t, Init(Options{Level: "error", File: path}))

	Named("cli").Error().Msg("first")
	require.NoError(t, Close())
	Get().Error().Msg("after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"first"`)
	assert.NotContains(t, string(data), "after close")
	assert.NoError(t, Close())
}
