package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-complete/internal/transformers"
)

// useJSON routes verbose JSON logs into a buffer and restores defaults afterwards.
func useJSON(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	require.NoError(t, Configure(&Config{Level: LevelDebug, Format: FormatJSON}))

	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
		_ = Configure(&Config{Level: LevelDebug, Format: FormatConsole})
	})
	return &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := useJSON(t)

	Debug("test message %s", "arg")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "test message arg", lines[0]["message"])
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := useJSON(t)
	SetVerbose(false)

	Debug("test message")
	Info("info")
	Warn("warn")

	assert.Zero(t, buf.Len(), "expected no output when verbose is disabled")
}

func TestSection(t *testing.T) {
	buf := useJSON(t)

	Section("Test Section")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "=== Test Section ===", lines[0]["message"])
}

func TestInfoAndWarn(t *testing.T) {
	buf := useJSON(t)

	Info("info message %d", 42)
	Warn("warning message")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "info message 42", lines[0]["message"])
	assert.Equal(t, "warn", lines[1]["level"])
}

func TestConfigure_LevelFilters(t *testing.T) {
	buf := useJSON(t)
	require.NoError(t, Configure(&Config{Level: LevelWarn, Format: FormatJSON}))

	Debug("hidden")
	Info("hidden")
	Warn("shown")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
}

func TestConfigure_Invalid(t *testing.T) {
	assert.Error(t, Configure(&Config{Level: "loud", Format: FormatJSON}))
	assert.Error(t, Configure(&Config{Level: LevelInfo, Format: "xml"}))
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	Info("hello %s", "console")

	assert.Contains(t, buf.String(), "hello console")
	assert.Contains(t, buf.String(), "INF")
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SERCHA_LOG_LEVEL", "warn")
	t.Setenv("SERCHA_LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, cfg.Level)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("SERCHA_LOG_LEVEL", "chatty")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestPipelineObserver(t *testing.T) {
	buf := useJSON(t)
	obs := NewPipelineObserver("cycle-1")

	obs.SourcesNormalized([]string{"commands", "history"})
	obs.StageCompleted(transformers.StageReport{
		Index:          0,
		Name:           "limit",
		Collections:    2,
		Items:          9,
		OutCollections: 2,
		OutItems:       4,
	})

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "cycle-1", lines[0]["cycle_id"])
	assert.Equal(t, []any{"commands", "history"}, lines[0]["sources"])

	assert.Equal(t, "limit", lines[1]["name"])
	assert.EqualValues(t, 9, lines[1]["items_in"])
	assert.EqualValues(t, 4, lines[1]["items_out"])
}

func TestConcurrentAccess(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(zerolog.SyncWriter(&buf))

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
