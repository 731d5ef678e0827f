package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"loud", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestIsValidLevel(t *testing.T) {
	assert.True(t, IsValidLevel("debug"))
	assert.True(t, IsValidLevel("Error"))
	assert.False(t, IsValidLevel(""))
	assert.False(t, IsValidLevel("verbose"))
}

func TestNewLoggerWithPath_JSONToStderr(t *testing.T) {
	var buf bytes.Buffer
	result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON}, &buf)
	defer func() { require.NoError(t, result.Close()) }()

	assert.False(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)

	logger := ComponentLogger(result.Logger, "test")
	logger.Info().Str("client", "Acme").Msg("hello")
	logger.Debug().Msg("filtered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "Acme", entry["client"])
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "footprint.log")

	var stderr bytes.Buffer
	result := NewLoggerWithPath(Config{Level: "warn", Format: FormatConsole, File: path}, &stderr)
	require.True(t, result.UsingFile)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Warn().Msg("to file")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close(), "second close is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, stderr.String())
}

func TestNewLoggerWithPath_FallbackToStderr(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	var stderr bytes.Buffer
	result := NewLoggerWithPath(Config{Level: "warn", Format: FormatJSON, File: filepath.Join(blocker, "a.log")}, &stderr)

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)

	result.Logger.Warn().Msg("still logged")
	assert.Contains(t, stderr.String(), "still logged")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	FromContext(ctx).Warn().Msg("from ctx")
	assert.Contains(t, buf.String(), "from ctx")

	// Without a logger, FromContext must still be safe to use.
	FromContext(context.Background()).Warn().Msg("dropped")
}

func TestSessionID(t *testing.T) {
	id := NewSessionID()
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	ctx := ContextWithSessionID(context.Background(), id)
	assert.Equal(t, id, SessionIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateSessionID(ctx))

	assert.Empty(t, SessionIDFromContext(context.Background()))
	assert.NotEqual(t, id, GetOrGenerateSessionID(context.Background()))
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "denied")
	assert.Contains(t, buf.String(), "Logging to /tmp/x.log")
	assert.Contains(t, buf.String(), "denied")
}
