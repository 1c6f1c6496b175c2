package logger

import (
	"bytes"
	"strings"
	"testing"

	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Defaults_ToInfoAndConsole(t *testing.T) {
	var buf bytes.Buffer
	Setup("", "", &buf)

	assert.Equal(t, "info", Logger.GetLevel().String())
	assert.Equal(t, "info", zlog.Logger.GetLevel().String())

	Logger.Info().Msg("hello")
	out := strings.TrimSpace(buf.String())
	require.NotEmpty(t, out)
	assert.False(t, strings.HasPrefix(out, "{"), "expected console output, got %q", out)
	assert.Contains(t, out, "hello")
}

func TestSetup_InvalidLevel_FallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Setup("not-a-level", "console", &buf)

	Logger.Debug().Msg("debug-should-not-print")
	Logger.Info().Msg("info-should-print")

	out := buf.String()
	assert.NotContains(t, out, "debug-should-not-print")
	assert.Contains(t, out, "info-should-print")
}

func TestSetup_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Setup("DEBUG", "json", &buf)

	assert.Equal(t, "debug", Logger.GetLevel().String())

	Logger.Info().Str("k", "v").Msg("hello")
	out := strings.TrimSpace(buf.String())

	assert.True(t, strings.HasPrefix(out, "{") && strings.HasSuffix(out, "}"), "expected json line, got %q", out)
	assert.Contains(t, out, `"message":"hello"`)
	assert.Contains(t, out, `"k":"v"`)
	assert.Contains(t, out, `"service":"eventhub-service"`)
}

func TestInit_ReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	Init()

	assert.Equal(t, "warn", Logger.GetLevel().String())
	assert.Equal(t, Logger.GetLevel(), zlog.Logger.GetLevel())
}
