package logging_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mdhelpers/pkg/logging"
)

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithTemplate(ctx, "README.md.tmpl")
	ctx = logging.WithOperation(ctx, "render")

	logging.FromContext(ctx).Info().Msg("rendered")

	testLogger.AssertContains(t, `"template":"README.md.tmpl"`)
	testLogger.AssertContains(t, `"operation":"render"`)
	testLogger.AssertContains(t, "rendered")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract
	assert.Equal(t, logging.Default(), logging.FromContext(nil))
	assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Equal(t, logging.Default(), logging.FromContext(logging.WithLogger(context.Background(), nil)))
}

func TestWithFields(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	ctx = logging.WithFields(ctx, map[string]any{
		"entries":  3,
		"truncate": true,
		"error":    errors.New("bad data"),
	})
	logging.FromContext(ctx).Warn().Msg("ranking")

	testLogger.AssertContains(t, `"entries":3`)
	testLogger.AssertContains(t, `"truncate":true`)
	testLogger.AssertContains(t, `"error":"bad data"`)
}

func TestCaptureLoggingForTest(t *testing.T) {
	captured := logging.CaptureLoggingForTest(t)
	logging.Default().Warn().Str("helper", "ordinalize").Msg("captured")

	assert.True(t, captured.Contains("captured"))
	assert.Len(t, captured.Lines(), 1)
}

func readLog(t *testing.T, cfg *logging.Config, write func(zerolog.Logger)) string {
	t.Helper()
	cfg.Output = filepath.Join(t.TempDir(), "mdhelpers.log")
	write(logging.NewLoggerFromConfig(cfg))
	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	return string(data)
}

func TestNewLoggerFromConfig(t *testing.T) {
	t.Run("level filters events", func(t *testing.T) {
		out := readLog(t, &logging.Config{Level: "warn", Format: "json"}, func(l zerolog.Logger) {
			l.Info().Msg("hidden")
			l.Warn().Msg("visible")
		})
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "visible")
	})

	t.Run("fields and caller", func(t *testing.T) {
		out := readLog(t, &logging.Config{
			Format:    "json",
			AddCaller: true,
			Fields:    logging.ParseFields("app=mdhelpers, env=test"),
		}, func(l zerolog.Logger) {
			l.Info().Msg("hello")
		})
		assert.Contains(t, out, `"app":"mdhelpers"`)
		assert.Contains(t, out, `"env":"test"`)
		assert.Contains(t, out, `"caller":`)
	})

	t.Run("no caller by default", func(t *testing.T) {
		out := readLog(t, &logging.Config{Format: "json"}, func(l zerolog.Logger) {
			l.Info().Msg("hello")
		})
		assert.NotContains(t, out, `"caller":`)
	})

	t.Run("console time format", func(t *testing.T) {
		out := readLog(t, &logging.Config{
			Format:     "console",
			NoColor:    true,
			TimeFormat: "2006-01-02",
		}, func(l zerolog.Logger) {
			l.Info().Msg("dated")
		})
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2} INF dated`, out)
	})

	levels := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"off":     zerolog.Disabled,
		"chatty":  zerolog.InfoLevel,
	}
	for in, want := range levels {
		t.Run("level "+in, func(t *testing.T) {
			logger := logging.NewLoggerFromConfig(&logging.Config{Level: in, Output: "discard"})
			assert.Equal(t, want, logger.GetLevel())
		})
	}

	t.Run("nil config", func(t *testing.T) {
		assert.Equal(t, zerolog.InfoLevel, logging.NewLoggerFromConfig(nil).GetLevel())
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", "stdout")
	t.Setenv("LOG_TIME_FORMAT", "rfc3339")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_FIELDS", "service=docs")
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, &logging.Config{
		Level:      "debug",
		Format:     "json",
		Output:     "stdout",
		TimeFormat: "rfc3339",
		NoColor:    true,
		AddCaller:  true,
		Fields:     map[string]any{"service": "docs"},
	}, logging.FromEnv())
}

func TestParseFields(t *testing.T) {
	tests := []struct {
		in   string
		want map[string]any
	}{
		{"", map[string]any{}},
		{"a=1", map[string]any{"a": "1"}},
		{" a = 1 , b=x=y", map[string]any{"a": "1", "b": "x=y"}},
		{"novalue,=empty,c=", map[string]any{"c": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseFields(tt.in))
		})
	}
}

func TestNopLogger(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, logging.NewNopLogger().GetLevel())
}
