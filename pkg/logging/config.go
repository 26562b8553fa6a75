package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	"github.com/agentstation/mdhelpers/pkg/constants"
)

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error, off.
	Level string

	// Format is json, console or auto (console on a terminal).
	Format string

	// Output is stderr, stdout, discard or a file path.
	Output string

	// TimeFormat sets console timestamps: kitchen, rfc3339, rfc3339nano,
	// stamp, unix or a Go layout.
	TimeFormat string

	NoColor bool

	// AddCaller includes file:line in every event.
	AddCaller bool

	// Fields are attached to every event.
	Fields map[string]any
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT, LOG_TIME_FORMAT,
// LOG_CALLER, LOG_FIELDS and NO_COLOR.
func FromEnv() *Config {
	return &Config{
		Level:      os.Getenv("LOG_LEVEL"),
		Format:     os.Getenv("LOG_FORMAT"),
		Output:     os.Getenv("LOG_OUTPUT"),
		TimeFormat: os.Getenv("LOG_TIME_FORMAT"),
		NoColor:    os.Getenv("NO_COLOR") != "",
		AddCaller:  cast.ToBool(os.Getenv("LOG_CALLER")),
		Fields:     ParseFields(os.Getenv("LOG_FIELDS")),
	}
}

// NewLoggerFromConfig builds a logger. Empty settings take defaults:
// info level, auto format, stderr, kitchen timestamps.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = &Config{}
	}

	level := parseLevel(cfg.Level)
	// zerolog drops events below the global level before any logger sees them.
	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}

	logCtx := zerolog.New(writer(cfg)).Level(level).With().Timestamp()
	if cfg.AddCaller {
		logCtx = logCtx.Caller()
	}
	for k, v := range cfg.Fields {
		logCtx = addField(logCtx, k, v)
	}
	return logCtx.Logger()
}

// ParseFields parses comma-separated key=value pairs. Pairs without "="
// are skipped.
func ParseFields(s string) map[string]any {
	fields := make(map[string]any)
	for _, pair := range strings.Split(s, ",") {
		if key, value, ok := strings.Cut(pair, "="); ok && strings.TrimSpace(key) != "" {
			fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	return fields
}

func writer(cfg *Config) io.Writer {
	var out io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	case "discard", "none":
		out = io.Discard
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
		if err != nil {
			out = os.Stderr
		} else {
			out = f
		}
	}

	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			format = "console"
		}
	}
	if format != "console" && format != "pretty" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: parseTimeFormat(cfg.TimeFormat),
		NoColor:    cfg.NoColor,
	}
}

func parseLevel(level string) zerolog.Level {
	switch s := strings.ToLower(strings.TrimSpace(level)); s {
	case "":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "none", "off":
		return zerolog.Disabled
	default:
		l, err := zerolog.ParseLevel(s)
		if err != nil {
			return zerolog.InfoLevel
		}
		return l
	}
}

var timeFormats = map[string]string{
	"":            time.Kitchen,
	"kitchen":     time.Kitchen,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"stamp":       time.Stamp,
	"unix":        zerolog.TimeFormatUnix,
	"epoch":       zerolog.TimeFormatUnix,
}

// parseTimeFormat maps a name to a layout. Anything that looks like a Go
// layout is used as is; unknown names fall back to kitchen.
func parseTimeFormat(format string) string {
	if layout, ok := timeFormats[strings.ToLower(format)]; ok {
		return layout
	}
	if strings.Contains(format, "2006") || strings.Contains(format, "15:04") {
		return format
	}
	return time.Kitchen
}

func addField(ctx zerolog.Context, key string, value any) zerolog.Context {
	switch v := value.(type) {
	case string:
		return ctx.Str(key, v)
	case int:
		return ctx.Int(key, v)
	case bool:
		return ctx.Bool(key, v)
	case error:
		return ctx.AnErr(key, v)
	default:
		return ctx.Interface(key, v)
	}
}
