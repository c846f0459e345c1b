package logger

import (
	"io"
	"log/slog"
	"strings"
)

// newGCPHandler writes Cloud Logging structured JSON.
// https://cloud.google.com/logging/docs/structured-logging
func newGCPHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   true,
		Level:       opts.Level,
		ReplaceAttr: attrReplacerChain(opts.ReplaceAttr, gcpAttrReplacer),
	})
}

func gcpAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case MessageKey:
		attr.Key = "message"
	case SourceKey:
		attr.Key = "logging.googleapis.com/sourceLocation"
	case LevelKey:
		attr.Key = "severity"
		// levelAttrReplacer may already have turned custom levels into strings
		switch v := attr.Value.Any().(type) {
		case slog.Level:
			attr.Value = slog.StringValue(gcpSeverity(v))
		case string:
			attr.Value = slog.StringValue(gcpSeverityName(v))
		}
	}
	return attr
}

// https://cloud.google.com/logging/docs/reference/v2/rest/v2/LogEntry#logseverity
func gcpSeverity(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARNING"
	case level < LevelCritical:
		return "ERROR"
	case level < LevelPanic:
		return "CRITICAL"
	case level < LevelFatal:
		return "ALERT"
	default:
		return "EMERGENCY"
	}
}

func gcpSeverityName(name string) string {
	switch {
	case strings.HasPrefix(name, "CRITICAL"):
		return "CRITICAL"
	case strings.HasPrefix(name, "PANIC"):
		return "ALERT"
	case strings.HasPrefix(name, "FATAL"):
		return "EMERGENCY"
	}
	return name
}

