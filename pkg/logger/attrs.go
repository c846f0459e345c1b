package logger

import (
	"fmt"
	"log/slog"
)

// Keys for log attributes.
const (
	TimeKey            = slog.TimeKey
	LevelKey           = slog.LevelKey
	MessageKey         = slog.MessageKey
	SourceKey          = slog.SourceKey
	ErrorKey           = "error"
	ErrorVerboseKey    = "error_verbose"
	ErrorStackTraceKey = "error_stacktrace"

	ModuleKey       = "module"
	OperationKey    = "operation"
	InvocationIDKey = "invocationId"
)

// Levels above [slog.LevelError].
const (
	LevelCritical = slog.Level(12)
	LevelPanic    = slog.Level(14)
	LevelFatal    = slog.Level(16)
)

type attrReplacer = func(groups []string, attr slog.Attr) slog.Attr

func attrReplacerChain(replacers ...attrReplacer) attrReplacer {
	return func(groups []string, attr slog.Attr) slog.Attr {
		for _, replacer := range replacers {
			if replacer == nil {
				continue
			}
			attr = replacer(groups, attr)
		}
		return attr
	}
}

// levelAttrReplacer names the custom levels instead of printing them as ERROR+n.
func levelAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 || attr.Key != LevelKey {
		return attr
	}
	level, ok := attr.Value.Any().(slog.Level)
	if !ok || level < LevelCritical {
		return attr
	}

	name, base := "FATAL", LevelFatal
	switch {
	case level < LevelPanic:
		name, base = "CRITICAL", LevelCritical
	case level < LevelFatal:
		name, base = "PANIC", LevelPanic
	}
	if level != base {
		name = fmt.Sprintf("%s%+d", name, level-base)
	}
	return slog.String(attr.Key, name)
}

// errorAttrReplacer renders error values by message so that json outputs never print them as {}.
func errorAttrReplacer(_ []string, attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindAny {
		return attr
	}
	if err, ok := attr.Value.Any().(error); ok && err != nil {
		return slog.String(attr.Key, err.Error())
	}
	return attr
}

func durationToMsAttrReplacer(_ []string, attr slog.Attr) slog.Attr {
	if attr.Value.Kind() == slog.KindDuration {
		return slog.Int64(attr.Key, attr.Value.Duration().Milliseconds())
	}
	return attr
}
