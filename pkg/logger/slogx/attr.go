// Package slogx holds the typed attribute constructors the service logs with.
package slogx

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gaze-network/uint128"
)

// ErrorKey is the attribute key used by [Error].
const ErrorKey = "error"

func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

// Error returns an attribute for err, or an empty attribute (dropped by handlers) when err is nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(ErrorKey, err)
}

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Stringer logs value.String(). A nil Stringer logs "".
func Stringer(key string, value fmt.Stringer) slog.Attr {
	if value == nil {
		return slog.String(key, "")
	}
	return slog.String(key, value.String())
}

func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func Uint64(key string, value uint64) slog.Attr {
	return slog.Uint64(key, value)
}

// Uint128 logs the decimal form of value so it is not truncated by json encoders.
func Uint128(key string, value uint128.Uint128) slog.Attr {
	return slog.String(key, value.String())
}

func Bool(key string, value bool) slog.Attr {
	return slog.Bool(key, value)
}

func Duration(key string, value time.Duration) slog.Attr {
	return slog.Duration(key, value)
}
