// nolint: sloglint
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
)

// DefaultLevel is the minimum level before Init is called.
const DefaultLevel = slog.LevelDebug

var (
	lvl = new(slog.LevelVar)

	// top-level logger, replaced by Init
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: levelAttrReplacer,
	}))
)

func init() {
	lvl.Set(DefaultLevel)
	slog.SetDefault(logger)
	// `log` is for debugging only
	slog.SetLogLoggerLevel(slog.LevelDebug)
}

// Config is the logger configuration.
type Config struct {
	// Output format: "text" (default), "json" or "gcp" (Cloud Logging structured JSON).
	Output string `mapstructure:"output"`

	// Debug enables debug level, source locations and verbose errors with stack traces.
	Debug bool `mapstructure:"debug"`

	// Level overrides the minimum level, one of "debug", "info", "warn" or "error". Ignored when Debug is set.
	Level string `mapstructure:"level"`
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case "", "text", "json", "gcp":
	default:
		return errors.Wrapf(errs.InvalidArgument, "unknown logger output %q", c.Output)
	}
	if _, err := c.level(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	if c.Debug {
		return slog.LevelDebug, nil
	}
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, errors.Wrapf(errs.InvalidArgument, "unknown logger level %q", c.Level)
	}
	return level, nil
}

// Init initializes the global logger and the default slog logger.
func Init(cfg Config) error {
	return initWithWriter(cfg, os.Stdout)
}

func initWithWriter(cfg Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return errors.WithStack(err)
	}
	level, _ := cfg.level()

	replacers := []func([]string, slog.Attr) slog.Attr{levelAttrReplacer, errorAttrReplacer}
	options := &slog.HandlerOptions{
		AddSource: cfg.Debug,
		Level:     lvl,
	}
	var middlewares []middleware
	if cfg.Debug {
		middlewares = append(middlewares, middlewareErrorStackTrace())
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Output) {
	case "json":
		options.ReplaceAttr = attrReplacerChain(append(replacers, durationToMsAttrReplacer)...)
		handler = slog.NewJSONHandler(w, options)
	case "gcp":
		options.ReplaceAttr = attrReplacerChain(append(replacers, durationToMsAttrReplacer)...)
		handler = newGCPHandler(w, options)
	default:
		options.ReplaceAttr = attrReplacerChain(replacers...)
		handler = slog.NewTextHandler(w, options)
	}

	lvl.Set(level)
	logger = slog.New(newChainHandler(handler, middlewares...))
	slog.SetDefault(logger)
	return nil
}

// SetLevel sets the minimum reporting level and returns the previous one.
func SetLevel(level slog.Level) (old slog.Level) {
	old = lvl.Level()
	lvl.Set(level)
	return old
}

// With returns the global logger with the given attributes.
func With(args ...any) *slog.Logger {
	return logger.With(args...)
}

func Debug(msg string, args ...any) {
	log(context.Background(), logger, slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...any) {
	log(context.Background(), logger, slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...any) {
	log(context.Background(), logger, slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...any) {
	log(context.Background(), logger, slog.LevelError, msg, args...)
}

// Panic logs at [LevelPanic] and then panics.
func Panic(msg string, args ...any) {
	log(context.Background(), logger, LevelPanic, msg, args...)
	panic(msg)
}

// Fatal logs at [LevelFatal] and then exits with status 1.
func Fatal(msg string, args ...any) {
	log(context.Background(), logger, LevelFatal, msg, args...)
	os.Exit(1)
}

// LogAttrs logs attrs at the given level from the logger in ctx.
func LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	l := FromContext(ctx)
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, level) {
		return
	}
	r := slog.NewRecord(time.Now(), level, msg, callerPC(3))
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}

// log must be called directly by an exported logging function, the source location is taken at a fixed depth.
func log(ctx context.Context, l *slog.Logger, level slog.Level, msg string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, level) {
		return
	}
	// skip [runtime.Callers, callerPC, log, exported function]
	r := slog.NewRecord(time.Now(), level, msg, callerPC(4))
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}

func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	return pcs[0]
}
