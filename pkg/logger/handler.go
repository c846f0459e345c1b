package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/durgadao/anjoli-custody/pkg/logger/stacktrace"
)

type (
	handleFunc func(context.Context, slog.Record) error
	middleware func(next handleFunc) handleFunc
)

// chainHandler runs records through middlewares before handing them to the wrapped handler.
type chainHandler struct {
	next        slog.Handler
	middlewares []middleware
}

func newChainHandler(next slog.Handler, middlewares ...middleware) slog.Handler {
	if len(middlewares) == 0 {
		return next
	}
	return &chainHandler{next: next, middlewares: middlewares}
}

func (c *chainHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return c.next.Enabled(ctx, level)
}

func (c *chainHandler) Handle(ctx context.Context, rec slog.Record) error {
	handle := c.next.Handle
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		handle = c.middlewares[i](handle)
	}
	return handle(ctx, rec)
}

func (c *chainHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &chainHandler{next: c.next.WithAttrs(attrs), middlewares: c.middlewares}
}

func (c *chainHandler) WithGroup(name string) slog.Handler {
	return &chainHandler{next: c.next.WithGroup(name), middlewares: c.middlewares}
}

// middlewareErrorStackTrace adds the verbose form and the stack trace of the first logged error.
func middlewareErrorStackTrace() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			var err error
			rec.Attrs(func(attr slog.Attr) bool {
				if attr.Key != ErrorKey && attr.Key != "err" {
					return true
				}
				err, _ = attr.Value.Any().(error)
				return err == nil
			})
			if err == nil {
				return next(ctx, rec)
			}

			rec = rec.Clone()
			rec.AddAttrs(slog.String(ErrorVerboseKey, fmt.Sprintf("%+v", err)))
			if frames := stacktrace.FromError(err); len(frames) > 0 {
				rec.AddAttrs(slog.Any(ErrorStackTraceKey, frames.Strings()))
			}
			return next(ctx, rec)
		}
	}
}
