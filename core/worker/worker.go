package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/core"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
)

const (
	// DefaultInterval is the default polling interval of a worker
	DefaultInterval = 15 * time.Second

	shutdownTimeout = 180 * time.Second
)

var _ core.Worker = (*Worker)(nil)

// Worker runs a Processor on a fixed interval until it is shut down.
// The processor's Shutdown runs exactly once, whether or not the worker ever ran.
type Worker struct {
	Processor Processor
	Interval  time.Duration

	started  atomic.Bool
	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}

	cleanupOnce sync.Once
	cleanupErr  error
}

// New create new worker. A non-positive interval falls back to DefaultInterval.
func New(processor Processor, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Worker{
		Processor: processor,
		Interval:  interval,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (w *Worker) Shutdown() error {
	return w.ShutdownWithContext(context.Background())
}

func (w *Worker) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return w.ShutdownWithContext(ctx)
}

func (w *Worker) ShutdownWithContext(ctx context.Context) (err error) {
	w.quitOnce.Do(func() {
		close(w.quit)
		// never ran, e.g. api-only mode: claim the run and release the processor here
		if w.started.CompareAndSwap(false, true) {
			close(w.done)
			err = w.shutdownProcessor(ctx)
			return
		}
		select {
		case <-w.done:
			err = w.cleanupErr
		case <-time.After(shutdownTimeout):
			err = errors.Wrap(errs.Timeout, "worker shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "worker shutdown context canceled")
		}
	})
	return
}

// shutdownProcessor runs the processor's Shutdown once. Later calls return the first result.
func (w *Worker) shutdownProcessor(ctx context.Context) error {
	w.cleanupOnce.Do(func() {
		if err := w.Processor.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.ErrorContext(ctx, "Failed to shutdown processor", err)
			w.cleanupErr = errors.Wrap(err, "processor shutdown failed")
		}
	})
	return w.cleanupErr
}

func (w *Worker) Run(ctx context.Context) (err error) {
	if !w.started.CompareAndSwap(false, true) {
		return errors.Wrap(errs.Unsupported, "worker already ran or was shut down")
	}
	defer close(w.done)

	ctx = logger.WithContext(ctx,
		slog.String("package", "worker"),
		slog.String("processor", w.Processor.Name()),
	)

	if err := w.Processor.Start(ctx); err != nil {
		return errors.CombineErrors(errors.Wrap(err, "processor start failed"), w.shutdownProcessor(ctx))
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-w.quit:
			logger.InfoContext(ctx, "Got quit signal, stopping worker")
			return w.shutdownProcessor(ctx)
		case <-ctx.Done():
			return w.shutdownProcessor(ctx)
		case <-ticker.C:
			start := time.Now()
			if err := w.Processor.Tick(ctx); err != nil {
				logger.WarnContext(ctx, "Processor tick failed", slogx.Error(err))
				continue
			}
			logger.DebugContext(ctx, "Processor tick finished", slogx.Duration("duration", time.Since(start)))
		}
	}
}
