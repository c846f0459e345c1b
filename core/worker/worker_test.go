package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	startErr  error
	tickErr   error
	started   atomic.Int32
	ticks     atomic.Int32
	shutdowns atomic.Int32
}

func (p *fakeProcessor) Name() string { return "fake" }

func (p *fakeProcessor) Start(context.Context) error {
	p.started.Add(1)
	return p.startErr
}

func (p *fakeProcessor) Tick(context.Context) error {
	p.ticks.Add(1)
	return p.tickErr
}

func (p *fakeProcessor) Shutdown(context.Context) error {
	p.shutdowns.Add(1)
	return nil
}

func TestWorkerRunAndShutdown(t *testing.T) {
	p := &fakeProcessor{tickErr: errors.New("tick failed")}
	w := New(p, 5*time.Millisecond)

	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(context.Background()) }()

	// tick errors must not stop the worker
	assert.Eventually(t, func() bool { return p.ticks.Load() >= 3 }, time.Second, time.Millisecond)

	require.NoError(t, w.ShutdownWithTimeout(time.Second))
	require.NoError(t, <-runErr)
	assert.EqualValues(t, 1, p.started.Load())
	assert.EqualValues(t, 1, p.shutdowns.Load())

	// shutdown is idempotent
	assert.NoError(t, w.Shutdown())
}

func TestWorkerStartFailure(t *testing.T) {
	p := &fakeProcessor{startErr: errors.New("boom")}
	w := New(p, time.Hour)

	err := w.Run(context.Background())
	require.Error(t, err)
	assert.Zero(t, p.ticks.Load())
	assert.EqualValues(t, 1, p.shutdowns.Load(), "resources are released when start fails")

	// done is closed even when start fails
	assert.NoError(t, w.ShutdownWithTimeout(time.Second))
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	p := &fakeProcessor{}
	w := New(p, 0)
	assert.Equal(t, DefaultInterval, w.Interval)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, w.Run(ctx))
	assert.EqualValues(t, 1, p.shutdowns.Load())

	assert.NoError(t, w.Shutdown())
	assert.EqualValues(t, 1, p.shutdowns.Load())
}

func TestWorkerShutdownWithoutRun(t *testing.T) {
	p := &fakeProcessor{}
	w := New(p, time.Hour)
	assert.NoError(t, w.ShutdownWithTimeout(time.Millisecond))
	assert.EqualValues(t, 1, p.shutdowns.Load(), "resources are released in api-only mode")
	assert.Zero(t, p.started.Load())

	assert.Error(t, w.Run(context.Background()))
	assert.Zero(t, p.started.Load())
	assert.EqualValues(t, 1, p.shutdowns.Load())
}

type blockingProcessor struct {
	fakeProcessor
	release chan struct{}
}

func (p *blockingProcessor) Shutdown(context.Context) error {
	<-p.release
	return nil
}

func TestWorkerShutdownContextCanceled(t *testing.T) {
	p := &blockingProcessor{release: make(chan struct{})}
	w := New(p, time.Hour)

	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(context.Background()) }()
	require.Eventually(t, func() bool { return p.started.Load() == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := w.ShutdownWithContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(p.release)
	assert.NoError(t, <-runErr)
}
