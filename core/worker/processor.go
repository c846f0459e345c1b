package worker

import "context"

// Processor is the module logic driven by a Worker.
type Processor interface {
	Name() string

	// Start is called once before the first tick. An error stops the worker.
	Start(ctx context.Context) error

	// Tick is called on every polling interval. Errors are logged and the worker keeps running.
	Tick(ctx context.Context) error

	// Shutdown is called once, when the worker stops or when it is shut down without having run.
	Shutdown(ctx context.Context) error
}
