// Package automaxprocs sizes GOMAXPROCS to the container CPU quota.
package automaxprocs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	mu      sync.Mutex
	undo    func()
	initial = runtime.GOMAXPROCS(0)
)

// Init sets GOMAXPROCS from the cgroup CPU quota. A GOMAXPROCS environment variable wins.
// It is a no-op outside Linux or without a quota.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	log := logger.With(
		slogx.String(logger.ModuleKey, "automaxprocs"),
		slogx.Int("initialMaxProcs", initial),
	)
	printf := func(format string, v ...any) {
		attrs := []slog.Attr{slogx.Int("maxProcs", runtime.GOMAXPROCS(0))}
		if _, ok := os.LookupEnv("GOMAXPROCS"); ok {
			attrs = append(attrs, slogx.Bool("fromEnv", true))
		} else if _, ok := utils.Optional(v); !ok {
			attrs = attrs[:0]
		}
		log.LogAttrs(context.Background(), slog.LevelInfo, fmt.Sprintf(format, v...), attrs...)
	}

	revert, err := maxprocs.Set(maxprocs.Logger(printf), maxprocs.Min(1))
	if err != nil {
		return errors.Wrap(err, "failed to set GOMAXPROCS")
	}
	undo = revert
	return nil
}

// Undo restores the GOMAXPROCS value from before Init and returns it.
func Undo() int {
	mu.Lock()
	defer mu.Unlock()

	if undo != nil {
		undo()
		undo = nil
	} else {
		runtime.GOMAXPROCS(initial)
	}
	return runtime.GOMAXPROCS(0)
}
