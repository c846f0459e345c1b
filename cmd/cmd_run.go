package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/core"
	"github.com/durgadao/anjoli-custody/internal/config"
	"github.com/durgadao/anjoli-custody/modules/anjoli"
	"github.com/durgadao/anjoli-custody/pkg/automaxprocs"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/durgadao/anjoli-custody/pkg/reportingclient"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Modules are the runnable modules, looked up by name from `enable_modules`.
var Modules = do.Package(
	do.LazyNamed(common.ModuleAnjoli.String(), anjoli.New),
)

const shutdownTimeout = 60 * time.Second

func NewRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start the Anjoli custody service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			return runHandler(cmd, args)
		},
	}

	flags := runCmd.Flags()
	flags.Bool("api-only", false, "Serve the API without running module workers")
	flags.String("modules", "", "Enable specific modules to run. E.g. `anjoli`")
	flags.Bool("auto-initialize", false, "Mint the Anjoli Token on startup if the contract is not initialized yet")

	config.BindPFlag("api_only", flags.Lookup("api-only"))
	config.BindPFlag("enable_modules", flags.Lookup("modules"))
	config.BindPFlag("modules.anjoli.auto_initialize", flags.Lookup("auto-initialize"))

	return runCmd
}

func runHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()
	if !conf.Network.IsSupported() {
		return errors.Wrapf(errs.Unsupported, "%q network is not supported", conf.Network.String())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	injector := newInjector(ctx, conf)

	// workers outlive ctx, they are stopped by injector.Shutdown once the API has drained
	workerCtx := logger.WithContext(context.WithoutCancel(ctx), slogx.Stringer("network", conf.Network))

	workers := make(map[string]core.Worker)
	for _, module := range enabledModules(conf.EnableModules) {
		worker, err := do.InvokeNamed[core.Worker](injector, module)
		if err != nil {
			if errors.Is(err, do.ErrServiceNotFound) {
				return errors.Wrapf(errs.Unsupported, "module %q is not supported", module)
			}
			return errors.Wrapf(err, "can't init module %q", module)
		}
		workers[module] = worker
	}

	group, groupCtx := errgroup.WithContext(ctx)
	if !conf.APIOnly {
		for module, worker := range workers {
			group.Go(func() error {
				defer stop()
				ctx := logger.WithContext(workerCtx, slogx.String(logger.ModuleKey, module))
				logger.InfoContext(ctx, "Starting worker")
				if err := worker.Run(ctx); err != nil {
					return errors.Wrapf(err, "%s worker failed", module)
				}
				logger.InfoContext(ctx, "Worker stopped")
				return nil
			})
		}
	}

	app := do.MustInvoke[*fiber.App](injector)
	group.Go(func() error {
		defer stop()
		logger.InfoContext(workerCtx, "Started HTTP server", slogx.Int("port", conf.HTTPServer.Port))
		if err := app.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			return errors.Wrap(err, "http server failed")
		}
		return nil
	})

	logger.InfoContext(workerCtx, "Anjoli custody service started", slogx.Bool("apiOnly", conf.APIOnly))
	<-groupCtx.Done()
	logger.InfoContext(workerCtx, "Shutting down")

	go forceShutdownOnSignal()

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.ErrorContext(workerCtx, "Failed to shutdown HTTP server", err)
	}
	shutdownErr := injector.Shutdown()
	if err := group.Wait(); err != nil {
		return errors.WithStack(err)
	}
	if shutdownErr != nil {
		return errors.Wrap(shutdownErr, "failed while gracefully shutting down")
	}
	return nil
}

// newInjector provides the shared services modules depend on.
func newInjector(ctx context.Context, conf config.Config) do.Injector {
	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)
	do.ProvideValue(injector, prometheus.DefaultRegisterer)

	do.Provide(injector, func(i do.Injector) (*reportingclient.ReportingClient, error) {
		conf := do.MustInvoke[config.Config](i)
		if conf.Reporting.Disabled {
			return nil, nil
		}
		client, err := reportingclient.New(conf.Reporting)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "invalid reporting configuration")
			}
			return nil, errors.Wrap(err, "can't create reporting client")
		}
		return client, nil
	})

	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		conf := do.MustInvoke[config.Config](i)
		return newHTTPServer(conf.HTTPServer, prometheus.DefaultGatherer), nil
	})
	return injector
}

// enabledModules trims, drops empty names and dedupes the configured module list.
func enabledModules(modules []string) []string {
	modules = lo.Map(modules, func(m string, _ int) string { return strings.TrimSpace(m) })
	modules = lo.Filter(modules, func(m string, _ int) bool { return m != "" })
	return lo.Uniq(modules)
}

// forceShutdownOnSignal exits if a second signal arrives or the graceful shutdown hangs.
func forceShutdownOnSignal() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
	case <-time.After(shutdownTimeout + 15*time.Second):
		logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
	}
}
