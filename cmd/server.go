package cmd

import (
	"net/http"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/internal/config"
	"github.com/durgadao/anjoli-custody/pkg/errorhandler"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/durgadao/anjoli-custody/pkg/middleware/requestcontext"
	"github.com/durgadao/anjoli-custody/pkg/middleware/requestlogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const panicStackSize = 4 << 10

// newHTTPServer builds the fiber app with the shared middleware chain, the health check and /metrics.
// Modules mount their own routes on it.
func newHTTPServer(conf config.HTTPServerConfig, gatherer prometheus.Gatherer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Anjoli Custody",
		ErrorHandler:          errorhandler.NewHTTPErrorHandler(),
		DisableStartupMessage: true,
	})
	app.
		Use(favicon.New()).
		Use(cors.New()).
		Use(requestid.New()).
		Use(requestcontext.New(
			requestcontext.WithRequestId(),
			requestcontext.WithClientIP(conf.RequestIP),
		)).
		Use(requestlogger.New(conf.Logger)).
		Use(fiberrecover.New(fiberrecover.Config{
			EnableStackTrace:  true,
			StackTraceHandler: logPanic,
		})).
		Use(compress.New(compress.Config{
			Level: compress.LevelDefault,
		}))

	app.Get("/", func(c *fiber.Ctx) error {
		return errors.WithStack(c.SendStatus(http.StatusOK))
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return app
}

func logPanic(c *fiber.Ctx, e interface{}) {
	stack := make([]byte, panicStackSize)
	stack = stack[:runtime.Stack(stack, false)]
	logger.ErrorContext(c.UserContext(), "Panic in http handler", errors.Errorf("panic: %v", e),
		slogx.String("stacktrace", string(stack)),
	)
}
