package errorhandler

import (
	"github.com/durgadao/anjoli-custody/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
)

// New setup error handler middleware. It renders errors of the downstream handlers
// the same way the application error handler does, so a route group keeps its error format on any app.
func New() fiber.Handler {
	handle := errorhandler.NewHTTPErrorHandler()
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return handle(ctx, err)
	}
}
