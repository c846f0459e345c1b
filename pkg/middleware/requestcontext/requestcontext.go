// Package requestcontext copies per-request values (request id, client ip) from fiber into the user context.
package requestcontext

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// Response is the body written when an Option rejects the request.
type Response = common.HttpResponse[any]

// Option derives a new context from the request. A *RejectError stops the request with its status.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

// RejectError rejects a request with a status and a message safe to show to clients.
type RejectError struct {
	Status  int
	Message string
}

func (e *RejectError) Error() string {
	return e.Message
}

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		for i, opt := range opts {
			next, err := opt(ctx, c)
			if err != nil {
				var rejectErr *RejectError
				if errors.As(err, &rejectErr) {
					return c.Status(rejectErr.Status).JSON(Response{Error: lo.ToPtr(rejectErr.Message)})
				}
				logger.ErrorContext(ctx, "Failed to build request context", err,
					slogx.String("event", "requestcontext/error"),
					slogx.Int("option", i),
				)
				return c.Status(http.StatusInternalServerError).JSON(Response{Error: lo.ToPtr("Internal Server Error")})
			}
			ctx = next
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
