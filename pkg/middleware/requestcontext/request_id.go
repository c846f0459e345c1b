package requestcontext

import (
	"context"

	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDKey is the log attribute carrying the request id.
const RequestIDKey = "requestId"

type requestIDKey struct{}

// GetRequestId returns the request id stored by [WithRequestId], or "".
func GetRequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithRequestId reuses the id set by fiber's requestid middleware or the incoming header, and generates one otherwise.
func WithRequestId() Option {
	header, localsKey := requestid.ConfigDefault.Header, requestid.ConfigDefault.ContextKey
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		id, _ := c.Locals(localsKey).(string)
		if id == "" {
			id = c.Get(header)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(header, id)
			c.Locals(localsKey, id)
		}

		ctx = context.WithValue(ctx, requestIDKey{}, id)
		return logger.WithContext(ctx, RequestIDKey, id), nil
	}
}
