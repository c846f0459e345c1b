package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type errorResponse = common.HttpResponse[any]

// NewHTTPErrorHandler returns a fiber error handler.
// Public errors are returned as 400 with their message and code, everything else is logged and hidden behind a 500.
func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e, ok := errs.AsPublicError(err); ok {
			resp := errorResponse{Error: lo.ToPtr(e.Message())}
			if e.Code() != "" {
				resp.Code = lo.ToPtr(e.Code())
			}
			return errors.WithStack(ctx.Status(http.StatusBadRequest).JSON(resp))
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(e.Code).JSON(errorResponse{Error: lo.ToPtr(e.Message)}))
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error", err,
			slogx.String("event", "api_unhandled_error"),
		)

		return errors.WithStack(ctx.Status(http.StatusInternalServerError).JSON(errorResponse{
			Error: lo.ToPtr("Internal Server Error"),
		}))
	}
}
