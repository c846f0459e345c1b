package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/gofiber/fiber/v2"
)

type initializeResult struct {
	AssetId uint64 `json:"assetId"`
}

type initializeResponse = common.HttpResponse[initializeResult]

func (h *HttpHandler) Initialize(ctx *fiber.Ctx) (err error) {
	assetId, err := h.usecase.Initialize(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during Initialize")
	}

	resp := initializeResponse{
		Result: &initializeResult{
			AssetId: assetId,
		},
	}

	return errors.WithStack(ctx.JSON(resp))
}
