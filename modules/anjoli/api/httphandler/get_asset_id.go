package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/gofiber/fiber/v2"
)

type getAssetIdResult struct {
	AssetId uint64 `json:"assetId"`
}

type getAssetIdResponse = common.HttpResponse[getAssetIdResult]

// GetAssetId returns the minted asset id, 0 while the contract is uninitialized.
func (h *HttpHandler) GetAssetId(ctx *fiber.Ctx) (err error) {
	assetId, err := h.usecase.GetAssetID(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetAssetID")
	}

	resp := getAssetIdResponse{
		Result: &getAssetIdResult{
			AssetId: assetId,
		},
	}

	return errors.WithStack(ctx.JSON(resp))
}
