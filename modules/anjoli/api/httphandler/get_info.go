package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/pkg/decimals"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type assetInfo struct {
	Id       uint64 `json:"id"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
	Total    uint64 `json:"total"`
	Decimals uint32 `json:"decimals"`
	Manager  string `json:"manager"`
	Reserve  string `json:"reserve"`
}

type getInfoResult struct {
	AppAddress  string     `json:"appAddress"`
	Network     string     `json:"network"`
	Status      string     `json:"status"`
	AssetId     uint64     `json:"assetId"`
	Asset       *assetInfo `json:"asset"`
	RateDivisor uint64     `json:"rateDivisor"`

	// TokenPrice is the value of one asset unit in whole native units.
	TokenPrice decimal.Decimal `json:"tokenPrice"`

	RemainingSupply uint64 `json:"remainingSupply"`
	DonationCount   uint64 `json:"donationCount"`

	// Cumulative sums can exceed uint64 and are rendered as decimal strings.
	ValueReceived     string          `json:"valueReceived"`
	ValueReceivedUnit decimal.Decimal `json:"valueReceivedUnit"`
	TokensDistributed string          `json:"tokensDistributed"`
}

type getInfoResponse = common.HttpResponse[getInfoResult]

func (h *HttpHandler) GetInfo(ctx *fiber.Ctx) (err error) {
	info, err := h.usecase.GetInfo(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetInfo")
	}

	result := getInfoResult{
		AppAddress:        info.AppAddress.String(),
		Network:           h.network.String(),
		Status:            string(info.Status),
		AssetId:           info.AssetID,
		RateDivisor:       info.RateDivisor,
		TokenPrice:        decimals.ToDecimal(info.RateDivisor, contract.NativeDecimals),
		RemainingSupply:   info.ReserveBalance,
		DonationCount:     info.Stats.DonationCount,
		ValueReceived:     info.Stats.ValueReceived.String(),
		ValueReceivedUnit: decimals.ToDecimal(info.Stats.ValueReceived, contract.NativeDecimals),
		TokensDistributed: info.Stats.TokensDistributed.String(),
	}
	if info.Asset != nil {
		result.Asset = &assetInfo{
			Id:       info.Asset.ID,
			Name:     info.Asset.Name,
			UnitName: info.Asset.UnitName,
			Total:    info.Asset.Total,
			Decimals: info.Asset.Decimals,
			Manager:  info.Asset.Manager.String(),
			Reserve:  info.Asset.Reserve.String(),
		}
	}

	return errors.WithStack(ctx.JSON(getInfoResponse{Result: &result}))
}
