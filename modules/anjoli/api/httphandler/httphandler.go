package httphandler

import (
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/durgadao/anjoli-custody/modules/anjoli/usecase"
	"github.com/google/uuid"
)

type HttpHandler struct {
	usecase *usecase.Usecase
	network common.Network
}

func New(network common.Network, usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
		network: network,
	}
}

type donation struct {
	Id        uuid.UUID `json:"id"`
	PaymentId uuid.UUID `json:"paymentId"`
	AssetId   uint64    `json:"assetId"`
	Sender    string    `json:"sender"`
	Amount    uint64    `json:"amount"`
	Tokens    uint64    `json:"tokens"`
	Timestamp int64     `json:"timestamp"`
}

func mapDonation(d entity.Donation) donation {
	return donation{
		Id:        d.ID,
		PaymentId: d.PaymentID,
		AssetId:   d.AssetID,
		Sender:    d.Sender.String(),
		Amount:    d.Amount,
		Tokens:    d.Tokens,
		Timestamp: d.CreatedAt.Unix(),
	}
}
