package datagateway

import (
	"context"

	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
)

type AnjoliDataGateway interface {
	AnjoliReaderDataGateway
	AnjoliWriterDataGateway

	// BeginAnjoliTx returns a new AnjoliDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginAnjoliTx(ctx context.Context) (AnjoliDataGatewayWithTx, error)
}

type AnjoliDataGatewayWithTx interface {
	AnjoliDataGateway
	Tx
}

type AnjoliReaderDataGateway interface {
	// GetContractState returns errs.NotFound if the contract has never been invoked.
	GetContractState(ctx context.Context, appAddress entity.Address) (entity.ContractState, error)
	// GetAsset returns errs.NotFound if the asset does not exist.
	GetAsset(ctx context.Context, assetID uint64) (entity.Asset, error)
	// GetHolding returns 0 if the holder has never held the asset.
	GetHolding(ctx context.Context, assetID uint64, holder entity.Address) (uint64, error)
	GetDonationsBySender(ctx context.Context, sender entity.Address) ([]entity.Donation, error)
	GetStats(ctx context.Context, assetID uint64) (entity.Stats, error)
	GetInvocations(ctx context.Context, limit int32) ([]entity.Invocation, error)
}

type AnjoliWriterDataGateway interface {
	// SaveContractState creates or updates the state of the contract at state.AppAddress.
	// Returns entity.ErrAssetIDConflict if the stored asset id is nonzero and differs from state.AssetID.
	SaveContractState(ctx context.Context, state entity.ContractState) error
	// CreateAsset allocates a new asset id and credits the full supply to the reserve.
	CreateAsset(ctx context.Context, params entity.AssetParams) (uint64, error)
	// TransferAsset moves units between holdings. Returns entity.ErrInsufficientBalance if the sender holding is short.
	TransferAsset(ctx context.Context, transfer entity.AssetTransfer) error
	CreatePayment(ctx context.Context, payment entity.Payment) error
	CreateDonation(ctx context.Context, donation entity.Donation) error
	CreateInvocation(ctx context.Context, invocation entity.Invocation) error
}
