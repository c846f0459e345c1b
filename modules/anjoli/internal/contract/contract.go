package contract

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
)

const (
	AssetName     = "Anjoli Token"
	AssetUnitName = "ANJ"
	TotalSupply   = uint64(10_000_000)
	AssetDecimals = uint32(0)
)

// Host is the ledger surface the contract issues instructions to.
// Instructions are settled together with the invocation that issued them.
type Host interface {
	CreateAsset(ctx context.Context, params entity.AssetParams) (uint64, error)
	TransferAsset(ctx context.Context, transfer entity.AssetTransfer) error
}

// Contract holds the minting and exchange rules of a single contract instance.
// It keeps no state of its own, the caller passes the ContractState of the current invocation.
type Contract struct {
	address entity.Address
}

func New(address entity.Address) *Contract {
	return &Contract{address: address}
}

func (c *Contract) Address() entity.Address {
	return c.address
}

// AssetParams returns the creation request for the Anjoli Token, managed and reserved by the contract itself.
func (c *Contract) AssetParams() entity.AssetParams {
	return entity.AssetParams{
		Name:     AssetName,
		UnitName: AssetUnitName,
		Total:    TotalSupply,
		Decimals: AssetDecimals,
		Manager:  c.address,
		Reserve:  c.address,
		Fee:      0,
	}
}

// Initialize mints the asset and records its id into state.
// state is left untouched on error.
func (c *Contract) Initialize(ctx context.Context, host Host, state *entity.ContractState) error {
	if state.AssetID != 0 {
		return errors.Wrapf(ErrAlreadyInitialized, "asset %d", state.AssetID)
	}

	assetID, err := host.CreateAsset(ctx, c.AssetParams())
	if err != nil {
		return errors.Mark(errors.Wrap(err, "host rejected asset creation"), ErrAssetCreationFailed)
	}
	if assetID == 0 {
		return errors.Wrap(ErrAssetCreationFailed, "host returned a zero asset id")
	}

	state.AssetID = assetID
	return nil
}

// Donate exchanges the attached value transfer for asset units sent back to the sender.
func (c *Contract) Donate(ctx context.Context, host Host, state *entity.ContractState, txn entity.TransferContext) (entity.AssetTransfer, error) {
	if state.AssetID == 0 {
		return entity.AssetTransfer{}, errors.WithStack(ErrUninitializedAsset)
	}
	if txn.Receiver != c.address {
		return entity.AssetTransfer{}, errors.Wrapf(ErrInvalidRecipient, "expected %q, got %q", c.address, txn.Receiver)
	}

	tokens, err := TokensForAmount(txn.Amount)
	if err != nil {
		return entity.AssetTransfer{}, errors.WithStack(err)
	}

	transfer := entity.AssetTransfer{
		AssetID: state.AssetID,
		From:    c.address,
		To:      txn.Sender,
		Amount:  tokens,
		Fee:     0,
	}
	if err := host.TransferAsset(ctx, transfer); err != nil {
		if errors.Is(err, entity.ErrInsufficientBalance) {
			return entity.AssetTransfer{}, errors.Mark(errors.Wrapf(err, "reserve cannot cover %d units", tokens), ErrReserveExhausted)
		}
		return entity.AssetTransfer{}, errors.Wrap(err, "failed to transfer asset to donor")
	}
	return transfer, nil
}

// GetAssetID returns the minted asset id, 0 if not yet minted.
func (c *Contract) GetAssetID(state *entity.ContractState) uint64 {
	return state.AssetID
}
