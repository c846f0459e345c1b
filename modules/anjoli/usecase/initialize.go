package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/modules/anjoli/datagateway"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
)

// Initialize mints the Anjoli Token and returns its asset id. Only the first successful call mints; later calls fail with contract.ErrAlreadyInitialized.
func (u *Usecase) Initialize(ctx context.Context) (uint64, error) {
	var assetID uint64
	err := u.invoke(ctx, entity.OperationInitialize, entity.TransferContext{}, func(ctx context.Context) error {
		return u.withTx(ctx, func(tx datagateway.AnjoliDataGatewayWithTx) error {
			state, err := u.loadState(ctx, tx)
			if err != nil {
				return errors.WithStack(err)
			}
			if err := u.contract.Initialize(ctx, tx, &state); err != nil {
				return errors.WithStack(err)
			}
			state.UpdatedAt = u.now()
			if err := tx.SaveContractState(ctx, state); err != nil {
				if errors.Is(err, entity.ErrAssetIDConflict) {
					// another instance minted first, the asset created above is rolled back with this unit
					return errors.Mark(errors.Wrap(err, "contract initialized concurrently"), contract.ErrAlreadyInitialized)
				}
				return errors.Wrap(err, "failed to save contract state")
			}
			assetID = state.AssetID
			return nil
		})
	})
	if err != nil {
		return 0, errors.WithStack(err)
	}
	logger.InfoContext(ctx, "asset minted", slogx.Uint64("assetId", assetID))
	return assetID, nil
}

// EnsureInitialized mints the asset unless it already exists, and returns its id.
func (u *Usecase) EnsureInitialized(ctx context.Context) (uint64, error) {
	assetID, err := u.GetAssetID(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if assetID != 0 {
		return assetID, nil
	}
	assetID, err = u.Initialize(ctx)
	if err != nil {
		if errors.Is(err, contract.ErrAlreadyInitialized) {
			return u.GetAssetID(ctx)
		}
		return 0, errors.WithStack(err)
	}
	return assetID, nil
}
