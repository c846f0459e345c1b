package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
)

// GetAssetID returns the minted asset id, 0 if the asset is not yet minted.
func (u *Usecase) GetAssetID(ctx context.Context) (uint64, error) {
	state, err := u.loadState(ctx, u.anjoliDg)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return u.contract.GetAssetID(&state), nil
}
