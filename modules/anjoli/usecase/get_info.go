package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"golang.org/x/sync/errgroup"
)

type ContractInfo struct {
	AppAddress     entity.Address
	Status         entity.ContractStatus
	AssetID        uint64
	Asset          *entity.Asset
	RateDivisor    uint64
	ReserveBalance uint64
	Stats          entity.Stats
}

func (u *Usecase) GetInfo(ctx context.Context) (ContractInfo, error) {
	state, err := u.loadState(ctx, u.anjoliDg)
	if err != nil {
		return ContractInfo{}, errors.WithStack(err)
	}
	info := ContractInfo{
		AppAddress:  state.AppAddress,
		Status:      state.Status(),
		AssetID:     state.AssetID,
		RateDivisor: contract.RateDivisor,
	}
	if info.Status != entity.ContractStatusActive {
		return info, nil
	}

	var asset entity.Asset
	group, groupctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		result, err := u.anjoliDg.GetAsset(groupctx, state.AssetID)
		if err != nil {
			return errors.Wrap(err, "failed to get asset")
		}
		asset = result
		return nil
	})
	group.Go(func() error {
		balance, err := u.anjoliDg.GetHolding(groupctx, state.AssetID, state.AppAddress)
		if err != nil {
			return errors.Wrap(err, "failed to get reserve balance")
		}
		info.ReserveBalance = balance
		return nil
	})
	group.Go(func() error {
		stats, err := u.anjoliDg.GetStats(groupctx, state.AssetID)
		if err != nil {
			return errors.Wrap(err, "failed to get stats")
		}
		info.Stats = stats
		return nil
	})
	if err := group.Wait(); err != nil {
		return ContractInfo{}, errors.WithStack(err)
	}
	info.Asset = &asset
	return info, nil
}
