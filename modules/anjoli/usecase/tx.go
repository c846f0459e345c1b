package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/datagateway"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
)

// withTx runs fn as one atomic unit. Nothing fn writes is persisted unless fn returns nil and the commit succeeds.
func (u *Usecase) withTx(ctx context.Context, fn func(tx datagateway.AnjoliDataGatewayWithTx) error) (err error) {
	tx, err := u.anjoliDg.BeginAnjoliTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			logger.PanicContext(ctx, "failed to rollback transaction", slogx.Error(rollbackErr))
		}
	}()

	if err := fn(tx); err != nil {
		return errors.WithStack(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// loadState returns the persisted contract state, or a fresh uninitialized one if the contract has never been invoked.
func (u *Usecase) loadState(ctx context.Context, dg datagateway.AnjoliReaderDataGateway) (entity.ContractState, error) {
	state, err := dg.GetContractState(ctx, u.contract.Address())
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			now := u.now()
			return entity.ContractState{
				AppAddress: u.contract.Address(),
				CreatedAt:  now,
				UpdatedAt:  now,
			}, nil
		}
		return entity.ContractState{}, errors.Wrap(err, "failed to get contract state")
	}
	return state, nil
}
