package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/datagateway"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/durgadao/anjoli-custody/modules/anjoli/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
)

var _ datagateway.AnjoliDataGateway = (*Repository)(nil)

const defaultInvocationsLimit = 1000

func (r *Repository) GetContractState(ctx context.Context, appAddress entity.Address) (entity.ContractState, error) {
	model, err := r.queries.GetContractState(ctx, appAddress.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ContractState{}, errors.WithStack(errs.NotFound)
		}
		return entity.ContractState{}, errors.Wrap(err, "error during query")
	}
	return mapContractStateModelToType(model), nil
}

func (r *Repository) SaveContractState(ctx context.Context, state entity.ContractState) error {
	params, err := mapContractStateTypeToParams(state)
	if err != nil {
		return errors.Wrap(err, "failed to map contract state to params")
	}
	affected, err := r.queries.UpsertContractState(ctx, params)
	if err != nil {
		return errors.Wrap(err, "error during exec")
	}
	if affected == 0 {
		return errors.Wrapf(entity.ErrAssetIDConflict, "contract %s, asset %d", state.AppAddress, state.AssetID)
	}
	return nil
}

func (r *Repository) CreateAsset(ctx context.Context, params entity.AssetParams) (uint64, error) {
	if params.Reserve.IsZero() {
		return 0, errors.Wrap(errs.InvalidArgument, "asset must have a reserve")
	}
	createParams, err := mapAssetParamsToParams(params)
	if err != nil {
		return 0, errors.Wrap(err, "failed to map asset params")
	}

	var assetID int64
	err = r.atomic(ctx, func(q *gen.Queries) error {
		assetID, err = q.CreateAsset(ctx, createParams)
		if err != nil {
			return errors.Wrap(err, "failed to create asset")
		}
		err = q.CreditHolding(ctx, gen.CreditHoldingParams{
			AssetID: assetID,
			Holder:  params.Reserve.String(),
			Balance: numericFromUint64(params.Total),
		})
		if err != nil {
			return errors.Wrap(err, "failed to credit supply to reserve")
		}
		return nil
	})
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return uint64(assetID), nil
}

func (r *Repository) GetAsset(ctx context.Context, assetID uint64) (entity.Asset, error) {
	id, err := assetIDToInt64(assetID)
	if err != nil {
		return entity.Asset{}, errors.WithStack(err)
	}
	model, err := r.queries.GetAsset(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Asset{}, errors.Wrapf(errs.NotFound, "asset %d", assetID)
		}
		return entity.Asset{}, errors.Wrap(err, "error during query")
	}
	asset, err := mapAssetModelToType(model)
	if err != nil {
		return entity.Asset{}, errors.Wrap(err, "failed to parse asset model")
	}
	return asset, nil
}

func (r *Repository) GetHolding(ctx context.Context, assetID uint64, holder entity.Address) (uint64, error) {
	id, err := assetIDToInt64(assetID)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	balance, err := r.queries.GetHolding(ctx, gen.GetHoldingParams{
		AssetID: id,
		Holder:  holder.String(),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "error during query")
	}
	result, err := uint64FromNumeric(balance)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse balance")
	}
	return result, nil
}

func (r *Repository) TransferAsset(ctx context.Context, transfer entity.AssetTransfer) error {
	id, err := assetIDToInt64(transfer.AssetID)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := r.GetAsset(ctx, transfer.AssetID); err != nil {
		return errors.WithStack(err)
	}

	amount := numericFromUint64(transfer.Amount)
	err = r.atomic(ctx, func(q *gen.Queries) error {
		affected, err := q.DebitHolding(ctx, gen.DebitHoldingParams{
			Amount:  amount,
			AssetID: id,
			Holder:  transfer.From.String(),
		})
		if err != nil {
			return errors.Wrap(err, "failed to debit holding")
		}
		if affected == 0 {
			return errors.Wrapf(entity.ErrInsufficientBalance, "%s cannot cover %d units of asset %d", transfer.From, transfer.Amount, transfer.AssetID)
		}
		err = q.CreditHolding(ctx, gen.CreditHoldingParams{
			AssetID: id,
			Holder:  transfer.To.String(),
			Balance: amount,
		})
		if err != nil {
			return errors.Wrap(err, "failed to credit holding")
		}
		return nil
	})
	return errors.WithStack(err)
}

func (r *Repository) CreatePayment(ctx context.Context, payment entity.Payment) error {
	if err := r.queries.CreatePayment(ctx, mapPaymentTypeToParams(payment)); err != nil {
		return wrapWriteError(err, "failed to create payment")
	}
	return nil
}

func (r *Repository) CreateDonation(ctx context.Context, donation entity.Donation) error {
	params, err := mapDonationTypeToParams(donation)
	if err != nil {
		return errors.Wrap(err, "failed to map donation to params")
	}
	if err := r.queries.CreateDonation(ctx, params); err != nil {
		return wrapWriteError(err, "failed to create donation")
	}
	return nil
}

func (r *Repository) GetDonationsBySender(ctx context.Context, sender entity.Address) ([]entity.Donation, error) {
	models, err := r.queries.GetDonationsBySender(ctx, sender.String())
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	donations, err := mapDonationModelsToTypes(models)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse donation models")
	}
	return donations, nil
}

func (r *Repository) GetStats(ctx context.Context, assetID uint64) (entity.Stats, error) {
	id, err := assetIDToInt64(assetID)
	if err != nil {
		return entity.Stats{}, errors.WithStack(err)
	}
	row, err := r.queries.GetDonationStats(ctx, id)
	if err != nil {
		return entity.Stats{}, errors.Wrap(err, "error during query")
	}
	stats, err := mapDonationStatsRowToType(row)
	if err != nil {
		return entity.Stats{}, errors.Wrap(err, "failed to parse donation stats")
	}
	return stats, nil
}

func (r *Repository) CreateInvocation(ctx context.Context, invocation entity.Invocation) error {
	if err := r.queries.CreateInvocation(ctx, mapInvocationTypeToParams(invocation)); err != nil {
		return wrapWriteError(err, "failed to create invocation")
	}
	return nil
}

func (r *Repository) GetInvocations(ctx context.Context, limit int32) ([]entity.Invocation, error) {
	if limit <= 0 {
		limit = defaultInvocationsLimit
	}
	models, err := r.queries.GetLatestInvocations(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	invocations := make([]entity.Invocation, 0, len(models))
	for _, model := range models {
		invocation, err := mapInvocationModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse invocation model")
		}
		invocations = append(invocations, invocation)
	}
	return invocations, nil
}
