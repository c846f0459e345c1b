package postgres

import (
	"math"
	"math/big"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/durgadao/anjoli-custody/modules/anjoli/repository/postgres/gen"
	"github.com/gaze-network/uint128"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
)

func uint128FromNumeric(src pgtype.Numeric) (*uint128.Uint128, error) {
	if !src.Valid {
		return nil, nil
	}
	bytes, err := src.MarshalJSON()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	result, err := uint128.FromString(string(bytes))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &result, nil
}

func numericFromUint128(src *uint128.Uint128) (pgtype.Numeric, error) {
	if src == nil {
		return pgtype.Numeric{}, nil
	}
	bytes := []byte(src.String())
	var result pgtype.Numeric
	err := result.UnmarshalJSON(bytes)
	if err != nil {
		return pgtype.Numeric{}, errors.WithStack(err)
	}
	return result, nil
}

func uint64FromNumeric(src pgtype.Numeric) (uint64, error) {
	u128, err := uint128FromNumeric(src)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if u128 == nil {
		return 0, nil
	}
	b := u128.Big()
	if !b.IsUint64() {
		return 0, errors.Wrapf(errs.OverflowUint64, "numeric %s", b)
	}
	return b.Uint64(), nil
}

func numericFromUint64(src uint64) pgtype.Numeric {
	return pgtype.Numeric{Int: new(big.Int).SetUint64(src), Valid: true}
}

// assetIDToInt64 guards the BIGINT primary key of assets.
func assetIDToInt64(assetID uint64) (int64, error) {
	if assetID > math.MaxInt64 {
		return 0, errors.Wrapf(errs.InvalidArgument, "asset id %d exceeds BIGINT", assetID)
	}
	return int64(assetID), nil
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func mapContractStateModelToType(src gen.AnjoliContractState) entity.ContractState {
	return entity.ContractState{
		AppAddress: entity.Address(src.AppAddress),
		AssetID:    uint64(src.AssetID),
		CreatedAt:  src.CreatedAt.Time.UTC(),
		UpdatedAt:  src.UpdatedAt.Time.UTC(),
	}
}

func mapContractStateTypeToParams(src entity.ContractState) (gen.UpsertContractStateParams, error) {
	assetID, err := assetIDToInt64(src.AssetID)
	if err != nil {
		return gen.UpsertContractStateParams{}, errors.WithStack(err)
	}
	return gen.UpsertContractStateParams{
		AppAddress: src.AppAddress.String(),
		AssetID:    assetID,
		CreatedAt:  timestamptz(src.CreatedAt),
		UpdatedAt:  timestamptz(src.UpdatedAt),
	}, nil
}

func mapAssetModelToType(src gen.AnjoliAsset) (entity.Asset, error) {
	total, err := uint64FromNumeric(src.Total)
	if err != nil {
		return entity.Asset{}, errors.Wrap(err, "failed to parse total")
	}
	fee, err := uint64FromNumeric(src.Fee)
	if err != nil {
		return entity.Asset{}, errors.Wrap(err, "failed to parse fee")
	}
	return entity.Asset{
		ID: uint64(src.ID),
		AssetParams: entity.AssetParams{
			Name:     src.Name,
			UnitName: src.UnitName,
			Total:    total,
			Decimals: uint32(src.Decimals),
			Manager:  entity.Address(src.Manager),
			Reserve:  entity.Address(src.Reserve),
			Fee:      fee,
		},
		CreatedAt: src.CreatedAt.Time.UTC(),
	}, nil
}

func mapAssetParamsToParams(src entity.AssetParams) (gen.CreateAssetParams, error) {
	if src.Decimals > math.MaxInt32 {
		return gen.CreateAssetParams{}, errors.Wrapf(errs.InvalidArgument, "decimals %d", src.Decimals)
	}
	return gen.CreateAssetParams{
		Name:     src.Name,
		UnitName: src.UnitName,
		Total:    numericFromUint64(src.Total),
		Decimals: int32(src.Decimals),
		Manager:  src.Manager.String(),
		Reserve:  src.Reserve.String(),
		Fee:      numericFromUint64(src.Fee),
	}, nil
}

func mapPaymentTypeToParams(src entity.Payment) gen.CreatePaymentParams {
	return gen.CreatePaymentParams{
		ID:        pgUUID(src.ID),
		Sender:    src.Sender.String(),
		Receiver:  src.Receiver.String(),
		Amount:    numericFromUint64(src.Amount),
		CreatedAt: timestamptz(src.CreatedAt),
	}
}

func mapDonationTypeToParams(src entity.Donation) (gen.CreateDonationParams, error) {
	assetID, err := assetIDToInt64(src.AssetID)
	if err != nil {
		return gen.CreateDonationParams{}, errors.WithStack(err)
	}
	return gen.CreateDonationParams{
		ID:        pgUUID(src.ID),
		PaymentID: pgUUID(src.PaymentID),
		AssetID:   assetID,
		Sender:    src.Sender.String(),
		Amount:    numericFromUint64(src.Amount),
		Tokens:    numericFromUint64(src.Tokens),
		CreatedAt: timestamptz(src.CreatedAt),
	}, nil
}

func mapDonationModelToType(src gen.AnjoliDonation) (entity.Donation, error) {
	amount, err := uint64FromNumeric(src.Amount)
	if err != nil {
		return entity.Donation{}, errors.Wrap(err, "failed to parse amount")
	}
	tokens, err := uint64FromNumeric(src.Tokens)
	if err != nil {
		return entity.Donation{}, errors.Wrap(err, "failed to parse tokens")
	}
	return entity.Donation{
		ID:        uuid.UUID(src.ID.Bytes),
		PaymentID: uuid.UUID(src.PaymentID.Bytes),
		AssetID:   uint64(src.AssetID),
		Sender:    entity.Address(src.Sender),
		Amount:    amount,
		Tokens:    tokens,
		CreatedAt: src.CreatedAt.Time.UTC(),
	}, nil
}

func mapDonationModelsToTypes(srcs []gen.AnjoliDonation) ([]entity.Donation, error) {
	donations := make([]entity.Donation, 0, len(srcs))
	for _, src := range srcs {
		donation, err := mapDonationModelToType(src)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		donations = append(donations, donation)
	}
	return donations, nil
}

func mapDonationStatsRowToType(src gen.GetDonationStatsRow) (entity.Stats, error) {
	valueReceived, err := uint128FromNumeric(src.ValueReceived)
	if err != nil {
		return entity.Stats{}, errors.Wrap(err, "failed to parse value received")
	}
	tokensDistributed, err := uint128FromNumeric(src.TokensDistributed)
	if err != nil {
		return entity.Stats{}, errors.Wrap(err, "failed to parse tokens distributed")
	}
	return entity.Stats{
		DonationCount:     uint64(src.DonationCount),
		ValueReceived:     lo.FromPtr(valueReceived),
		TokensDistributed: lo.FromPtr(tokensDistributed),
	}, nil
}

func mapInvocationTypeToParams(src entity.Invocation) gen.CreateInvocationParams {
	return gen.CreateInvocationParams{
		ID:        pgUUID(src.ID),
		Operation: string(src.Operation),
		Sender:    src.Sender.String(),
		Amount:    numericFromUint64(src.Amount),
		Success:   src.Success,
		ErrorCode: src.ErrorCode,
		CreatedAt: timestamptz(src.CreatedAt),
	}
}

func mapInvocationModelToType(src gen.AnjoliInvocation) (entity.Invocation, error) {
	amount, err := uint64FromNumeric(src.Amount)
	if err != nil {
		return entity.Invocation{}, errors.Wrap(err, "failed to parse amount")
	}
	return entity.Invocation{
		ID:        uuid.UUID(src.ID.Bytes),
		Operation: entity.Operation(src.Operation),
		Sender:    entity.Address(src.Sender),
		Amount:    amount,
		Success:   src.Success,
		ErrorCode: src.ErrorCode,
		CreatedAt: src.CreatedAt.Time.UTC(),
	}, nil
}
