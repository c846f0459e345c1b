package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/google/uuid"
)

// invoke runs one mutating call. Calls are serialized, and every call leaves an invocation record whether it committed or not.
// The status report of a committed call is sent after the next call may already run.
func (u *Usecase) invoke(ctx context.Context, op entity.Operation, txn entity.TransferContext, fn func(ctx context.Context) error) error {
	invocation := entity.Invocation{
		ID:        uuid.New(),
		Operation: op,
		Sender:    txn.Sender,
		Amount:    txn.Amount,
	}
	ctx = logger.WithContext(ctx,
		slogx.String(logger.OperationKey, string(op)),
		slogx.Stringer(logger.InvocationIDKey, invocation.ID),
	)

	duration, err := u.invokeLocked(ctx, &invocation, fn)
	if err != nil {
		if contract.IsContractError(err) {
			logger.InfoContext(ctx, "invocation aborted",
				slogx.String("code", invocation.ErrorCode),
				slogx.Error(err),
			)
			return errs.WrapPublic(err, publicMessage(err), invocation.ErrorCode)
		}
		logger.ErrorContext(ctx, "invocation failed", err)
		return errors.WithStack(err)
	}

	logger.InfoContext(ctx, "invocation committed", slogx.Duration("duration", duration))
	if err := u.Report(ctx); err != nil {
		logger.WarnContext(ctx, "failed to report contract status", slogx.Error(err))
	}
	return nil
}

// invokeLocked runs fn under the invocation lock and records its outcome.
func (u *Usecase) invokeLocked(ctx context.Context, invocation *entity.Invocation, fn func(ctx context.Context) error) (time.Duration, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	start := time.Now()
	err := fn(ctx)
	duration := time.Since(start)

	invocation.Success = err == nil
	invocation.ErrorCode = contract.ErrorCode(err)
	invocation.CreatedAt = u.now()
	u.metrics.observeInvocation(invocation.Operation, invocation.ErrorCode, duration)

	// the audit record outlives the rolled back unit and the caller's cancellation
	if auditErr := u.anjoliDg.CreateInvocation(context.WithoutCancel(ctx), *invocation); auditErr != nil {
		logger.WarnContext(ctx, "failed to record invocation", slogx.Error(auditErr))
	}
	return duration, err
}

// publicMessage returns the message of the contract error kind carried by err.
func publicMessage(err error) string {
	for _, kind := range []errs.ErrorKind{
		contract.ErrAssetCreationFailed,
		contract.ErrAlreadyInitialized,
		contract.ErrUninitializedAsset,
		contract.ErrInvalidRecipient,
		contract.ErrDonationTooSmall,
		contract.ErrReserveExhausted,
		errs.InvalidArgument,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return "internal error"
}

// Report sends the current contract status to the reporter, if any.
func (u *Usecase) Report(ctx context.Context) error {
	if u.reporter == nil {
		return nil
	}
	state, err := u.loadState(ctx, u.anjoliDg)
	if err != nil {
		return errors.WithStack(err)
	}
	var stats entity.Stats
	if state.AssetID != 0 {
		stats, err = u.anjoliDg.GetStats(ctx, state.AssetID)
		if err != nil {
			return errors.Wrap(err, "failed to get stats")
		}
	}
	logger.DebugContext(ctx, "Reporting contract status",
		slogx.Uint64("assetId", state.AssetID),
		slogx.Uint64("donationCount", stats.DonationCount),
		slogx.Uint128("valueReceived", stats.ValueReceived),
		slogx.Uint128("tokensDistributed", stats.TokensDistributed),
	)
	return errors.WithStack(u.reporter.ReportContract(ctx, state, stats))
}
