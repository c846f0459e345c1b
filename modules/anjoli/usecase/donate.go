package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/datagateway"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/google/uuid"
)

// Donate settles the inbound value transfer and sends the donor their asset units as one atomic unit.
// On any error neither the payment nor the asset transfer is persisted.
func (u *Usecase) Donate(ctx context.Context, txn entity.TransferContext) (entity.Donation, error) {
	if txn.Sender.IsZero() {
		return entity.Donation{}, errs.WrapPublic(errors.Wrap(errs.InvalidArgument, "empty sender"), "sender is required", contract.CodeInvalidArgument)
	}

	var donation entity.Donation
	err := u.invoke(ctx, entity.OperationDonate, txn, func(ctx context.Context) error {
		return u.withTx(ctx, func(tx datagateway.AnjoliDataGatewayWithTx) error {
			state, err := u.loadState(ctx, tx)
			if err != nil {
				return errors.WithStack(err)
			}

			now := u.now()
			payment := entity.Payment{
				ID:        uuid.New(),
				Sender:    txn.Sender,
				Receiver:  txn.Receiver,
				Amount:    txn.Amount,
				CreatedAt: now,
			}
			if err := tx.CreatePayment(ctx, payment); err != nil {
				return errors.Wrap(err, "failed to record inbound payment")
			}

			transfer, err := u.contract.Donate(ctx, tx, &state, txn)
			if err != nil {
				return errors.WithStack(err)
			}

			donation = entity.Donation{
				ID:        uuid.New(),
				PaymentID: payment.ID,
				AssetID:   transfer.AssetID,
				Sender:    txn.Sender,
				Amount:    txn.Amount,
				Tokens:    transfer.Amount,
				CreatedAt: now,
			}
			if err := tx.CreateDonation(ctx, donation); err != nil {
				return errors.Wrap(err, "failed to record donation")
			}
			return nil
		})
	})
	if err != nil {
		return entity.Donation{}, errors.WithStack(err)
	}
	u.metrics.observeDonation(donation)
	return donation, nil
}
