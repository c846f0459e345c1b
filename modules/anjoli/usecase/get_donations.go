package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
)

func (u *Usecase) GetDonationsBySender(ctx context.Context, sender entity.Address) ([]entity.Donation, error) {
	donations, err := u.anjoliDg.GetDonationsBySender(ctx, sender)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get donations by sender")
	}
	return donations, nil
}

func (u *Usecase) GetInvocations(ctx context.Context, limit int32) ([]entity.Invocation, error) {
	invocations, err := u.anjoliDg.GetInvocations(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get invocations")
	}
	return invocations, nil
}
