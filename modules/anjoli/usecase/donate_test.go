package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/datagateway/mocks"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDonateCommits(t *testing.T) {
	ctx := context.Background()
	mockDg := mocks.NewAnjoliDataGatewayWithTx(t)
	mockDgTx := mocks.NewAnjoliDataGatewayWithTx(t)
	u, err := New(mockDg, appAddress)
	require.NoError(t, err)

	mockDg.EXPECT().BeginAnjoliTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetContractState(mock.Anything, appAddress).Return(entity.ContractState{AppAddress: appAddress, AssetID: 12345}, nil)
	mockDgTx.EXPECT().CreatePayment(mock.Anything, mock.MatchedBy(func(payment entity.Payment) bool {
		return payment.Sender == donor && payment.Receiver == appAddress && payment.Amount == 1_000_000
	})).Return(nil)
	mockDgTx.EXPECT().TransferAsset(mock.Anything, entity.AssetTransfer{
		AssetID: 12345,
		From:    appAddress,
		To:      donor,
		Amount:  10,
	}).Return(nil)
	mockDgTx.EXPECT().CreateDonation(mock.Anything, mock.MatchedBy(func(donation entity.Donation) bool {
		return donation.Tokens == 10 && donation.AssetID == 12345
	})).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)
	mockDg.EXPECT().CreateInvocation(mock.Anything, mock.MatchedBy(func(invocation entity.Invocation) bool {
		return invocation.Success && invocation.Operation == entity.OperationDonate
	})).Return(nil)

	d, err := u.Donate(ctx, donation(1_000_000))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), d.Tokens)
}

func TestDonateRollsBack(t *testing.T) {
	testcases := []struct {
		name        string
		state       entity.ContractState
		stateErr    error
		txn         entity.TransferContext
		expectedErr error
		code        string
	}{
		{
			name:        "uninitialized",
			stateErr:    errors.WithStack(errs.NotFound),
			txn:         donation(1_000_000),
			expectedErr: contract.ErrUninitializedAsset,
			code:        contract.CodeUninitializedAsset,
		},
		{
			name:        "invalid recipient",
			state:       entity.ContractState{AppAddress: appAddress, AssetID: 12345},
			txn:         entity.TransferContext{Sender: donor, Receiver: "ELSEWHERE", Amount: 1_000_000},
			expectedErr: contract.ErrInvalidRecipient,
			code:        contract.CodeInvalidRecipient,
		},
		{
			name:        "too small",
			state:       entity.ContractState{AppAddress: appAddress, AssetID: 12345},
			txn:         donation(99_999),
			expectedErr: contract.ErrDonationTooSmall,
			code:        contract.CodeDonationTooSmall,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			mockDg := mocks.NewAnjoliDataGatewayWithTx(t)
			mockDgTx := mocks.NewAnjoliDataGatewayWithTx(t)
			u, err := New(mockDg, appAddress)
			require.NoError(t, err)

			mockDg.EXPECT().BeginAnjoliTx(mock.Anything).Return(mockDgTx, nil)
			mockDgTx.EXPECT().GetContractState(mock.Anything, appAddress).Return(tc.state, tc.stateErr)
			mockDgTx.EXPECT().CreatePayment(mock.Anything, mock.Anything).Return(nil)
			mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)
			mockDg.EXPECT().CreateInvocation(mock.Anything, mock.MatchedBy(func(invocation entity.Invocation) bool {
				return !invocation.Success && invocation.ErrorCode == tc.code
			})).Return(nil)

			_, err = u.Donate(ctx, tc.txn)
			assert.ErrorIs(t, err, tc.expectedErr)

			mockDgTx.AssertNotCalled(t, "TransferAsset", mock.Anything, mock.Anything)
			mockDgTx.AssertNotCalled(t, "CreateDonation", mock.Anything, mock.Anything)
			mockDgTx.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestDonateCommitFailure(t *testing.T) {
	ctx := context.Background()
	mockDg := mocks.NewAnjoliDataGatewayWithTx(t)
	mockDgTx := mocks.NewAnjoliDataGatewayWithTx(t)
	u, err := New(mockDg, appAddress)
	require.NoError(t, err)

	commitErr := errors.New("connection reset")
	mockDg.EXPECT().BeginAnjoliTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetContractState(mock.Anything, appAddress).Return(entity.ContractState{AppAddress: appAddress, AssetID: 12345}, nil)
	mockDgTx.EXPECT().CreatePayment(mock.Anything, mock.Anything).Return(nil)
	mockDgTx.EXPECT().TransferAsset(mock.Anything, mock.Anything).Return(nil)
	mockDgTx.EXPECT().CreateDonation(mock.Anything, mock.Anything).Return(nil)
	mockDgTx.EXPECT().Commit(mock.Anything).Return(commitErr)
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)
	mockDg.EXPECT().CreateInvocation(mock.Anything, mock.MatchedBy(func(invocation entity.Invocation) bool {
		return !invocation.Success && invocation.ErrorCode == contract.CodeInternal
	})).Return(nil)

	_, err = u.Donate(ctx, donation(1_000_000))
	assert.ErrorIs(t, err, commitErr)
	_, isPublic := errs.AsPublicError(err)
	assert.False(t, isPublic)
}
