package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/datagateway/mocks"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/durgadao/anjoli-custody/modules/anjoli/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitializeConflictRollsBack(t *testing.T) {
	ctx := context.Background()
	mockDg := mocks.NewAnjoliDataGatewayWithTx(t)
	mockDgTx := mocks.NewAnjoliDataGatewayWithTx(t)
	u, err := New(mockDg, appAddress)
	require.NoError(t, err)

	// the state was read before another instance committed its mint
	mockDg.EXPECT().BeginAnjoliTx(mock.Anything).Return(mockDgTx, nil)
	mockDgTx.EXPECT().GetContractState(mock.Anything, appAddress).Return(entity.ContractState{}, errors.WithStack(errs.NotFound))
	mockDgTx.EXPECT().CreateAsset(mock.Anything, mock.Anything).Return(2, nil)
	mockDgTx.EXPECT().SaveContractState(mock.Anything, mock.MatchedBy(func(state entity.ContractState) bool {
		return state.AssetID == 2
	})).Return(errors.Wrap(entity.ErrAssetIDConflict, "contract holds asset 1"))
	mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)
	mockDg.EXPECT().CreateInvocation(mock.Anything, mock.MatchedBy(func(invocation entity.Invocation) bool {
		return !invocation.Success && invocation.ErrorCode == contract.CodeAlreadyInitialized
	})).Return(nil)

	_, err = u.Initialize(ctx)
	assert.ErrorIs(t, err, contract.ErrAlreadyInitialized)
	publicErr, ok := errs.AsPublicError(err)
	require.True(t, ok)
	assert.Equal(t, contract.CodeAlreadyInitialized, publicErr.Code())
	mockDgTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConcurrentInitializeSharedStore(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(memory.WithFirstAssetID(12345))

	// separate instances share nothing but the store
	const instances = 4
	results := make([]uint64, instances)
	errList := make([]error, instances)
	var wg sync.WaitGroup
	for i := range instances {
		u := newTestUsecase(t, repo)
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errList[i] = u.Initialize(ctx)
		}()
	}
	wg.Wait()

	minted := 0
	for i, err := range errList {
		if err == nil {
			minted++
			assert.Equal(t, uint64(12345), results[i])
			continue
		}
		assert.ErrorIs(t, err, contract.ErrAlreadyInitialized)
	}
	assert.Equal(t, 1, minted)

	u := newTestUsecase(t, repo)
	assetID, err := u.GetAssetID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), assetID)
	_, err = repo.GetAsset(ctx, 12346)
	assert.ErrorIs(t, err, errs.NotFound)
}
