package memory

import (
	"maps"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
)

type holdingKey struct {
	assetID uint64
	holder  entity.Address
}

// data is one version of the whole store. Transactions work on a clone and replace the committed version on commit.
type data struct {
	nextAssetID uint64
	states      map[entity.Address]entity.ContractState
	assets      map[uint64]entity.Asset
	holdings    map[holdingKey]uint64
	payments    map[string]entity.Payment
	donations   []entity.Donation
	invocations []entity.Invocation
}

func newData(firstAssetID uint64) *data {
	return &data{
		nextAssetID: firstAssetID,
		states:      make(map[entity.Address]entity.ContractState),
		assets:      make(map[uint64]entity.Asset),
		holdings:    make(map[holdingKey]uint64),
		payments:    make(map[string]entity.Payment),
	}
}

func (d *data) clone() *data {
	return &data{
		nextAssetID: d.nextAssetID,
		states:      maps.Clone(d.states),
		assets:      maps.Clone(d.assets),
		holdings:    maps.Clone(d.holdings),
		payments:    maps.Clone(d.payments),
		donations:   slices.Clone(d.donations),
		invocations: slices.Clone(d.invocations),
	}
}

func (d *data) getContractState(appAddress entity.Address) (entity.ContractState, error) {
	state, ok := d.states[appAddress]
	if !ok {
		return entity.ContractState{}, errors.Wrapf(errs.NotFound, "contract state of %s", appAddress)
	}
	return state, nil
}

func (d *data) saveContractState(state entity.ContractState) error {
	if state.AppAddress.IsZero() {
		return errors.Wrap(errs.InvalidArgument, "empty app address")
	}
	if stored, ok := d.states[state.AppAddress]; ok && stored.AssetID != 0 && stored.AssetID != state.AssetID {
		return errors.Wrapf(entity.ErrAssetIDConflict, "contract %s holds asset %d, got %d", state.AppAddress, stored.AssetID, state.AssetID)
	}
	d.states[state.AppAddress] = state
	return nil
}

func (d *data) getAsset(assetID uint64) (entity.Asset, error) {
	asset, ok := d.assets[assetID]
	if !ok {
		return entity.Asset{}, errors.Wrapf(errs.NotFound, "asset %d", assetID)
	}
	return asset, nil
}

func (d *data) createAsset(params entity.AssetParams, createdAt time.Time) uint64 {
	id := d.nextAssetID
	d.nextAssetID++

	d.assets[id] = entity.Asset{
		ID:          id,
		AssetParams: params,
		CreatedAt:   createdAt,
	}
	d.holdings[holdingKey{assetID: id, holder: params.Reserve}] = params.Total
	return id
}

func (d *data) transferAsset(transfer entity.AssetTransfer) error {
	if _, err := d.getAsset(transfer.AssetID); err != nil {
		return errors.WithStack(err)
	}
	fromKey := holdingKey{assetID: transfer.AssetID, holder: transfer.From}
	toKey := holdingKey{assetID: transfer.AssetID, holder: transfer.To}

	balance := d.holdings[fromKey]
	if balance < transfer.Amount {
		return errors.Wrapf(entity.ErrInsufficientBalance, "%s holds %d, transfer requires %d", transfer.From, balance, transfer.Amount)
	}
	d.holdings[fromKey] = balance - transfer.Amount
	d.holdings[toKey] += transfer.Amount
	return nil
}

func (d *data) createPayment(payment entity.Payment) error {
	key := payment.ID.String()
	if _, ok := d.payments[key]; ok {
		return errors.Wrapf(errs.Conflict, "payment %s already exists", key)
	}
	d.payments[key] = payment
	return nil
}

func (d *data) donationsBySender(sender entity.Address) []entity.Donation {
	result := make([]entity.Donation, 0)
	for _, donation := range d.donations {
		if donation.Sender == sender {
			result = append(result, donation)
		}
	}
	return result
}

func (d *data) stats(assetID uint64) entity.Stats {
	var stats entity.Stats
	for _, donation := range d.donations {
		if donation.AssetID != assetID {
			continue
		}
		stats.DonationCount++
		stats.ValueReceived = stats.ValueReceived.Add64(donation.Amount)
		stats.TokensDistributed = stats.TokensDistributed.Add64(donation.Tokens)
	}
	return stats
}

// latestInvocations orders by CreatedAt, newest first, and by insertion within the same instant.
func (d *data) latestInvocations(limit int32) []entity.Invocation {
	result := slices.Clone(d.invocations)
	slices.Reverse(result)
	slices.SortStableFunc(result, func(a, b entity.Invocation) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && int(limit) < len(result) {
		result = result[:limit]
	}
	return result
}
