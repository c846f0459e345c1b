package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/datagateway"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
)

var _ datagateway.AnjoliDataGateway = (*Repository)(nil)

// DefaultFirstAssetID is the id given to the first asset created in an empty store.
const DefaultFirstAssetID uint64 = 1

type database struct {
	// writer is held by an open transaction until Commit or Rollback, and briefly by writes outside a transaction.
	writer sync.Mutex

	mu               sync.RWMutex
	committed        *data
	assetCreationErr error
	clock            func() time.Time
}

// Repository is an in-process AnjoliDataGateway. Transactions are serialized and see a private copy of the store.
type Repository struct {
	db *database
	tx *data
}

type Option func(*database)

// WithFirstAssetID sets the id the ledger gives to the next created asset.
func WithFirstAssetID(id uint64) Option {
	return func(db *database) {
		db.committed.nextAssetID = id
	}
}

func WithClock(clock func() time.Time) Option {
	return func(db *database) {
		db.clock = clock
	}
}

func NewRepository(opts ...Option) *Repository {
	db := &database{
		committed: newData(DefaultFirstAssetID),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(db)
	}
	return &Repository{db: db}
}

// FailAssetCreation makes the ledger reject every asset creation with err until called again with nil.
func (r *Repository) FailAssetCreation(err error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.assetCreationErr = err
}

func (r *Repository) view(fn func(d *data) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return fn(r.db.committed)
}

func (r *Repository) update(fn func(d *data) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	r.db.writer.Lock()
	defer r.db.writer.Unlock()

	// apply to a copy so a failed write leaves nothing behind
	next := r.db.committed.clone()
	if err := fn(next); err != nil {
		return err
	}
	r.db.mu.Lock()
	r.db.committed = next
	r.db.mu.Unlock()
	return nil
}

func (r *Repository) GetContractState(ctx context.Context, appAddress entity.Address) (state entity.ContractState, err error) {
	err = r.view(func(d *data) error {
		state, err = d.getContractState(appAddress)
		return err
	})
	return state, errors.WithStack(err)
}

func (r *Repository) SaveContractState(ctx context.Context, state entity.ContractState) error {
	return errors.WithStack(r.update(func(d *data) error {
		return d.saveContractState(state)
	}))
}

func (r *Repository) GetAsset(ctx context.Context, assetID uint64) (asset entity.Asset, err error) {
	err = r.view(func(d *data) error {
		asset, err = d.getAsset(assetID)
		return err
	})
	return asset, errors.WithStack(err)
}

func (r *Repository) CreateAsset(ctx context.Context, params entity.AssetParams) (assetID uint64, err error) {
	r.db.mu.RLock()
	creationErr := r.db.assetCreationErr
	r.db.mu.RUnlock()
	if creationErr != nil {
		return 0, errors.WithStack(creationErr)
	}
	if params.Reserve.IsZero() {
		return 0, errors.Wrap(errs.InvalidArgument, "asset must have a reserve")
	}

	err = r.update(func(d *data) error {
		assetID = d.createAsset(params, r.db.clock())
		return nil
	})
	return assetID, errors.WithStack(err)
}

func (r *Repository) GetHolding(ctx context.Context, assetID uint64, holder entity.Address) (balance uint64, err error) {
	err = r.view(func(d *data) error {
		balance = d.holdings[holdingKey{assetID: assetID, holder: holder}]
		return nil
	})
	return balance, errors.WithStack(err)
}

func (r *Repository) TransferAsset(ctx context.Context, transfer entity.AssetTransfer) error {
	return errors.WithStack(r.update(func(d *data) error {
		return d.transferAsset(transfer)
	}))
}

func (r *Repository) CreatePayment(ctx context.Context, payment entity.Payment) error {
	return errors.WithStack(r.update(func(d *data) error {
		return d.createPayment(payment)
	}))
}

func (r *Repository) CreateDonation(ctx context.Context, donation entity.Donation) error {
	return errors.WithStack(r.update(func(d *data) error {
		if _, ok := d.payments[donation.PaymentID.String()]; !ok {
			return errors.Wrapf(errs.NotFound, "payment %s of donation", donation.PaymentID)
		}
		d.donations = append(d.donations, donation)
		return nil
	}))
}

func (r *Repository) GetDonationsBySender(ctx context.Context, sender entity.Address) (donations []entity.Donation, err error) {
	err = r.view(func(d *data) error {
		donations = d.donationsBySender(sender)
		return nil
	})
	return donations, errors.WithStack(err)
}

func (r *Repository) GetStats(ctx context.Context, assetID uint64) (stats entity.Stats, err error) {
	err = r.view(func(d *data) error {
		stats = d.stats(assetID)
		return nil
	})
	return stats, errors.WithStack(err)
}

func (r *Repository) CreateInvocation(ctx context.Context, invocation entity.Invocation) error {
	return errors.WithStack(r.update(func(d *data) error {
		d.invocations = append(d.invocations, invocation)
		return nil
	}))
}

func (r *Repository) GetInvocations(ctx context.Context, limit int32) (invocations []entity.Invocation, err error) {
	err = r.view(func(d *data) error {
		invocations = d.latestInvocations(limit)
		return nil
	})
	return invocations, errors.WithStack(err)
}
