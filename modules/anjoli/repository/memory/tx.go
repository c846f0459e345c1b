package memory

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/modules/anjoli/datagateway"
	"github.com/durgadao/anjoli-custody/pkg/logger"
)

var ErrTxAlreadyExists = errors.New("Transaction already exists. Call Commit() or Rollback() first.")

func (r *Repository) begin(ctx context.Context) (*Repository, error) {
	if r.tx != nil {
		return nil, errors.WithStack(ErrTxAlreadyExists)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	// blocks until the running transaction, if any, ends
	r.db.writer.Lock()

	r.db.mu.RLock()
	snapshot := r.db.committed.clone()
	r.db.mu.RUnlock()
	return &Repository{
		db: r.db,
		tx: snapshot,
	}, nil
}

func (r *Repository) BeginAnjoliTx(ctx context.Context) (datagateway.AnjoliDataGatewayWithTx, error) {
	repo, err := r.begin(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return repo, nil
}

func (r *Repository) Commit(ctx context.Context) error {
	if r.tx == nil {
		return nil
	}
	r.db.mu.Lock()
	r.db.committed = r.tx
	r.db.mu.Unlock()

	r.tx = nil
	r.db.writer.Unlock()
	return nil
}

func (r *Repository) Rollback(ctx context.Context) error {
	if r.tx == nil {
		return nil
	}
	r.tx = nil
	r.db.writer.Unlock()
	logger.DebugContext(ctx, "rolled back transaction")
	return nil
}
