package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/internal/postgres"
	"github.com/durgadao/anjoli-custody/modules/anjoli/repository/postgres/gen"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
	tx      pgx.Tx
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}

// atomic runs fn in the current transaction, or in a short-lived one if none is active.
func (r *Repository) atomic(ctx context.Context, fn func(q *gen.Queries) error) error {
	if r.tx != nil {
		return fn(r.queries)
	}
	tx, err := r.begin(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback transaction", slogx.Error(err))
		}
	}()
	if err := fn(tx.queries); err != nil {
		return err
	}
	return errors.WithStack(tx.Commit(ctx))
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// wrapWriteError maps constraint violations to error kinds.
func wrapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.Wrapf(errs.Conflict, "%s: %s", msg, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return errors.Wrapf(errs.NotFound, "%s: %s", msg, pgErr.ConstraintName)
		}
	}
	return errors.Wrap(err, msg)
}
