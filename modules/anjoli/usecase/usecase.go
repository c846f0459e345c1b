package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/datagateway"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/prometheus/client_golang/prometheus"
)

// Reporter receives the contract status after every committed mutation.
type Reporter interface {
	ReportContract(ctx context.Context, state entity.ContractState, stats entity.Stats) error
}

type Usecase struct {
	// mu serializes mutating invocations against the contract instance.
	mu sync.Mutex

	anjoliDg datagateway.AnjoliDataGateway
	contract *contract.Contract
	metrics  *metrics
	reporter Reporter
	clock    func() time.Time
}

type Option func(*Usecase)

// WithRegisterer registers the usecase metrics on reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(u *Usecase) {
		u.metrics = newMetrics(reg)
	}
}

func WithReporter(reporter Reporter) Option {
	return func(u *Usecase) {
		u.reporter = reporter
	}
}

func WithClock(clock func() time.Time) Option {
	return func(u *Usecase) {
		u.clock = clock
	}
}

func New(anjoliDg datagateway.AnjoliDataGateway, appAddress entity.Address, opts ...Option) (*Usecase, error) {
	if appAddress.IsZero() {
		return nil, errors.Wrap(errs.InvalidArgument, "app address is required")
	}
	u := &Usecase{
		anjoliDg: anjoliDg,
		contract: contract.New(appAddress),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.metrics == nil {
		u.metrics = newMetrics(prometheus.NewRegistry())
	}
	return u, nil
}

func (u *Usecase) AppAddress() entity.Address {
	return u.contract.Address()
}

func (u *Usecase) now() time.Time {
	return u.clock().UTC()
}
