package anjoli

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/core/worker"
	"github.com/durgadao/anjoli-custody/modules/anjoli/usecase"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/durgadao/anjoli-custody/pkg/reportingclient"
)

var _ worker.Processor = (*Processor)(nil)

type Processor struct {
	usecase         *usecase.Usecase
	reportingClient *reportingclient.ReportingClient
	network         common.Network
	autoInitialize  bool
	cleanupFuncs    []func(context.Context) error
}

func NewProcessor(usecase *usecase.Usecase, reportingClient *reportingclient.ReportingClient, network common.Network, autoInitialize bool, cleanupFuncs []func(context.Context) error) *Processor {
	return &Processor{
		usecase:         usecase,
		reportingClient: reportingClient,
		network:         network,
		autoInitialize:  autoInitialize,
		cleanupFuncs:    cleanupFuncs,
	}
}

func (p *Processor) Name() string {
	return common.ModuleAnjoli.String()
}

func (p *Processor) Start(ctx context.Context) error {
	ctx = logger.WithContext(ctx, slogx.Stringer("appAddress", p.usecase.AppAddress()))

	if p.autoInitialize {
		assetID, err := p.usecase.EnsureInitialized(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to initialize contract")
		}
		logger.InfoContext(ctx, "Contract is active", slogx.Uint64("assetId", assetID))
	} else {
		assetID, err := p.usecase.GetAssetID(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load contract state")
		}
		if assetID == 0 {
			logger.WarnContext(ctx, "Contract is not initialized yet, donations are rejected until initialize is called")
		}
	}

	if p.reportingClient != nil {
		if err := p.reportingClient.SubmitNodeReport(ctx, common.ModuleAnjoli.String(), p.network); err != nil {
			logger.WarnContext(ctx, "Failed to submit node report", slogx.Error(err))
		}
	}
	return nil
}

// Tick reports the contract status so the reporting service sees the node alive between mutations.
func (p *Processor) Tick(ctx context.Context) error {
	return errors.WithStack(p.usecase.Report(ctx))
}

func (p *Processor) Shutdown(ctx context.Context) error {
	var errList []error
	for _, cleanup := range p.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.WithStack(errors.Join(errList...))
}
