package anjoli

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/durgadao/anjoli-custody/modules/anjoli/usecase"
	"github.com/durgadao/anjoli-custody/pkg/reportingclient"
)

var _ usecase.Reporter = (*contractReporter)(nil)

// contractReporter submits contract status reports to the reporting service.
type contractReporter struct {
	client  *reportingclient.ReportingClient
	network common.Network
}

func newContractReporter(client *reportingclient.ReportingClient, network common.Network) *contractReporter {
	return &contractReporter{
		client:  client,
		network: network,
	}
}

func (r *contractReporter) ReportContract(ctx context.Context, state entity.ContractState, stats entity.Stats) error {
	payload := reportingclient.SubmitContractReportPayload{
		Type:              common.ModuleAnjoli.String(),
		ClientVersion:     Version,
		Network:           r.network,
		AppAddress:        state.AppAddress.String(),
		AssetID:           state.AssetID,
		Status:            string(state.Status()),
		DonationCount:     stats.DonationCount,
		ValueReceived:     stats.ValueReceived,
		TokensDistributed: stats.TokensDistributed,
	}
	if err := r.client.SubmitContractReport(ctx, payload); err != nil {
		return errors.Wrap(err, "failed to submit contract report")
	}
	return nil
}
