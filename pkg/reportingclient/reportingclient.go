package reportingclient

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/pkg/httpclient"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/gaze-network/uint128"
)

type Config struct {
	Disabled   bool   `mapstructure:"disabled"`
	BaseURL    string `mapstructure:"base_url"`
	Name       string `mapstructure:"name"`
	WebsiteURL string `mapstructure:"website_url"`
	APIURL     string `mapstructure:"api_url"`
}

type ReportingClient struct {
	httpClient *httpclient.Client
	config     Config
}

const (
	defaultBaseURL = "https://reporting.anjoli.network"
	requestTimeout = 5 * time.Second
)

func New(config Config) (*ReportingClient, error) {
	if config.Name == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "reporting.name config is required if reporting is enabled")
	}
	baseURL := utils.Default(config.BaseURL, defaultBaseURL)
	httpClient, err := httpclient.New(baseURL, httpclient.Config{Timeout: requestTimeout})
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &ReportingClient{
		httpClient: httpClient,
		config:     config,
	}, nil
}

type SubmitContractReportPayload struct {
	Name              string          `json:"name"`
	Type              string          `json:"type"`
	ClientVersion     string          `json:"clientVersion"`
	Network           common.Network  `json:"network"`
	AppAddress        string          `json:"appAddress"`
	AssetID           uint64          `json:"assetId"`
	Status            string          `json:"status"`
	DonationCount     uint64          `json:"donationCount"`
	ValueReceived     uint128.Uint128 `json:"valueReceived"`
	TokensDistributed uint128.Uint128 `json:"tokensDistributed"`
}

// SubmitContractReport reports the contract status. Name is filled from the client config.
func (r *ReportingClient) SubmitContractReport(ctx context.Context, payload SubmitContractReportPayload) error {
	payload.Name = r.config.Name
	return errors.WithStack(r.post(ctx, "/v1/report/contract", payload))
}

type SubmitNodeReportPayload struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Network    common.Network `json:"network"`
	WebsiteURL string         `json:"websiteURL,omitempty"`
	APIURL     string         `json:"apiURL,omitempty"`
}

func (r *ReportingClient) SubmitNodeReport(ctx context.Context, module string, network common.Network) error {
	payload := SubmitNodeReportPayload{
		Name:       r.config.Name,
		Type:       module,
		Network:    network,
		WebsiteURL: r.config.WebsiteURL,
		APIURL:     r.config.APIURL,
	}
	return errors.WithStack(r.post(ctx, "/v1/report/node", payload))
}

func (r *ReportingClient) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "can't marshal payload")
	}
	resp, err := r.httpClient.Post(ctx, path, httpclient.RequestOptions{
		Body: body,
	})
	if err != nil {
		return errors.Wrap(err, "can't send request")
	}
	if resp.StatusCode() >= 400 {
		logger.WarnContext(ctx, "Report rejected",
			slogx.String("path", path),
			slogx.Int("status", resp.StatusCode()),
			slogx.String("responseBody", string(resp.Body())),
		)
		return nil
	}
	logger.DebugContext(ctx, "Report submitted", slogx.String("path", path), slogx.Any("payload", payload))
	return nil
}
