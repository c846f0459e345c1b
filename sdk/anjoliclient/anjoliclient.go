// Package anjoliclient is a Go client for the Anjoli custody HTTP API.
package anjoliclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/pkg/httpclient"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
)

const basePath = "/anjoli/v1"

// Error is a failed API call. Code is the stable error code of contract errors, e.g. "DONATION_TOO_SMALL".
type Error struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("anjoli api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("anjoli api error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
}

// ErrorCode returns the API error code carried by err, or "" if err is not an API error.
func ErrorCode(err error) string {
	if e := new(Error); errors.As(err, &e) {
		return e.Code
	}
	return ""
}

type Client struct {
	httpClient *httpclient.Client
}

func New(baseURL string, config ...httpclient.Config) (*Client, error) {
	httpClient, err := httpclient.New(baseURL, config...)
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Client{httpClient: httpClient}, nil
}

func (c *Client) Initialize(ctx context.Context) (uint64, error) {
	result, err := call[assetIDResult](ctx, c, fasthttp.MethodPost, "/initialize", httpclient.RequestOptions{})
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return result.AssetID, nil
}

func (c *Client) Donate(ctx context.Context, req DonateRequest) (Donation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Donation{}, errors.Wrap(err, "can't marshal donate request")
	}
	result, err := call[Donation](ctx, c, fasthttp.MethodPost, "/donate", httpclient.RequestOptions{Body: body})
	if err != nil {
		return Donation{}, errors.WithStack(err)
	}
	return result, nil
}

func (c *Client) GetAssetID(ctx context.Context) (uint64, error) {
	result, err := call[assetIDResult](ctx, c, fasthttp.MethodGet, "/asset-id", httpclient.RequestOptions{})
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return result.AssetID, nil
}

func (c *Client) GetInfo(ctx context.Context) (Info, error) {
	result, err := call[Info](ctx, c, fasthttp.MethodGet, "/info", httpclient.RequestOptions{})
	return result, errors.WithStack(err)
}

func (c *Client) GetDonations(ctx context.Context, sender string) (Donations, error) {
	if sender == "" || sender == "." || sender == ".." {
		return Donations{}, errors.Wrapf(errs.InvalidArgument, "invalid sender %q", sender)
	}
	result, err := call[Donations](ctx, c, fasthttp.MethodGet, "/donations/"+url.PathEscape(sender), httpclient.RequestOptions{})
	return result, errors.WithStack(err)
}

// QuoteTokens returns the smallest donation receiving the given asset units.
func (c *Client) QuoteTokens(ctx context.Context, tokens uint64) (Quote, error) {
	opts := httpclient.RequestOptions{Query: url.Values{"tokens": {strconv.FormatUint(tokens, 10)}}}
	result, err := call[Quote](ctx, c, fasthttp.MethodGet, "/quote", opts)
	return result, errors.WithStack(err)
}

// QuoteValue prices a donation given in whole native units. Sub-unit digits are dropped.
func (c *Client) QuoteValue(ctx context.Context, value decimal.Decimal) (Quote, error) {
	opts := httpclient.RequestOptions{Query: url.Values{"value": {value.String()}}}
	result, err := call[Quote](ctx, c, fasthttp.MethodGet, "/quote", opts)
	return result, errors.WithStack(err)
}

// GetInvocations returns the latest invocation records, newest first. A zero limit uses the server default.
func (c *Client) GetInvocations(ctx context.Context, limit int32) ([]Invocation, error) {
	var opts httpclient.RequestOptions
	if limit > 0 {
		opts.Query = url.Values{"limit": {strconv.FormatInt(int64(limit), 10)}}
	}
	result, err := call[invocationsResult](ctx, c, fasthttp.MethodGet, "/invocations", opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return result.List, nil
}

func call[T any](ctx context.Context, c *Client, method, path string, opts httpclient.RequestOptions) (T, error) {
	var zero T
	resp, err := c.httpClient.Do(ctx, method, basePath+path, opts)
	if err != nil {
		return zero, errors.Wrap(err, "request failed")
	}

	var body common.HttpResponse[T]
	if err := resp.UnmarshalBody(&body); err != nil {
		if resp.StatusCode() >= 400 {
			return zero, errors.WithStack(&Error{StatusCode: resp.StatusCode(), Message: string(resp.Body())})
		}
		return zero, errors.Wrap(err, "can't decode response")
	}
	if resp.StatusCode() >= 400 || body.Error != nil {
		apiErr := &Error{StatusCode: resp.StatusCode()}
		if body.Error != nil {
			apiErr.Message = *body.Error
		}
		if body.Code != nil {
			apiErr.Code = *body.Code
		}
		return zero, errors.WithStack(apiErr)
	}
	if body.Result == nil {
		return zero, errors.Errorf("empty result from %s %s", method, path)
	}
	return *body.Result, nil
}
