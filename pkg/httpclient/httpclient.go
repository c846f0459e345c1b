// Package httpclient is a small JSON client over fasthttp, bound to a base URL.
package httpclient

import (
	"context"
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/valyala/fasthttp"
)

const contentTypeJSON = "application/json"

type Config struct {
	// Debug logs every request with its timing and sizes.
	Debug bool

	// Headers are sent with every request. Per-request headers override them.
	Headers map[string]string

	// Timeout bounds a single request. Zero means no bound unless the request context has a deadline.
	Timeout time.Duration
}

type Client struct {
	baseURL *url.URL
	config  Config
}

func New(baseURL string, config ...Config) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse base url")
	}
	c := &Client{baseURL: u}
	if len(config) > 0 {
		c.config = config[0]
	}
	return c, nil
}

// BaseURL returns a copy of the client base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

type RequestOptions struct {
	// Body is sent as application/json when set.
	Body   []byte
	Query  url.Values
	Header map[string]string
}

type HttpResponse struct {
	URL string
	fasthttp.Response
}

// UnmarshalBody decodes a JSON body into out. Other content types are an error carrying the body.
func (r *HttpResponse) UnmarshalBody(out any) error {
	body, err := r.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't uncompress body from %s", r.URL)
	}
	contentType := strings.ToLower(string(r.Header.ContentType()))
	if !strings.HasPrefix(contentType, contentTypeJSON) {
		return errors.Errorf("unexpected content type %q from %s: %q", contentType, r.URL, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "can't unmarshal json body from %s: %q", r.URL, string(body))
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, opts RequestOptions) (*HttpResponse, error) {
	return c.Do(ctx, fasthttp.MethodGet, path, opts)
}

func (c *Client) Post(ctx context.Context, path string, opts RequestOptions) (*HttpResponse, error) {
	return c.Do(ctx, fasthttp.MethodPost, path, opts)
}

// Do sends a request to path, relative to the base URL.
func (c *Client) Do(ctx context.Context, method, reqPath string, opts RequestOptions) (*HttpResponse, error) {
	// reqPath may carry escaped segments, e.g. a "/" inside a path parameter
	target := c.BaseURL()
	target.RawPath = path.Join(target.EscapedPath(), reqPath)
	unescaped, err := url.PathUnescape(target.RawPath)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid request path %q", reqPath)
	}
	target.Path = unescaped
	if len(opts.Query) > 0 {
		target.RawQuery = opts.Query.Encode()
	}
	uri := target.String()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	req.URI().DisablePathNormalizing = true
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range opts.Header {
		req.Header.Set(k, v)
	}
	if opts.Body != nil {
		req.Header.SetContentType(contentTypeJSON)
		req.SetBody(opts.Body)
	}

	start := time.Now()
	err = c.send(ctx, req, resp)
	if c.config.Debug {
		logger.DebugContext(ctx, "Finished request",
			slogx.String(logger.ModuleKey, "httpclient"),
			slogx.String("method", method),
			slogx.String("url", uri),
			slogx.Duration("latency", time.Since(start)),
			slogx.Int("status", resp.StatusCode()),
			slogx.Int("requestLength", len(opts.Body)),
			slogx.Int("responseLength", len(resp.Body())),
			slogx.Error(err),
		)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, uri)
	}

	out := &HttpResponse{URL: uri}
	resp.CopyTo(&out.Response)
	return out, nil
}

// send is bounded by the earlier of the context deadline and the client timeout.
func (c *Client) send(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	deadline, ok := ctx.Deadline()
	if c.config.Timeout > 0 {
		if timeoutAt := time.Now().Add(c.config.Timeout); !ok || timeoutAt.Before(deadline) {
			deadline, ok = timeoutAt, true
		}
	}
	if ok {
		return errors.WithStack(fasthttp.DoDeadline(req, resp, deadline))
	}
	return errors.WithStack(fasthttp.Do(req, resp))
}
