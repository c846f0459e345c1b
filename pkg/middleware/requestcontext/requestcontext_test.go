package requestcontext

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(opts ...Option) *fiber.App {
	app := fiber.New()
	app.Use(New(opts...))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"requestId": GetRequestId(c.UserContext()),
			"ip":        GetClientIP(c.UserContext()),
		})
	})
	return app
}

func do(t *testing.T, app *fiber.App, headers map[string]string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]string{}
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestWithRequestId(t *testing.T) {
	app := newApp(WithRequestId())

	_, body := do(t, app, map[string]string{fiber.HeaderXRequestID: "req-1"})
	assert.Equal(t, "req-1", body["requestId"])

	_, body = do(t, app, nil)
	assert.Len(t, body["requestId"], 36)
}

func TestWithClientIP(t *testing.T) {
	testCases := []struct {
		name    string
		config  WithClientIPConfig
		headers map[string]string
		status  int
		ip      string
	}{
		{
			name:   "direct",
			status: http.StatusOK,
		},
		{
			name:    "trusted header",
			config:  WithClientIPConfig{TrustedHeader: "X-Real-IP"},
			headers: map[string]string{"X-Real-IP": "1.2.3.4", fiber.HeaderXForwardedFor: "9.9.9.9"},
			status:  http.StatusOK,
			ip:      "1.2.3.4",
		},
		{
			name:    "first forwarded",
			headers: map[string]string{fiber.HeaderXForwardedFor: "5.5.5.5, 10.0.0.1"},
			status:  http.StatusOK,
			ip:      "5.5.5.5",
		},
		{
			name:    "skip trusted proxies",
			config:  WithClientIPConfig{TrustedProxiesIP: []string{"10.0.0.0/8"}},
			headers: map[string]string{fiber.HeaderXForwardedFor: "6.6.6.6, 7.7.7.7, 10.0.0.1"},
			status:  http.StatusOK,
			ip:      "7.7.7.7",
		},
		{
			name:    "all trusted",
			config:  WithClientIPConfig{TrustedProxiesIP: []string{"10.0.0.0/8"}},
			headers: map[string]string{fiber.HeaderXForwardedFor: "10.0.0.2, 10.0.0.1"},
			status:  http.StatusOK,
			ip:      "10.0.0.2",
		},
		{
			name:    "reject malformed",
			config:  WithClientIPConfig{EnableRejectMalformedRequest: true},
			headers: map[string]string{fiber.HeaderXForwardedFor: "5.5.5.5"},
			status:  http.StatusForbidden,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, newApp(WithClientIP(tc.config)), tc.headers)
			assert.Equal(t, tc.status, status)
			switch {
			case tc.status != http.StatusOK:
				assert.Equal(t, "not allowed to access", body["error"])
			case tc.ip == "":
				assert.NotEmpty(t, body["ip"], "remote address")
			default:
				assert.Equal(t, tc.ip, body["ip"])
			}
		})
	}
}

func TestWithClientIPInvalidProxy(t *testing.T) {
	assert.Panics(t, func() {
		WithClientIP(WithClientIPConfig{TrustedProxiesIP: []string{"not-a-cidr"}})
	})
}
