package reportingclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresName(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestSubmitContractReport(t *testing.T) {
	type request struct {
		path string
		body map[string]any
	}
	requests := make(chan request, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		_ = json.Unmarshal(body, &decoded)
		requests <- request{path: r.URL.Path, body: decoded}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, Name: "test node"})
	require.NoError(t, err)

	err = client.SubmitContractReport(context.Background(), SubmitContractReportPayload{
		Type:              "anjoli",
		Network:           common.NetworkLocalnet,
		AppAddress:        "APP",
		AssetID:           12345,
		Status:            "active",
		DonationCount:     1,
		ValueReceived:     uint128.From64(1_000_000),
		TokensDistributed: uint128.From64(10),
	})
	require.NoError(t, err)

	req := <-requests
	assert.Equal(t, "/v1/report/contract", req.path)
	assert.Equal(t, "test node", req.body["name"])
	assert.Equal(t, "anjoli", req.body["type"])
	assert.Equal(t, float64(12345), req.body["assetId"])
}

func TestSubmitReportRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, Name: "test node"})
	require.NoError(t, err)

	// rejected reports are logged, not returned
	assert.NoError(t, client.SubmitNodeReport(context.Background(), "anjoli", common.NetworkLocalnet))
}
