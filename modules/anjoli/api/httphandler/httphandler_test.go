package httphandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/modules/anjoli/repository/memory"
	"github.com/durgadao/anjoli-custody/modules/anjoli/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	appAddress = "ANJOLIAPP"
	donor      = "DONOR"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	u, err := usecase.New(memory.NewRepository(memory.WithFirstAssetID(12345)), appAddress)
	require.NoError(t, err)

	app := fiber.New()
	require.NoError(t, New(common.NetworkLocalnet, u).Mount(app))
	return app
}

func call[T any](t *testing.T, app *fiber.App, method, path string, body any) (int, common.HttpResponse[T]) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out common.HttpResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func donateBody(amount uint64) donateRequest {
	return donateRequest{Sender: donor, Receiver: appAddress, Amount: amount}
}

func TestDonateBeforeInitialize(t *testing.T) {
	app := newTestApp(t)

	status, resp := call[donation](t, app, http.MethodPost, "/anjoli/v1/donate", donateBody(1_000_000))
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Code)
	assert.Equal(t, contract.CodeUninitializedAsset, *resp.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, contract.ErrUninitializedAsset.Error(), *resp.Error)

	status, assetID := call[getAssetIdResult](t, app, http.MethodGet, "/anjoli/v1/asset-id", nil)
	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, assetID.Result)
	assert.Zero(t, assetID.Result.AssetId)
}

func TestInitializeAndDonate(t *testing.T) {
	app := newTestApp(t)

	status, initResp := call[initializeResult](t, app, http.MethodPost, "/anjoli/v1/initialize", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, initResp.Result)
	assert.Equal(t, uint64(12345), initResp.Result.AssetId)

	status, again := call[initializeResult](t, app, http.MethodPost, "/anjoli/v1/initialize", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, again.Code)
	assert.Equal(t, contract.CodeAlreadyInitialized, *again.Code)

	status, donateResp := call[donation](t, app, http.MethodPost, "/anjoli/v1/donate", donateBody(1_000_000))
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, donateResp.Result)
	assert.Equal(t, uint64(10), donateResp.Result.Tokens)
	assert.Equal(t, uint64(12345), donateResp.Result.AssetId)
	assert.Equal(t, donor, donateResp.Result.Sender)

	status, small := call[donation](t, app, http.MethodPost, "/anjoli/v1/donate", donateBody(50_000))
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, small.Code)
	assert.Equal(t, contract.CodeDonationTooSmall, *small.Code)

	wrongReceiver := donateBody(1_000_000)
	wrongReceiver.Receiver = "SOMEONE"
	status, wrong := call[donation](t, app, http.MethodPost, "/anjoli/v1/donate", wrongReceiver)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, wrong.Code)
	assert.Equal(t, contract.CodeInvalidRecipient, *wrong.Code)

	status, donations := call[getDonationsResult](t, app, http.MethodGet, "/anjoli/v1/donations/"+donor, nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, donations.Result)
	require.Len(t, donations.Result.List, 1)
	assert.Equal(t, uint64(1_000_000), donations.Result.TotalAmount)
	assert.Equal(t, uint64(10), donations.Result.TotalTokens)

	status, none := call[getDonationsResult](t, app, http.MethodGet, "/anjoli/v1/donations/NOBODY", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, none.Result)
	assert.Empty(t, none.Result.List)
}

func TestDonateValidation(t *testing.T) {
	app := newTestApp(t)

	status, resp := call[donation](t, app, http.MethodPost, "/anjoli/v1/donate", donateRequest{Amount: 1_000_000})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Code)
	assert.Equal(t, contract.CodeInvalidArgument, *resp.Code)
	require.NotNil(t, resp.Error)
	assert.Contains(t, *resp.Error, "'sender' is required")
	assert.Contains(t, *resp.Error, "'receiver' is required")
}

func TestGetInfo(t *testing.T) {
	app := newTestApp(t)

	status, resp := call[getInfoResult](t, app, http.MethodGet, "/anjoli/v1/info", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "uninitialized", resp.Result.Status)
	assert.Nil(t, resp.Result.Asset)
	assert.Equal(t, "0.1", resp.Result.TokenPrice.String())

	call[initializeResult](t, app, http.MethodPost, "/anjoli/v1/initialize", nil)
	call[donation](t, app, http.MethodPost, "/anjoli/v1/donate", donateBody(1_500_000))

	status, resp = call[getInfoResult](t, app, http.MethodGet, "/anjoli/v1/info", nil)
	require.Equal(t, http.StatusOK, status)
	info := resp.Result
	require.NotNil(t, info)
	assert.Equal(t, "active", info.Status)
	assert.Equal(t, appAddress, info.AppAddress)
	assert.Equal(t, "localnet", info.Network)
	require.NotNil(t, info.Asset)
	assert.Equal(t, contract.AssetName, info.Asset.Name)
	assert.Equal(t, contract.TotalSupply, info.Asset.Total)
	assert.Equal(t, appAddress, info.Asset.Reserve)
	assert.Equal(t, contract.TotalSupply-15, info.RemainingSupply)
	assert.Equal(t, uint64(1), info.DonationCount)
	assert.Equal(t, "1.5", info.ValueReceivedUnit.String())
	assert.Equal(t, "1500000", info.ValueReceived)
	assert.Equal(t, "15", info.TokensDistributed)
}

func TestGetInvocations(t *testing.T) {
	app := newTestApp(t)

	call[donation](t, app, http.MethodPost, "/anjoli/v1/donate", donateBody(1_000_000))
	call[initializeResult](t, app, http.MethodPost, "/anjoli/v1/initialize", nil)

	status, resp := call[getInvocationsResult](t, app, http.MethodGet, "/anjoli/v1/invocations?limit=10", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Result)
	require.Len(t, resp.Result.List, 2)
	assert.Equal(t, "initialize", resp.Result.List[0].Operation)
	assert.True(t, resp.Result.List[0].Success)
	assert.Equal(t, "donate", resp.Result.List[1].Operation)
	assert.False(t, resp.Result.List[1].Success)
	assert.Equal(t, contract.CodeUninitializedAsset, resp.Result.List[1].ErrorCode)

	status, _ = call[getInvocationsResult](t, app, http.MethodGet, "/anjoli/v1/invocations?limit=5000", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetQuote(t *testing.T) {
	app := newTestApp(t)

	testcases := []struct {
		query      string
		tokens     uint64
		amount     uint64
		amountUnit string
	}{
		{"tokens=10", 10, 1_000_000, "1"},
		{"tokens=0", 0, 0, "0"},
		{"value=1.5", 15, 1_500_000, "1.5"},
		{"value=0.05", 0, 50_000, "0.05"},
		{"value=1.2345678", 12, 1_234_567, "1.234567"},
	}
	for _, tc := range testcases {
		t.Run(tc.query, func(t *testing.T) {
			status, resp := call[getQuoteResult](t, app, http.MethodGet, "/anjoli/v1/quote?"+tc.query, nil)
			require.Equal(t, http.StatusOK, status)
			require.NotNil(t, resp.Result)
			assert.Equal(t, tc.tokens, resp.Result.Tokens)
			assert.Equal(t, tc.amount, resp.Result.Amount)
			assert.Equal(t, tc.amountUnit, resp.Result.AmountUnit.String())
		})
	}

	for _, query := range []string{"", "tokens=1&value=1", "tokens=abc", "tokens=-1", "tokens=184467440737095517", "value=-1", "value=x", "value=1e30"} {
		t.Run("invalid "+query, func(t *testing.T) {
			status, resp := call[getQuoteResult](t, app, http.MethodGet, "/anjoli/v1/quote?"+query, nil)
			assert.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, resp.Code)
			assert.Equal(t, contract.CodeInvalidArgument, *resp.Code)
		})
	}
}

func TestGetDonationsEscapedSender(t *testing.T) {
	app := newTestApp(t)

	status, _ := call[initializeResult](t, app, http.MethodPost, "/anjoli/v1/initialize", nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = call[donation](t, app, http.MethodPost, "/anjoli/v1/donate", donateRequest{Sender: "A/B C", Receiver: appAddress, Amount: 1_000_000})
	require.Equal(t, http.StatusOK, status)

	status, resp := call[getDonationsResult](t, app, http.MethodGet, "/anjoli/v1/donations/A%2FB%20C", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Result)
	require.Len(t, resp.Result.List, 1)
	assert.Equal(t, uint64(10), resp.Result.TotalTokens)
}
