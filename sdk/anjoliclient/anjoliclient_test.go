package anjoliclient

import (
	"context"
	"net"
	"testing"

	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/api/httphandler"
	"github.com/durgadao/anjoli-custody/modules/anjoli/repository/memory"
	"github.com/durgadao/anjoli-custody/modules/anjoli/usecase"
	"github.com/durgadao/anjoli-custody/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	appAddress = "ANJOLIAPP"
	donor      = "DONOR"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	u, err := usecase.New(memory.NewRepository(memory.WithFirstAssetID(12345)), appAddress)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorhandler.NewHTTPErrorHandler(),
	})
	require.NoError(t, httphandler.New(common.NetworkLocalnet, u).Mount(app))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	client, err := New("http://" + ln.Addr().String())
	require.NoError(t, err)
	return client
}

func TestClient(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	assetID, err := client.GetAssetID(ctx)
	require.NoError(t, err)
	assert.Zero(t, assetID)

	_, err = client.Donate(ctx, DonateRequest{Sender: donor, Receiver: appAddress, Amount: 1_000_000})
	require.Error(t, err)
	assert.Equal(t, "UNINITIALIZED_ASSET", ErrorCode(err))

	assetID, err = client.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), assetID)

	_, err = client.Initialize(ctx)
	assert.Equal(t, "ALREADY_INITIALIZED", ErrorCode(err))

	donation, err := client.Donate(ctx, DonateRequest{Sender: donor, Receiver: appAddress, Amount: 1_000_000})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), donation.Tokens)
	assert.Equal(t, uint64(12345), donation.AssetID)

	_, err = client.Donate(ctx, DonateRequest{Sender: donor, Receiver: appAddress, Amount: 99_999})
	assert.Equal(t, "DONATION_TOO_SMALL", ErrorCode(err))

	_, err = client.Donate(ctx, DonateRequest{Sender: donor, Receiver: "OTHER", Amount: 1_000_000})
	assert.Equal(t, "INVALID_RECIPIENT", ErrorCode(err))

	info, err := client.GetInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "active", info.Status)
	assert.Equal(t, uint64(100_000), info.RateDivisor)
	assert.Equal(t, uint64(10_000_000-10), info.RemainingSupply)
	assert.Equal(t, "10", info.TokensDistributed)
	require.NotNil(t, info.Asset)
	assert.Equal(t, appAddress, info.Asset.Manager)

	donations, err := client.GetDonations(ctx, donor)
	require.NoError(t, err)
	require.Len(t, donations.List, 1)
	assert.Equal(t, donation.ID, donations.List[0].ID)

	invocations, err := client.GetInvocations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, invocations, 2)
	assert.Equal(t, "INVALID_RECIPIENT", invocations[0].ErrorCode)
	assert.Equal(t, "DONATION_TOO_SMALL", invocations[1].ErrorCode)
}

func TestErrorCode(t *testing.T) {
	assert.Empty(t, ErrorCode(nil))
	assert.Equal(t, "X", ErrorCode(&Error{StatusCode: 400, Code: "X"}))
	assert.Contains(t, (&Error{StatusCode: 500, Message: "boom"}).Error(), "boom")
}

func TestGetDonationsEscapesSender(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.Initialize(ctx)
	require.NoError(t, err)

	const sender = "DONOR/1 x?"
	donation, err := client.Donate(ctx, DonateRequest{Sender: sender, Receiver: appAddress, Amount: 1_000_000})
	require.NoError(t, err)

	donations, err := client.GetDonations(ctx, sender)
	require.NoError(t, err)
	require.Len(t, donations.List, 1)
	assert.Equal(t, donation.ID, donations.List[0].ID)

	donations, err = client.GetDonations(ctx, "DONOR")
	require.NoError(t, err)
	assert.Empty(t, donations.List)

	_, err = client.GetDonations(ctx, "..")
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	quote, err := client.QuoteTokens(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, uint64(2_500_000), quote.Amount)
	assert.Equal(t, uint64(25), quote.Tokens)
	assert.Equal(t, "2.5", quote.AmountUnit.String())

	quote, err = client.QuoteValue(ctx, decimal.RequireFromString("0.3"))
	require.NoError(t, err)
	assert.Equal(t, uint64(300_000), quote.Amount)
	assert.Equal(t, uint64(3), quote.Tokens)

	_, err = client.QuoteValue(ctx, decimal.RequireFromString("-1"))
	assert.Equal(t, "INVALID_ARGUMENT", ErrorCode(err))
}
