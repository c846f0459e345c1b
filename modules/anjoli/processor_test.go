package anjoli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/durgadao/anjoli-custody/modules/anjoli/repository/memory"
	"github.com/durgadao/anjoli-custody/modules/anjoli/usecase"
	"github.com/durgadao/anjoli-custody/pkg/reportingclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appAddress = entity.Address("ANJOLIAPP")

type reportServer struct {
	*httptest.Server
	mu      sync.Mutex
	reports map[string][]map[string]any
}

func newReportServer(t *testing.T) *reportServer {
	t.Helper()
	s := &reportServer{reports: make(map[string][]map[string]any)}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		_ = json.Unmarshal(body, &decoded)
		s.mu.Lock()
		s.reports[r.URL.Path] = append(s.reports[r.URL.Path], decoded)
		s.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *reportServer) get(path string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reports[path]
}

func TestProcessorStartAutoInitialize(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(memory.WithFirstAssetID(12345))
	u, err := usecase.New(repo, appAddress)
	require.NoError(t, err)

	p := NewProcessor(u, nil, common.NetworkLocalnet, true, nil)
	require.NoError(t, p.Start(ctx))

	assetID, err := u.GetAssetID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), assetID)

	// restarting never mints again
	require.NoError(t, p.Start(ctx))
	assetID, err = u.GetAssetID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), assetID)
}

func TestProcessorStartWithoutAutoInitialize(t *testing.T) {
	ctx := context.Background()
	u, err := usecase.New(memory.NewRepository(), appAddress)
	require.NoError(t, err)

	p := NewProcessor(u, nil, common.NetworkLocalnet, false, nil)
	require.NoError(t, p.Start(ctx))

	assetID, err := u.GetAssetID(ctx)
	require.NoError(t, err)
	assert.Zero(t, assetID)
}

func TestProcessorStartInitializeFailure(t *testing.T) {
	repo := memory.NewRepository()
	repo.FailAssetCreation(errors.New("min balance not met"))
	u, err := usecase.New(repo, appAddress)
	require.NoError(t, err)

	p := NewProcessor(u, nil, common.NetworkLocalnet, true, nil)
	assert.Error(t, p.Start(context.Background()))
}

func TestProcessorReports(t *testing.T) {
	ctx := context.Background()
	server := newReportServer(t)
	client, err := reportingclient.New(reportingclient.Config{BaseURL: server.URL, Name: "test node"})
	require.NoError(t, err)

	repo := memory.NewRepository(memory.WithFirstAssetID(12345))
	u, err := usecase.New(repo, appAddress, usecase.WithReporter(newContractReporter(client, common.NetworkTestnet)))
	require.NoError(t, err)

	p := NewProcessor(u, client, common.NetworkTestnet, true, nil)
	require.NoError(t, p.Start(ctx))

	nodeReports := server.get("/v1/report/node")
	require.Len(t, nodeReports, 1)
	assert.Equal(t, "anjoli", nodeReports[0]["type"])
	assert.Equal(t, "testnet", nodeReports[0]["network"])

	// initialize committed, so the usecase already reported once
	contractReports := server.get("/v1/report/contract")
	require.Len(t, contractReports, 1)
	assert.Equal(t, "active", contractReports[0]["status"])
	assert.EqualValues(t, 12345, contractReports[0]["assetId"])
	assert.Equal(t, Version, contractReports[0]["clientVersion"])

	require.NoError(t, p.Tick(ctx))
	contractReports = server.get("/v1/report/contract")
	require.Len(t, contractReports, 2)
	assert.Equal(t, "test node", contractReports[1]["name"])
	assert.Equal(t, string(appAddress), contractReports[1]["appAddress"])
}

func TestProcessorTickWithoutReporter(t *testing.T) {
	u, err := usecase.New(memory.NewRepository(), appAddress)
	require.NoError(t, err)
	p := NewProcessor(u, nil, common.NetworkLocalnet, false, nil)
	assert.NoError(t, p.Tick(context.Background()))
}

func TestProcessorShutdown(t *testing.T) {
	u, err := usecase.New(memory.NewRepository(), appAddress)
	require.NoError(t, err)

	var called []string
	errClose := errors.New("close failed")
	p := NewProcessor(u, nil, common.NetworkLocalnet, false, []func(context.Context) error{
		func(context.Context) error { called = append(called, "db"); return errClose },
		func(context.Context) error { called = append(called, "cache"); return nil },
	})

	err = p.Shutdown(context.Background())
	assert.ErrorIs(t, err, errClose)
	assert.Equal(t, []string{"db", "cache"}, called)
	assert.Equal(t, "anjoli", p.Name())
}
