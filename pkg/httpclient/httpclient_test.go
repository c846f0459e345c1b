package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/echo":
			_, _ = w.Write([]byte(`{"method":"` + r.Method + `","q":"` + r.URL.Query().Get("q") + `","key":"` + r.Header.Get("X-Key") + `","body":` + string(body) + `}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer server.Close()

	client, err := New(server.URL+"/api", Config{Headers: map[string]string{"X-Key": "secret"}})
	require.NoError(t, err)

	var out struct {
		Method string         `json:"method"`
		Q      string         `json:"q"`
		Key    string         `json:"key"`
		Body   map[string]any `json:"body"`
	}

	resp, err := client.Post(context.Background(), "/echo", RequestOptions{
		Query: url.Values{"q": {"1"}},
		Body:  []byte(`{"a":1}`),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	require.NoError(t, resp.UnmarshalBody(&out))
	assert.Equal(t, http.MethodPost, out.Method)
	assert.Equal(t, "1", out.Q)
	assert.Equal(t, "secret", out.Key)
	assert.EqualValues(t, 1, out.Body["a"])

	resp, err = client.Get(context.Background(), "/missing", RequestOptions{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	// base url is not mutated by requests
	assert.Equal(t, "/api", client.BaseURL().Path)
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client, err := New(server.URL, Config{Timeout: 20 * time.Millisecond})
	require.NoError(t, err)
	_, err = client.Get(context.Background(), "/slow", RequestOptions{})
	assert.Error(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	client, err = New(server.URL)
	require.NoError(t, err)
	_, err = client.Get(ctx, "/slow", RequestOptions{})
	assert.Error(t, err)
}

func TestClientCanceledContext(t *testing.T) {
	client, err := New("http://127.0.0.1:1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Get(ctx, "/", RequestOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientEscapedPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path":"` + r.URL.EscapedPath() + `"}`))
	}))
	defer server.Close()

	client, err := New(server.URL + "/api")
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/items/"+url.PathEscape("a/b c"), RequestOptions{})
	require.NoError(t, err)
	var out struct {
		Path string `json:"path"`
	}
	require.NoError(t, resp.UnmarshalBody(&out))
	assert.Equal(t, "/api/items/a%2Fb%20c", out.Path)

	_, err = client.Get(context.Background(), "/items/%zz", RequestOptions{})
	assert.Error(t, err)
}
