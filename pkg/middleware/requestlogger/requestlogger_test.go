package requestlogger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, config Config) (*fiber.App, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(logger.NewContext(c.UserContext(), l))
		return c.Next()
	})
	app.Use(New(config))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return fiber.ErrServiceUnavailable })
	return app, &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func get(t *testing.T, app *fiber.App, path string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	resp.Body.Close()
}

func TestRequestLogged(t *testing.T) {
	app, buf := newApp(t, Config{WithRequestQuery: true})
	get(t, app, "/items/7?x=1")

	logged := lines(t, buf)
	require.Len(t, logged, 1)
	assert.Equal(t, "INFO", logged[0]["level"])
	request := logged[0]["request"].(map[string]any)
	assert.Equal(t, "/items/7", request["path"])
	assert.Equal(t, "/items/:id", request["route"])
	assert.Equal(t, "x=1", request["query"])
	response := logged[0]["response"].(map[string]any)
	assert.EqualValues(t, http.StatusOK, response["status"])
}

func TestSkipAndDisable(t *testing.T) {
	app, buf := newApp(t, Config{SkipPaths: []string{"/"}})
	get(t, app, "/")
	assert.Empty(t, lines(t, buf))

	app, buf = newApp(t, Config{Disable: true})
	get(t, app, "/items/1")
	assert.Empty(t, lines(t, buf))

	get(t, app, "/fail")
	logged := lines(t, buf)
	require.Len(t, logged, 1)
	assert.Equal(t, "ERROR", logged[0]["level"])
	assert.EqualValues(t, http.StatusServiceUnavailable, logged[0]["response"].(map[string]any)["status"])
}
