package server

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
	"go.uber.org/zap"

	"github.com/fastygo/agrofocus/internal/config"
	"github.com/fastygo/agrofocus/repository/static"
)

func testConfig() *config.Config {
	return &config.Config{
		AppName: "agrofocus-test",
		HTTP: config.HTTPConfig{
			EnableMetrics: true,
			AllowedOrigin: "*",
		},
		Context: config.ContextConfig{RequestTimeout: time.Second},
	}
}

func startServer(t *testing.T) *fasthttp.Client {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	srv := New(testConfig(), static.NewFarmRepository(), zap.NewNop())
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = ln.Close() })
	return &fasthttp.Client{Dial: func(string) (net.Conn, error) { return ln.Dial() }}
}

func do(t *testing.T, c *fasthttp.Client, method, path string, headers map[string]string) (int, []byte, *fasthttp.ResponseHeader) {
	t.Helper()
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("http://agrofocus.test" + path)
	req.Header.SetMethod(method)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	require.NoError(t, c.DoTimeout(req, resp, time.Second))

	header := &fasthttp.ResponseHeader{}
	resp.Header.CopyTo(header)
	return resp.StatusCode(), append([]byte(nil), resp.Body()...), header
}

func TestHelloReturnsRawJSON(t *testing.T) {
	c := startServer(t)
	status, body, header := do(t, c, fasthttp.MethodGet, "/api/hello", nil)

	assert.Equal(t, fasthttp.StatusOK, status)
	assert.JSONEq(t, `{"message":"AgroFocus backend is running ✅"}`, string(body))
	assert.Equal(t, "*", string(header.Peek("Access-Control-Allow-Origin")))
	assert.NotEmpty(t, header.Peek("X-Request-ID"))
}

func TestFieldLookup(t *testing.T) {
	c := startServer(t)

	status, body, _ := do(t, c, fasthttp.MethodGet, "/api/fields/north", nil)
	require.Equal(t, fasthttp.StatusOK, status)
	var field map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &field))
	assert.Equal(t, "north", field["id"])
	assert.Equal(t, "Wheat", field["crop"])

	status, body, _ = do(t, c, fasthttp.MethodGet, "/api/fields/nope", nil)
	assert.Equal(t, fasthttp.StatusNotFound, status)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(body, &errBody))
	assert.Equal(t, "Field not found", errBody["error"])
}

func TestEveryDatasetRouteServes(t *testing.T) {
	c := startServer(t)
	paths := []string{
		"/api/dashboard/summary",
		"/api/soil/actions",
		"/api/weather/today",
		"/api/weather/forecast",
		"/api/fields",
		"/api/soil/summary",
		"/api/yield/trends",
		"/api/water/use",
		"/api/crop-health",
		"/api/dashboard/crop-health-snapshot",
		"/api/dashboard/drip-status",
		"/api/dashboard/satellite-view",
	}
	for _, p := range paths {
		status, body, header := do(t, c, fasthttp.MethodGet, p, nil)
		assert.Equal(t, fasthttp.StatusOK, status, p)
		assert.True(t, json.Valid(body), p)
		assert.Equal(t, "application/json", string(header.ContentType()), p)
	}
}

func TestSnapshotNdviIsAString(t *testing.T) {
	c := startServer(t)
	_, body, _ := do(t, c, fasthttp.MethodGet, "/api/dashboard/crop-health-snapshot", nil)

	var snap map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &snap))
	assert.Equal(t, "0.82", snap["ndvi"])
}

func TestUnknownRoute(t *testing.T) {
	c := startServer(t)
	status, body, _ := do(t, c, fasthttp.MethodGet, "/api/nothing", nil)
	assert.Equal(t, fasthttp.StatusNotFound, status)
	assert.Contains(t, string(body), "route not found")
}

func TestPreflight(t *testing.T) {
	c := startServer(t)
	status, _, header := do(t, c, fasthttp.MethodOptions, "/api/hello", nil)
	assert.Equal(t, fasthttp.StatusNoContent, status)
	assert.Contains(t, string(header.Peek("Access-Control-Allow-Methods")), "GET")
}

func TestPreflightIsCounted(t *testing.T) {
	c := startServer(t)
	status, _, _ := do(t, c, fasthttp.MethodOptions, "/api/fields", nil)
	require.Equal(t, fasthttp.StatusNoContent, status)

	_, body, _ := do(t, c, fasthttp.MethodGet, "/metrics", nil)
	assert.Contains(t, string(body), `agrofocus_http_requests_total{endpoint="preflight",method="OPTIONS",status="204"}`)
}

func TestRequestIDIsEchoed(t *testing.T) {
	c := startServer(t)
	_, _, header := do(t, c, fasthttp.MethodGet, "/api/fields", map[string]string{"X-Request-ID": "req-42"})
	assert.Equal(t, "req-42", string(header.Peek("X-Request-ID")))
}

func TestHealthAndMetrics(t *testing.T) {
	c := startServer(t)

	status, body, _ := do(t, c, fasthttp.MethodGet, "/health", nil)
	require.Equal(t, fasthttp.StatusOK, status)
	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, "success", env["status"])

	status, body, _ = do(t, c, fasthttp.MethodGet, "/metrics", nil)
	require.Equal(t, fasthttp.StatusOK, status)
	assert.Contains(t, string(body), "agrofocus_http_requests_total")
}
