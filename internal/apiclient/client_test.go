package apiclient

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/internal/config"
	"github.com/fastygo/agrofocus/internal/server"
	"github.com/fastygo/agrofocus/repository/static"
)

func serve(t *testing.T, handler fasthttp.RequestHandler) *Client {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	go func() { _ = fasthttp.Serve(ln, handler) }()
	t.Cleanup(func() { _ = ln.Close() })

	return New(Config{
		BaseURL:     "http://api.test/",
		ReadTimeout: time.Second,
		Dial:        func(string) (net.Conn, error) { return ln.Dial() },
	}, nil)
}

func farmServer(t *testing.T) *Client {
	cfg := &config.Config{Context: config.ContextConfig{RequestTimeout: time.Second}}
	return serve(t, server.Handler(cfg, static.NewFarmRepository(), nil))
}

func TestTypedReads(t *testing.T) {
	ctx := context.Background()
	c := farmServer(t)

	hello, err := c.Hello(ctx)
	require.NoError(t, err)
	assert.Contains(t, hello.Message, "running")

	summary, err := c.DashboardSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Soil moisture & water stress", summary.TodayFocus)

	snap, err := c.CropHealthSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.82", snap.NDVI.Format(2))

	drip, err := c.DripStatus(ctx)
	require.NoError(t, err)
	require.NotNil(t, drip.FlowRateLpm)
	assert.Equal(t, 12.5, *drip.FlowRateLpm)

	sat, err := c.SatelliteView(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Clear sky", sat.CloudNote)

	actions, err := c.SoilActions(ctx)
	require.NoError(t, err)
	assert.Len(t, actions, 3)
}

func TestFieldNotFound(t *testing.T) {
	c := farmServer(t)

	f, err := c.Field(context.Background(), "south")
	require.NoError(t, err)
	assert.Equal(t, "Maize", f.Crop)

	_, err = c.Field(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrFieldNotFound)
}

func TestNonOKStatusIsFetchFailure(t *testing.T) {
	c := serve(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	})

	_, err := c.DripStatus(context.Background())
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeFetchFailure))
}

func TestUndecodableBodyIsMalformed(t *testing.T) {
	c := serve(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString("<html>")
	})

	_, err := c.SatelliteView(context.Background())
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeMalformedPayload))
}

func TestCancelledContextIsFetchFailure(t *testing.T) {
	c := farmServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Hello(ctx)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeFetchFailure))
}

func TestUnreachableServerIsFetchFailure(t *testing.T) {
	c := New(Config{
		BaseURL:     "http://api.test",
		ReadTimeout: 200 * time.Millisecond,
		Dial: func(string) (net.Conn, error) {
			return nil, assert.AnError
		},
	}, nil)

	_, err := c.SoilActions(context.Background())
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeFetchFailure))
}
