package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/agrofocus/api/transport"
	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/pkg/httpcontext"
	appLogger "github.com/fastygo/agrofocus/pkg/logger"
)

// Config holds the settings of the API client.
type Config struct {
	BaseURL     string
	ReadTimeout time.Duration
	// Dial overrides the network dialer, mainly for in-memory listeners.
	Dial fasthttp.DialFunc
}

// Client reads the farm API. Transport problems come back as
// domain.ErrFetchFailure, undecodable bodies as domain.ErrMalformedPayload.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
	logger  *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 2 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.ReadTimeout,
		http: &fasthttp.Client{
			Name:         "agrofocus-dashboard",
			Dial:         cfg.Dial,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.ReadTimeout,
		},
		logger: logger,
	}
}

func (c *Client) Hello(ctx context.Context) (domain.Hello, error) {
	var out domain.Hello
	err := c.GetJSON(ctx, transport.PathHello, &out)
	return out, err
}

func (c *Client) DashboardSummary(ctx context.Context) (domain.DashboardSummary, error) {
	var out domain.DashboardSummary
	err := c.GetJSON(ctx, transport.PathDashboardSummary, &out)
	return out, err
}

func (c *Client) SoilActions(ctx context.Context) ([]domain.SoilAction, error) {
	var out []domain.SoilAction
	err := c.GetJSON(ctx, transport.PathSoilActions, &out)
	return out, err
}

func (c *Client) CropHealthSnapshot(ctx context.Context) (domain.CropHealthSnapshot, error) {
	var out domain.CropHealthSnapshot
	err := c.GetJSON(ctx, transport.PathCropHealthSnapshot, &out)
	return out, err
}

func (c *Client) DripStatus(ctx context.Context) (domain.DripStatus, error) {
	var out domain.DripStatus
	err := c.GetJSON(ctx, transport.PathDripStatus, &out)
	return out, err
}

func (c *Client) SatelliteView(ctx context.Context) (domain.SatelliteView, error) {
	var out domain.SatelliteView
	err := c.GetJSON(ctx, transport.PathSatelliteView, &out)
	return out, err
}

func (c *Client) Field(ctx context.Context, id string) (domain.Field, error) {
	var out domain.Field
	err := c.GetJSON(ctx, transport.PathFields+"/"+url.PathEscape(id), &out)
	if domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return out, domain.ErrFieldNotFound
	}
	return out, err
}

// GetJSON issues a GET against path and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return fetchFailure(path, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if reqID := appLogger.RequestID(ctx); reqID != "" {
		req.Header.Set(httpcontext.HeaderRequestID, reqID)
	}

	log := appLogger.WithRequestID(ctx, c.logger).With(zap.String("path", path))
	start := time.Now()

	if err := c.http.DoTimeout(req, resp, c.timeoutFor(ctx)); err != nil {
		log.Warn("api request failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return fetchFailure(path, err)
	}

	status := resp.StatusCode()
	log.Debug("api request completed", zap.Int("status", status), zap.Duration("duration", time.Since(start)))

	switch {
	case status == fasthttp.StatusNotFound:
		return domain.WrapError(domain.ErrCodeNotFound, "resource not found", fmt.Errorf("GET %s", path))
	case status != fasthttp.StatusOK:
		return fetchFailure(path, fmt.Errorf("unexpected status %d", status))
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return domain.WrapError(domain.ErrCodeMalformedPayload, domain.ErrMalformedPayload.Message, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}

func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

func fetchFailure(path string, err error) error {
	return domain.WrapError(domain.ErrCodeFetchFailure, domain.ErrFetchFailure.Message, fmt.Errorf("%s: %w", path, err))
}
