package middleware

import (
	"time"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/agrofocus/internal/metrics"
	"github.com/fastygo/agrofocus/pkg/httpcontext"
)

// AccessLog logs every request and records it in the HTTP metrics.
func AccessLog(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()
			next(ctx)
			elapsed := time.Since(start)

			status := ctx.Response.StatusCode()
			method := string(ctx.Method())
			metrics.RecordHTTPRequest(method, endpoint(ctx), status, elapsed, len(ctx.Response.Body()))

			logger.Debug("request served",
				zap.String("method", method),
				zap.ByteString("path", ctx.Path()),
				zap.Int("status", status),
				zap.Duration("duration", elapsed),
				zap.ByteString("request_id", ctx.Response.Header.Peek(httpcontext.HeaderRequestID)),
			)
		}
	}
}

// endpoint returns the route pattern so /api/fields/{id} is one series.
// Preflights are answered before routing.
func endpoint(ctx *fasthttp.RequestCtx) string {
	if matched, ok := ctx.UserValue(router.MatchedRoutePathParam).(string); ok && matched != "" {
		return matched
	}
	if ctx.IsOptions() {
		return "preflight"
	}
	return "unmatched"
}
