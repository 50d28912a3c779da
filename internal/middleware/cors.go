package middleware

import (
	"github.com/valyala/fasthttp"

	"github.com/fastygo/agrofocus/pkg/httpcontext"
)

const allowedMethods = "GET, OPTIONS"

// CORS allows browser dashboards served from another origin to read the API.
func CORS(origin string) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if origin == "" {
		origin = "*"
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
			ctx.Response.Header.Set("Access-Control-Allow-Methods", allowedMethods)
			ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type, "+httpcontext.HeaderRequestID)
			ctx.Response.Header.Set("Access-Control-Expose-Headers", httpcontext.HeaderRequestID)

			if ctx.IsOptions() {
				ctx.SetStatusCode(fasthttp.StatusNoContent)
				return
			}
			next(ctx)
		}
	}
}
