package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/agrofocus/api/handler"
	"github.com/fastygo/agrofocus/api/transport"
)

type Handlers struct {
	Farm    *apiHandler.FarmHandler
	Health  *apiHandler.HealthHandler
	Metrics fasthttp.RequestHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()
	r.SaveMatchedRoutePath = true
	r.HandleOPTIONS = false
	r.NotFound = handlers.Farm.NotFound

	r.GET("/health", handlers.Health.Check)
	if handlers.Metrics != nil {
		r.GET("/metrics", handlers.Metrics)
	}

	r.GET(transport.PathHello, handlers.Farm.Hello)
	r.GET(transport.PathDashboardSummary, handlers.Farm.DashboardSummary)
	r.GET(transport.PathSoilActions, handlers.Farm.SoilActions)
	r.GET(transport.PathWeatherToday, handlers.Farm.WeatherToday)
	r.GET(transport.PathWeatherForecast, handlers.Farm.WeatherForecast)
	r.GET(transport.PathFields, handlers.Farm.ListFields)
	r.GET(transport.PathFields+"/{id}", handlers.Farm.GetField)
	r.GET(transport.PathSoilSummary, handlers.Farm.SoilSummary)
	r.GET(transport.PathYieldTrends, handlers.Farm.YieldTrends)
	r.GET(transport.PathWaterUse, handlers.Farm.WaterUse)
	r.GET(transport.PathCropHealth, handlers.Farm.CropHealth)
	r.GET(transport.PathCropHealthSnapshot, handlers.Farm.CropHealthSnapshot)
	r.GET(transport.PathDripStatus, handlers.Farm.DripStatus)
	r.GET(transport.PathSatelliteView, handlers.Farm.SatelliteView)

	return r
}

// Chain wraps h with middlewares; the first one runs outermost.
func Chain(h fasthttp.RequestHandler, middlewares ...func(fasthttp.RequestHandler) fasthttp.RequestHandler) fasthttp.RequestHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
