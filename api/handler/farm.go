package handler

import (
	"context"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/pkg/httpcontext"
	"github.com/fastygo/agrofocus/repository"
)

// FarmHandler serves the read-only dataset routes.
type FarmHandler struct {
	baseHandler
	repo repository.FarmRepository
}

func NewFarmHandler(repo repository.FarmRepository, adapter *httpcontext.Adapter, logger *zap.Logger) *FarmHandler {
	return &FarmHandler{
		baseHandler: newBaseHandler(adapter, logger),
		repo:        repo,
	}
}

// serve runs a repository read and writes its result as raw JSON.
func serve[T any](h *FarmHandler, read func(context.Context) (T, error)) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		stdCtx, cancel := h.requestContext(ctx)
		defer cancel()

		data, err := read(stdCtx)
		if err != nil {
			h.respondError(stdCtx, ctx, err)
			return
		}
		h.respondJSON(ctx, http.StatusOK, data)
	}
}

// @Summary Liveness banner
// @Tags farm
// @Router /api/hello [get]
func (h *FarmHandler) Hello(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.Hello)(ctx)
}

// @Summary Dashboard summary with alerts
// @Tags dashboard
// @Router /api/dashboard/summary [get]
func (h *FarmHandler) DashboardSummary(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.DashboardSummary)(ctx)
}

// @Summary Prioritized soil actions
// @Tags soil
// @Router /api/soil/actions [get]
func (h *FarmHandler) SoilActions(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.SoilActions)(ctx)
}

// @Summary Current weather
// @Tags weather
// @Router /api/weather/today [get]
func (h *FarmHandler) WeatherToday(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.WeatherToday)(ctx)
}

// @Summary Seven day forecast
// @Tags weather
// @Router /api/weather/forecast [get]
func (h *FarmHandler) WeatherForecast(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.WeatherForecast)(ctx)
}

// @Summary List fields
// @Tags fields
// @Router /api/fields [get]
func (h *FarmHandler) ListFields(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.ListFields)(ctx)
}

// @Summary Get a single field
// @Tags fields
// @Router /api/fields/{id} [get]
func (h *FarmHandler) GetField(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	serve(h, func(stdCtx context.Context) (*domain.Field, error) {
		return h.repo.GetField(stdCtx, id)
	})(ctx)
}

// @Summary Soil lab summary
// @Tags soil
// @Router /api/soil/summary [get]
func (h *FarmHandler) SoilSummary(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.SoilSummary)(ctx)
}

// @Summary Yield trends
// @Tags yield
// @Router /api/yield/trends [get]
func (h *FarmHandler) YieldTrends(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.YieldTrends)(ctx)
}

// @Summary Water use
// @Tags water
// @Router /api/water/use [get]
func (h *FarmHandler) WaterUse(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.WaterUse)(ctx)
}

// @Summary NDVI summary
// @Tags crop
// @Router /api/crop-health [get]
func (h *FarmHandler) CropHealth(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.CropHealth)(ctx)
}

// @Summary Crop health snapshot card
// @Tags dashboard
// @Router /api/dashboard/crop-health-snapshot [get]
func (h *FarmHandler) CropHealthSnapshot(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.CropHealthSnapshot)(ctx)
}

// @Summary Drip irrigation status card
// @Tags dashboard
// @Router /api/dashboard/drip-status [get]
func (h *FarmHandler) DripStatus(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.DripStatus)(ctx)
}

// @Summary Satellite view card
// @Tags dashboard
// @Router /api/dashboard/satellite-view [get]
func (h *FarmHandler) SatelliteView(ctx *fasthttp.RequestCtx) {
	serve(h, h.repo.SatelliteView)(ctx)
}

// NotFound answers unknown routes.
func (h *FarmHandler) NotFound(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()
	h.respondError(stdCtx, ctx, domain.ErrRouteNotFound)
}
