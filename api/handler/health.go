package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/agrofocus/api/transport"
	"github.com/fastygo/agrofocus/internal/metrics"
	"github.com/fastygo/agrofocus/pkg/httpcontext"
	"github.com/fastygo/agrofocus/repository"
)

type HealthHandler struct {
	baseHandler
	repo      repository.FarmRepository
	startedAt time.Time
}

func NewHealthHandler(repo repository.FarmRepository, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		repo:        repo,
		startedAt:   time.Now(),
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	_, err := h.repo.Hello(stdCtx)
	metrics.SetDependencyHealth("datasets", err == nil)
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"datasets":  err == nil,
	}

	if err == nil {
		h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(payload, nil))
		return
	}
	env := transport.NewError("DEGRADED", "dataset provider unhealthy", payload)
	h.logger.Warn("dataset provider unhealthy", zap.Error(err), zap.Stringer("response", env))
	h.respondJSON(ctx, http.StatusServiceUnavailable, env)
}
