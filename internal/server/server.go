package server

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/agrofocus/api/handler"
	"github.com/fastygo/agrofocus/internal/config"
	"github.com/fastygo/agrofocus/internal/metrics"
	"github.com/fastygo/agrofocus/internal/middleware"
	"github.com/fastygo/agrofocus/internal/router"
	"github.com/fastygo/agrofocus/pkg/httpcontext"
	"github.com/fastygo/agrofocus/repository"
)

// New assembles the dataset API server.
func New(cfg *config.Config, repo repository.FarmRepository, logger *zap.Logger) *fasthttp.Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &fasthttp.Server{
		Handler:      Handler(cfg, repo, logger),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}
}

// Handler returns the routed request handler with middlewares applied.
func Handler(cfg *config.Config, repo repository.FarmRepository, logger *zap.Logger) fasthttp.RequestHandler {
	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Farm:   apiHandler.NewFarmHandler(repo, ctxAdapter, logger),
		Health: apiHandler.NewHealthHandler(repo, ctxAdapter, logger),
	}
	if cfg.HTTP.EnableMetrics {
		handlers.Metrics = metrics.Handler()
	}

	r := router.New(handlers)
	return router.Chain(r.Handler,
		middleware.AccessLog(logger),
		middleware.CORS(cfg.HTTP.AllowedOrigin),
	)
}
