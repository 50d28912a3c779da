package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/fastygo/agrofocus/internal/config"
	"github.com/fastygo/agrofocus/internal/infrastructure/monitor"
	"github.com/fastygo/agrofocus/internal/metrics"
	"github.com/fastygo/agrofocus/internal/server"
	"github.com/fastygo/agrofocus/internal/services/lifecycle"
	"github.com/fastygo/agrofocus/pkg/logger"
	"github.com/fastygo/agrofocus/repository/static"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	stopSignals := manager.Listen(cancel)
	defer stopSignals()

	farmRepo := static.NewFarmRepository()

	mon := monitor.New(cfg.Monitor.Interval, zapLogger, monitor.Probe{
		Name: "datasets",
		Check: func(ctx context.Context) error {
			_, err := farmRepo.Hello(ctx)
			metrics.SetDependencyHealth("datasets", err == nil)
			return err
		},
	})
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	srv := server.New(cfg, farmRepo, zapLogger)

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.Bool("metrics", cfg.HTTP.EnableMetrics),
		)
		if err := srv.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return srv.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
