package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fastygo/agrofocus/internal/apiclient"
	"github.com/fastygo/agrofocus/internal/cli"
	"github.com/fastygo/agrofocus/internal/config"
	"github.com/fastygo/agrofocus/internal/infrastructure/monitor"
	redisInfra "github.com/fastygo/agrofocus/internal/infrastructure/redis"
	"github.com/fastygo/agrofocus/internal/services/lifecycle"
	"github.com/fastygo/agrofocus/pkg/logger"
	"github.com/fastygo/agrofocus/repository"
	boltRepo "github.com/fastygo/agrofocus/repository/bolt"
	"github.com/fastygo/agrofocus/repository/credentials"
	"github.com/fastygo/agrofocus/repository/memory"
	redisRepo "github.com/fastygo/agrofocus/repository/redis"
	authUC "github.com/fastygo/agrofocus/usecase/auth"
	dashboardUC "github.com/fastygo/agrofocus/usecase/dashboard"
	focusUC "github.com/fastygo/agrofocus/usecase/focus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	encoding := cfg.Logger.Encoding
	if os.Getenv("LOG_ENCODING") == "" {
		encoding = "console"
	}
	zapLogger, err := logger.NewWithSink(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: encoding,
	}, zapcore.Lock(os.Stderr))
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	stopSignals := manager.Listen(cancel)
	defer stopSignals()

	kv, err := openStore(cfg, manager)
	if err != nil {
		zapLogger.Fatal("local storage unavailable", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}

	verifier, err := authUC.NewVerifier(cfg.Auth.Verifier)
	if err != nil {
		zapLogger.Fatal("invalid verifier", zap.Error(err))
	}

	store := credentials.NewStore(kv, zapLogger)
	api := apiclient.New(apiclient.Config{
		BaseURL:     cfg.API.BaseURL,
		ReadTimeout: cfg.API.ReadTimeout,
	}, zapLogger)

	mon := monitor.New(cfg.Monitor.Interval, zapLogger,
		monitor.Probe{Name: "api", Timeout: cfg.API.ReadTimeout, Check: func(ctx context.Context) error {
			_, err := api.Hello(ctx)
			return err
		}},
		monitor.Probe{Name: "storage", Check: kv.Ping},
	)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	app := cli.New(cli.Deps{
		Auth:            authUC.New(store, store, verifier, zapLogger),
		Dashboard:       dashboardUC.New(api, zapLogger),
		Focus:           focusUC.NewSelector(zapLogger),
		Fields:          api,
		Monitor:         mon,
		RefreshInterval: cfg.Dashboard.RefreshInterval,
		In:              os.Stdin,
		Out:             os.Stdout,
		InputFd:         int(os.Stdin.Fd()),
		Logger:          zapLogger,
	})

	zapLogger.Info("client started",
		zap.String("api", cfg.API.BaseURL),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("client_id", cfg.Storage.ClientID),
	)

	shutdown := func() {
		if err := manager.Shutdown(context.Background()); err != nil {
			zapLogger.Error("graceful shutdown error", zap.Error(err))
		}
	}
	// A signal can arrive while the REPL is blocked on stdin.
	finished := make(chan struct{})
	go func() {
		select {
		case <-appCtx.Done():
			shutdown()
			os.Exit(0)
		case <-finished:
		}
	}()

	if err := app.Run(appCtx); err != nil {
		zapLogger.Error("client stopped with error", zap.Error(err))
	}
	close(finished)
	shutdown()
}

func openStore(cfg *config.Config, manager *lifecycle.Manager) (repository.KeyValueStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return memory.NewStore(), nil
	case config.StorageRedis:
		client, err := redisInfra.NewClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		manager.Register("redis", func(ctx context.Context) error {
			return client.Close()
		})
		return redisRepo.NewKeyValueStore(client, cfg.Storage.ClientID), nil
	case config.StorageBolt:
		store, err := boltRepo.Open(cfg.Storage.BoltPath, "local_storage:"+cfg.Storage.ClientID)
		if err != nil {
			return nil, err
		}
		manager.Register("bolt", func(ctx context.Context) error {
			return store.Close()
		})
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
