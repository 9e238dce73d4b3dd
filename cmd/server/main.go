// Command server runs the timerkit HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/kitchenops/timerkit/internal/api"
	"github.com/kitchenops/timerkit/internal/api/handler"
	"github.com/kitchenops/timerkit/internal/api/metrics"
	"github.com/kitchenops/timerkit/internal/core/service"
	"github.com/kitchenops/timerkit/internal/infrastructure/config"
	mongodb "github.com/kitchenops/timerkit/internal/infrastructure/db/mongo"
	redisdb "github.com/kitchenops/timerkit/internal/infrastructure/db/redis"
	"github.com/kitchenops/timerkit/internal/infrastructure/queue"
	"github.com/kitchenops/timerkit/internal/infrastructure/security"
	"github.com/kitchenops/timerkit/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
		App:    "timerkit",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Repositories and policies ---
	userRepo := mongodb.NewUserRepository(db)
	inventoryRepo := mongodb.NewInventoryRepository(db)

	// --- Services ---
	timers, err := service.NewTimerService(service.TimerPorts{
		Timers:   mongodb.NewTimerRepository(db),
		Users:    userRepo,
		Finished: metrics.FinishCounter{},
	}, log)
	if err != nil {
		return err
	}
	alerts, err := service.NewTimerAlertService(service.TimerAlertPorts{
		Alerts: mongodb.NewTimerAlertRepository(db),
		Sender: redisdb.NewAlertPublisher(rdb, cfg.Redis.AlertChannel),
	}, log)
	if err != nil {
		return err
	}
	users, err := service.NewUserService(service.UserPorts{
		Users:      userRepo,
		Uniqueness: userRepo,
		Hasher:     security.NewBcryptHasher(cfg.BcryptCost),
	}, log)
	if err != nil {
		return err
	}
	inventories, err := service.NewInventoryService(service.InventoryPorts{
		Inventories: inventoryRepo,
		Users:       userRepo,
	}, log)
	if err != nil {
		return err
	}
	items, err := service.NewInventoryItemService(service.InventoryItemPorts{
		Items:     mongodb.NewInventoryItemRepository(db),
		Registrar: inventoryRepo,
	}, log)
	if err != nil {
		return err
	}
	settings, err := service.NewSettingService(service.SettingPorts{
		Settings: mongodb.NewSettingRepository(db),
		Users:    userRepo,
	}, log)
	if err != nil {
		return err
	}

	// --- Tick workers ---
	dispatcher := queue.NewTickDispatcher(cfg.TickWorkers, timers, metrics.TickRecorder{}, log)
	// Workers outlive the signal so Stop can drain ticks accepted before shutdown.
	dispatcher.Start(context.WithoutCancel(ctx))
	defer dispatcher.Stop()

	var dedup handler.TickDedup
	if cfg.Redis.Dedup {
		dedup = redisdb.NewTickDedup(rdb)
	}

	e := api.NewRouter(api.Deps{
		Timers:      timers,
		Alerts:      alerts,
		Users:       users,
		Inventories: inventories,
		Items:       items,
		Settings:    settings,
		Tokens:      security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Ticks:       dispatcher,
		TickDedup:   dedup,
		Health: map[string]handler.Pinger{
			"mongo": handler.PingFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }),
			"redis": handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		},
		Log: log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
