package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"mesa-rewards/internal/adapter/analytics"
	httpadapter "mesa-rewards/internal/adapter/http"
	"mesa-rewards/internal/adapter/postgres"
	"mesa-rewards/internal/adapter/simulator"
	"mesa-rewards/internal/adapter/usecase"
	"mesa-rewards/internal/catalog"
	"mesa-rewards/internal/config"
	"mesa-rewards/internal/cooldown"
	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
	"mesa-rewards/internal/db"
	"mesa-rewards/internal/metrics"
	"mesa-rewards/internal/quota"
	"mesa-rewards/internal/slotpool"
)

// main is the entry point of the rewards service. It loads configuration,
// builds the reward catalog, slot pool and orchestrator on top of the
// simulated ad platform, starts the analytics worker and the HTTP server,
// and shuts both down on SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("service stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	store, closeStore, err := newEventStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	recorder := analytics.NewRecorder(store, logger, cfg.Analytics)
	collector := metrics.NewCollector("rewards")

	cat, err := catalog.FromConfig(cfg.Ads, cfg.Rewards)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	seed := cfg.Simulator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	platform := simulator.New(cfg.Simulator, logger, seed)

	pool, err := slotpool.New(platform, cat, slotpool.Options{
		RequestOptions:  port.RequestOptions{NonPersonalizedOnly: cfg.Ads.NonPersonalizedOnly},
		RetryDelay:      cfg.Ads.LoadRetryDelay,
		MaxLoadFailures: cfg.Ads.MaxLoadFailures,
		Metrics:         collector,
		Analytics:       recorder,
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("build slot pool: %w", err)
	}
	defer pool.Close()

	loc, err := time.LoadLocation(cfg.Ads.QuotaTimezone)
	if err != nil {
		return fmt.Errorf("quota timezone: %w", err)
	}

	preload := make([]domain.RewardKind, 0, len(cfg.Ads.PreloadKinds))
	for _, name := range cfg.Ads.PreloadKinds {
		kind, err := domain.ParseRewardKind(name)
		if err != nil {
			return fmt.Errorf("preload kinds: %w", err)
		}
		preload = append(preload, kind)
	}

	svc := usecase.NewRewardUseCase(
		platform,
		cat,
		pool,
		cooldown.NewGate(time.Duration(cfg.Ads.CooldownSeconds)*time.Second),
		recorder,
		usecase.Options{
			PreloadKinds: preload,
			Quota:        quota.NewDaily(loc),
			Metrics:      collector,
			Logger:       logger,
		},
	)
	if err = svc.Initialize(ctx); err != nil {
		// ads stay unavailable, requests decline with not_ready
		logger.Error("ad platform initialization failed", slog.Any("error", err))
	}

	handler := httpadapter.NewHandler(svc, store, collector.Handler(), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return recorder.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	return g.Wait()
}

// newEventStore picks the analytics sink. The returned func releases any
// resources held by the store.
func newEventStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.EventStore, func(), error) {
	switch cfg.Analytics.Sink {
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewEventRepository(pool), pool.Close, nil
	case "log", "":
		return analytics.NewMemoryStore(logger, 0), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown analytics sink %q", cfg.Analytics.Sink)
	}
}
