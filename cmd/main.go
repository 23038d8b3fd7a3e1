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

	"ads-manager/internal/adapter/cache"
	httpadapter "ads-manager/internal/adapter/http"
	"ads-manager/internal/adapter/janitor"
	"ads-manager/internal/adapter/platform"
	"ads-manager/internal/adapter/postgres"
	"ads-manager/internal/adapter/usecase"
	"ads-manager/internal/config"
	"ads-manager/internal/config/configs"
	"ads-manager/internal/core/port"
	"ads-manager/internal/db"
)

// main is the entry point of the ads dashboard backend. It loads
// configuration, optionally runs database migrations, wires the stores,
// the platform client and the use cases, then serves HTTP until SIGINT
// or SIGTERM and shuts down gracefully.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	if err = run(cfg, logger); err != nil {
		logger.Error("fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

type stores struct {
	cache    port.Cache
	sessions port.SessionStore
	markers  port.ConnectStateStore
	close    func() error
}

// newStores picks Redis when an address is configured and the in-process
// stores otherwise.
func newStores(ctx context.Context, cfg configs.Redis, logger *slog.Logger) (stores, error) {
	if cfg.Addr == "" {
		logger.Warn("no redis address configured, using in-memory stores")
		return stores{
			cache:    cache.NewMemoryCache(),
			sessions: cache.NewMemorySessionStore(),
			markers:  cache.NewMemoryConnectStore(),
			close:    func() error { return nil },
		}, nil
	}
	client, err := cache.Connect(ctx, cfg.Addr)
	if err != nil {
		return stores{}, fmt.Errorf("redis: %w", err)
	}
	return stores{
		cache:    cache.NewRedisCache(client),
		sessions: cache.NewRedisSessionStore(client),
		markers:  cache.NewRedisConnectStore(client),
		close:    client.Close,
	}, nil
}

func run(cfg config.Config, logger *slog.Logger) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	st, err := newStores(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()

	drafts := postgres.NewDraftRepository(pool)
	if cfg.Psql.SeedUser != "" {
		if err = db.Seed(ctx, drafts, cfg.Psql.SeedUser); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo drafts seeded", slog.String("user_id", cfg.Psql.SeedUser))
	}

	api := platform.NewClient(cfg.Platform, logger)
	sessions := usecase.NewSessionService(st.sessions, api, cfg.Session, logger)
	accounts := usecase.NewAccountService(api, st.cache, cfg.Platform.CacheTTL, logger)
	campaigns := usecase.NewCampaignService(api, st.cache, cfg.Platform.CacheTTL, cfg.Platform.BulkParallelism, logger)
	builder := usecase.NewBuilderService(drafts, accounts, campaigns, logger)

	handler := httpadapter.NewHandler(httpadapter.Services{
		Sessions:  sessions,
		Accounts:  accounts,
		Connect:   usecase.NewConnectService(api, st.markers, accounts, sessions, cfg.Connect, logger),
		Campaigns: campaigns,
		Analytics: usecase.NewAnalyticsService(api, st.cache, cfg.Platform.CacheTTL, logger),
		Builder:   builder,
		MetaApps:  usecase.NewMetaAppService(api, sessions, st.cache, cfg.Platform.CacheTTL, logger),
		Pages:     usecase.NewPageService(api, st.cache, cfg.Platform.CacheTTL, logger),
	}, cfg.Session, logger)

	if cfg.Drafts.JanitorSchedule != "" {
		j, err := janitor.New(cfg.Drafts, builder, logger)
		if err != nil {
			return err
		}
		j.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			j.Stop(stopCtx)
		}()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
