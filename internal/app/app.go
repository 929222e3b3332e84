package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skillbridge/directory/internal/bookmarks"
	"github.com/skillbridge/directory/internal/catalog"
	"github.com/skillbridge/directory/internal/config"
	"github.com/skillbridge/directory/internal/httpserver"
	"github.com/skillbridge/directory/internal/httpserver/deps"
	"github.com/skillbridge/directory/internal/logger"
	"github.com/skillbridge/directory/internal/redis"
	"github.com/skillbridge/directory/internal/scheduler"
	directorysrc "github.com/skillbridge/directory/internal/sources/directory"
	"github.com/skillbridge/directory/internal/store"
	filestore "github.com/skillbridge/directory/internal/store/file"
	redisstore "github.com/skillbridge/directory/internal/store/redis"
	"github.com/skillbridge/directory/internal/version"
)

type App struct {
	cfg           *config.Config
	logger        logger.Logger
	server        *httpserver.Server
	redisClient   *goredis.Client
	catalogStore  *catalog.Store
	loader        *directorysrc.Loader
	controller    *bookmarks.Controller
	reloadTrigger chan struct{}
	debouncer     *scheduler.Debouncer
	stopCh        chan struct{}
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Pick the bookmark backend: redis when configured, otherwise the
	// file store. Both persist the same JSON payload.
	var bookmarkStore store.BookmarkStore
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		redisClient = client
		bookmarkStore = redisstore.NewStore(client)
		loggerClient.Info("bookmark store: redis",
			logger.String("addr", cfg.RedisAddr))
	} else {
		bookmarkStore = filestore.NewStore(cfg.BookmarkFile)
		loggerClient.Info("bookmark store: file",
			logger.String("path", cfg.BookmarkFile))
	}

	catalogStore := catalog.NewStore()
	loader := directorysrc.NewLoader(cfg.CoursesSource, cfg.InternshipsSource, cfg.FetchTimeout)
	controller := bookmarks.NewController(bookmarkStore, catalogStore, loggerClient)

	// Manual reload requests are coalesced through the debouncer so a
	// burst of triggers produces a single wholesale reload.
	reloadTrigger := make(chan struct{}, 1)
	debouncer := scheduler.NewDebouncer(cfg.DebounceDelay)

	d := deps.Deps{
		Logger:           loggerClient,
		StartTime:        time.Now(),
		Version:          version.Version,
		Commit:           version.Commit,
		BuildDate:        version.BuildDate,
		GoVersion:        version.GoVersion,
		TimeNow:          time.Now,
		Catalog:          catalogStore,
		Bookmarks:        controller,
		ReloadTrigger:    reloadTrigger,
		CORSOrigins:      cfg.CORSOrigins,
		AllowedHosts:     cfg.AllowedHosts,
		AllowedCIDRS:     cfg.AllowedCIDRS,
		TrustProxy:       cfg.TrustProxy,
		SearchRateBurst:  cfg.SearchRateBurst,
		SearchRateRefill: cfg.SearchRateRefill,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:           cfg,
		logger:        loggerClient,
		server:        server,
		redisClient:   redisClient,
		catalogStore:  catalogStore,
		loader:        loader,
		controller:    controller,
		reloadTrigger: reloadTrigger,
		debouncer:     debouncer,
		stopCh:        make(chan struct{}),
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting SkillBridge directory v%s on %s", version.Version, a.cfg.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Hydrate bookmarks before serving so the first render already has
	// indicator state.
	a.controller.Load(ctx)

	// The catalog loads exactly once at startup; the store stays in
	// the loading state until both collections are in, and readiness
	// flips only then.
	go a.loadCatalog(ctx)

	// Listen for manual reload triggers, coalesced through the
	// debouncer.
	go a.reloadLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	close(a.stopCh)
	a.debouncer.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}

	a.logger.Info("✅ SkillBridge directory stopped cleanly")
	return nil
}

// loadCatalog performs one wholesale load and swaps both collections
// in together. Fetch failures are not errors to the caller: the failed
// source is served from the built-in dataset instead.
func (a *App) loadCatalog(ctx context.Context) {
	a.logger.Info("loading catalog",
		logger.String("courses", a.cfg.CoursesSource),
		logger.String("internships", a.cfg.InternshipsSource))

	result := a.loader.Load(ctx)

	if result.CoursesErr != nil {
		a.logger.Warn("courses source unavailable, using built-in dataset",
			logger.Error(result.CoursesErr))
	}
	if result.InternshipsErr != nil {
		a.logger.Warn("internships source unavailable, using built-in dataset",
			logger.Error(result.InternshipsErr))
	}

	a.catalogStore.Replace(result.Catalog)

	a.logger.Info("catalog ready",
		logger.Int("courses", len(result.Catalog.Courses)),
		logger.Int("internships", len(result.Catalog.Internships)),
		logger.Bool("fallback", result.FellBack()))
}

// reloadLoop coalesces manual reload triggers: a burst of requests
// schedules exactly one reload after the quiet interval.
func (a *App) reloadLoop(ctx context.Context) {
	for {
		select {
		case <-a.reloadTrigger:
			a.debouncer.Schedule(func() { a.loadCatalog(ctx) })
		case <-a.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}
