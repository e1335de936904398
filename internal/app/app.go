package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"threadline/web/internal/api"
	"threadline/web/internal/apiclient"
	"threadline/web/internal/cache"
	"threadline/web/internal/config"
	"threadline/web/internal/database"
	"threadline/web/internal/poller"
	"threadline/web/internal/repository"
	"threadline/web/internal/service"
)

const shutdownTimeout = 15 * time.Second

// App is the wired backend-for-frontend process.
type App struct {
	Config *config.Config
	DB     *sql.DB
	// Redis is nil when no snapshot backend is configured or reachable.
	Redis  *redis.Client
	Cache  *cache.Store
	Poller *poller.Scheduler
	Server *http.Server
}

// Run loads the configuration, serves until SIGINT or SIGTERM and returns the
// process exit code.
func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx); err != nil {
		slog.Error("Server failed", "error", err)
		return 1
	}
	return 0
}

// NewApp wires storage, the sync engine, the services and the HTTP router.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	logger := slog.Default()
	clk := clock.New()

	a := &App{Config: cfg, DB: db}

	var backend cache.Backend
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			slog.Warn("Redis unreachable, cache snapshots disabled", "addr", cfg.RedisAddr, "error", err)
			_ = rdb.Close()
		} else {
			slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr)
			a.Redis = rdb
			backend = repository.NewSnapshotStore(rdb, cfg.SnapshotTTL)
		}
	}

	a.Cache = cache.New(cache.Options{
		StaleTime: cfg.CacheStaleTime,
		Retry:     cfg.CacheRetryCount,
		Backend:   backend,
		Clock:     clk,
		Logger:    logger,
	})
	a.Poller = poller.New(poller.Options{Clock: clk, Logger: logger})

	client := apiclient.New(apiclient.Options{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout, Logger: logger})
	deps := service.Deps{
		Cache:     a.Cache,
		Poller:    a.Poller,
		Intervals: cfg.Intervals(),
		Clock:     clk,
		Logger:    logger,
	}

	authService := service.NewAuthService(client, deps)
	contactService := service.NewContactService(repository.NewContactRepository(db), clk, logger)

	router := api.NewRouter(api.Handlers{
		Auth:     authService,
		Contact:  api.NewContactHandler(contactService),
		Session:  api.NewSessionHandler(authService),
		Designs:  api.NewDesignHandler(service.NewDesignService(client, deps)),
		Messages: api.NewMessageHandler(service.NewMessageService(client, deps), authService),
		Supplier: api.NewSupplierHandler(service.NewSupplierService(client, deps)),
		Billing:  api.NewBillingHandler(service.NewBillingService(client, deps)),
		Admin:    api.NewAdminHandler(service.NewAdminService(client, deps)),
		Validate: api.NewValidationHandler(service.NewValidationService(client, deps)),
	})

	a.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return a, nil
}

// Serve runs the HTTP server until ctx is done, then drains in-flight requests
// and stops every poll loop.
func (a *App) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting server", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := a.Server.Shutdown(shutdownCtx)
		a.Poller.StopAll()
		return err
	})

	return g.Wait()
}

// Close releases the database and redis connections.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}
	if err := a.DB.Close(); err != nil {
		slog.Error("Failed to close database connection", "error", err)
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	slog.SetDefault(newLogger(logLevel))
}

func newLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
