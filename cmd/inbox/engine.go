package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"

	"threadline/web/internal/apiclient"
	"threadline/web/internal/cache"
	"threadline/web/internal/config"
	"threadline/web/internal/poller"
	"threadline/web/internal/service"
)

var errNoToken = errors.New("not signed in: pass --token or set THREADLINE_TOKEN")

// engine is the sync machinery of one CLI invocation.
type engine struct {
	auth      *service.AuthService
	messages  *service.MessageService
	suppliers *service.SupplierService
	poller    *poller.Scheduler
	log       *slog.Logger
}

func newEngine(cmd *cobra.Command) (*engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	baseURL := cfg.APIBaseURL
	if v, _ := cmd.Flags().GetString("api"); v != "" {
		baseURL = v
	}

	clk := clock.New()
	deps := service.Deps{
		Cache: cache.New(cache.Options{
			StaleTime: cfg.CacheStaleTime,
			Retry:     cfg.CacheRetryCount,
			Clock:     clk,
			Logger:    logger,
		}),
		Poller:    poller.New(poller.Options{Clock: clk, Logger: logger}),
		Intervals: cfg.Intervals(),
		Clock:     clk,
		Logger:    logger,
	}
	client := apiclient.New(apiclient.Options{BaseURL: baseURL, Timeout: cfg.APITimeout, Logger: logger})

	return &engine{
		auth:      service.NewAuthService(client, deps),
		messages:  service.NewMessageService(client, deps),
		suppliers: service.NewSupplierService(client, deps),
		poller:    deps.Poller,
		log:       logger,
	}, nil
}

// sessionContext attaches the caller's token to ctx.
func sessionContext(ctx context.Context, cmd *cobra.Command) (context.Context, error) {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv("THREADLINE_TOKEN")
	}
	if token == "" {
		return nil, errNoToken
	}
	return apiclient.WithToken(ctx, token), nil
}

// follow hands every cache update to handle until ctx is done or the
// subscription is closed, e.g. because the session's entries were removed.
func follow(ctx context.Context, updates <-chan cache.Entry, handle func(cache.Entry)) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-updates:
			if !ok {
				return
			}
			handle(entry)
		}
	}
}
