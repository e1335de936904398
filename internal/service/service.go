// Package service binds cache keys, fetch functions and polling cadence to
// the marketplace API, one service per feature area. Every key carries the
// session scope so cached data never leaks between users of the same process.
package service

import (
	"context"
	"log/slog"

	"github.com/benbjohnson/clock"

	"threadline/web/internal/apiclient"
	"threadline/web/internal/cache"
	"threadline/web/internal/config"
	"threadline/web/internal/poller"
)

// Deps is the shared machinery every service is built on.
type Deps struct {
	Cache     *cache.Store
	Poller    *poller.Scheduler
	Intervals config.Intervals
	Clock     clock.Clock
	Logger    *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = clock.New()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Intervals == (config.Intervals{}) {
		d.Intervals = config.DefaultIntervals()
	}
	return d
}

// key builds a cache key scoped to the session in ctx.
func key(ctx context.Context, resource string, params ...any) cache.Key {
	return cache.NewKey(resource, append(params, "scope", apiclient.Scope(ctx))...)
}

// inScope matches keys of the session in ctx whose resource starts with one of
// the given prefixes.
func inScope(ctx context.Context, prefixes ...string) func(cache.Key) bool {
	scope := apiclient.Scope(ctx)
	return func(k cache.Key) bool {
		if k.Param("scope") != scope {
			return false
		}
		for _, p := range prefixes {
			if k.HasPrefix(p) {
				return true
			}
		}
		return false
	}
}

// detach keeps the session token of ctx for a poll loop that outlives the
// request that started it.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
