package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"

	"threadline/web/internal/apiclient"
	"threadline/web/internal/cache"
	"threadline/web/internal/config"
	"threadline/web/internal/poller"
	"threadline/web/internal/service"
)

const testToken = "tok-designer"

// testEnv wires the real API client to a fake marketplace API.
type testEnv struct {
	api    *apiclient.Client
	deps   service.Deps
	clock  *clock.Mock
	router chi.Router
	ctx    context.Context
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	r := chi.NewRouter()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	mc := clock.NewMock()
	mc.Set(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	sched := poller.New(poller.Options{Clock: mc})
	t.Cleanup(sched.StopAll)

	return &testEnv{
		api: apiclient.New(apiclient.Options{BaseURL: srv.URL, Timeout: 2 * time.Second}),
		deps: service.Deps{
			Cache:     cache.New(cache.Options{StaleTime: time.Minute, Clock: mc}),
			Poller:    sched,
			Intervals: config.DefaultIntervals(),
			Clock:     mc,
		},
		clock:  mc,
		router: r,
		ctx:    apiclient.WithToken(context.Background(), testToken),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func data(v any) map[string]any { return map[string]any{"data": v} }

func page(items any, current, last, total int) map[string]any {
	return map[string]any{
		"data": items,
		"meta": map[string]int{"current_page": current, "last_page": last, "per_page": 15, "total": total},
	}
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func scopeOf(env *testEnv) string { return apiclient.Scope(env.ctx) }
