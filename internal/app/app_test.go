package app

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadline/web/internal/config"
	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

// fakeMarketplace answers the handful of upstream routes the tests touch.
func fakeMarketplace(t *testing.T) *httptest.Server {
	t.Helper()
	users := map[string]model.User{
		"admin-token":    {ID: 1, Name: "Ops", Role: model.RoleAdmin},
		"designer-token": {ID: 2, Name: "Dee", Role: model.RoleDesigner},
	}

	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var req model.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(model.AuthResponse{
			User:  model.User{ID: 2, Email: req.Email, Role: model.RoleDesigner, Profile: &model.Profile{HasCompletedOnboarding: false}},
			Token: "designer-token",
		})
	})
	r.Get("/user", func(w http.ResponseWriter, r *http.Request) {
		user, ok := users[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": user})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, apiURL string) *config.Config {
	return &config.Config{
		AppPort:         0,
		APIBaseURL:      apiURL,
		APITimeout:      5 * time.Second,
		DatabasePath:    filepath.Join(t.TempDir(), "threadline.db"),
		LogLevel:        "DEBUG",
		CacheStaleTime:  30 * time.Second,
		CacheRetryCount: 0,
		SnapshotTTL:     time.Hour,
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	app, err := NewApp(cfg)
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t, testConfig(t, fakeMarketplace(t).URL))

	assert.NotNil(t, app.DB)
	assert.NotNil(t, app.Server)
	assert.NotNil(t, app.Cache)
	assert.NotNil(t, app.Poller)
	assert.Nil(t, app.Redis)
}

func TestNewApp_WithRedisSnapshots(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t, fakeMarketplace(t).URL)
	cfg.RedisAddr = mr.Addr()

	app := newTestApp(t, cfg)

	assert.NotNil(t, app.Redis)
}

func TestNewApp_UnreachableRedisIsOptional(t *testing.T) {
	cfg := testConfig(t, fakeMarketplace(t).URL)
	cfg.RedisAddr = "127.0.0.1:1"

	app := newTestApp(t, cfg)

	assert.Nil(t, app.Redis)
}

func TestApp_ContactSubmissionIsStoredAndListed(t *testing.T) {
	app := newTestApp(t, testConfig(t, fakeMarketplace(t).URL))
	srv := httptest.NewServer(app.Server.Handler)
	defer srv.Close()

	body := `{"name":"Ada","email":"ada@example.com","subject":"sales","message":"Please send me your price list."}`
	resp, err := http.Post(srv.URL+"/api/contact", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/admin/contact-submissions", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page pagination.Page[model.ContactSubmission]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "ada@example.com", page.Data[0].Email)
	assert.Equal(t, 1, page.Meta.Total)
}

func TestApp_DesignerCannotListContactSubmissions(t *testing.T) {
	app := newTestApp(t, testConfig(t, fakeMarketplace(t).URL))
	srv := httptest.NewServer(app.Server.Handler)
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/admin/contact-submissions", nil)
	req.Header.Set("Authorization", "Bearer designer-token")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestApp_LoginRedirectsToOnboarding(t *testing.T) {
	app := newTestApp(t, testConfig(t, fakeMarketplace(t).URL))
	srv := httptest.NewServer(app.Server.Handler)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/session", "application/json",
		strings.NewReader(`{"email":"dee@example.com","password":"secret"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session struct {
		Token    string `json:"token"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.Equal(t, "designer-token", session.Token)
	assert.Equal(t, "/onboarding", session.Redirect)
}

func TestNewLogger(t *testing.T) {
	assert.True(t, newLogger("debug").Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, newLogger("WARN").Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, newLogger("bogus").Enabled(t.Context(), slog.LevelInfo))
}
