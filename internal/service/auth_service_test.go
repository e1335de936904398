package service_test

import (
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadline/web/internal/apiclient"
	"threadline/web/internal/cache"
	"threadline/web/internal/model"
	"threadline/web/internal/poller"
	"threadline/web/internal/routing"
	"threadline/web/internal/service"
)

func TestAuthService_LoginRedirectsByRole(t *testing.T) {
	users := map[string]model.User{
		"admin@example.com":    {ID: 1, Role: model.RoleAdmin},
		"supplier@example.com": {ID: 2, Role: model.RoleSupplier},
		"new@example.com":      {ID: 3, Role: model.RoleDesigner, Profile: &model.Profile{HasCompletedOnboarding: false}},
		"done@example.com":     {ID: 4, Role: model.RoleDesigner, Profile: &model.Profile{HasCompletedOnboarding: true}},
	}
	want := map[string]string{
		"admin@example.com":    routing.PathAdminDashboard,
		"supplier@example.com": routing.PathSupplierDashboard,
		"new@example.com":      routing.PathOnboarding,
		"done@example.com":     routing.PathDashboard,
	}

	env := setupEnv(t)
	env.router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var req model.LoginRequest
		_ = decode(r, &req)
		u, ok := users[req.Email]
		if !ok {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"message": "These credentials do not match our records."})
			return
		}
		writeJSON(w, http.StatusOK, model.AuthResponse{User: u, Token: "tok-" + req.Email})
	})
	svc := service.NewAuthService(env.api, env.deps)

	for email, path := range want {
		t.Run(email, func(t *testing.T) {
			sess, err := svc.Login(env.ctx, model.LoginRequest{Email: email, Password: "secret"})
			require.NoError(t, err)
			assert.Equal(t, path, sess.Redirect)
			assert.Equal(t, "tok-"+email, sess.Token)
		})
	}
}

func TestAuthService_CurrentUserIsCachedPerSession(t *testing.T) {
	env := setupEnv(t)
	var calls int32
	env.router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.AuthResponse{User: model.User{ID: 9, Role: model.RoleDesigner}, Token: "tok-9"})
	})
	env.router.Get("/user", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusOK, data(model.User{ID: 9, Role: model.RoleDesigner}))
	})
	svc := service.NewAuthService(env.api, env.deps)

	sess, err := svc.Login(env.ctx, model.LoginRequest{Email: "a@b.co", Password: "x"})
	require.NoError(t, err)

	sessionCtx := apiclient.WithToken(env.ctx, sess.Token)
	u, err := svc.CurrentUser(sessionCtx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), u.ID)
	assert.Zero(t, atomic.LoadInt32(&calls), "login seeds the cached user")

	// A different session never sees that entry.
	_, err = svc.CurrentUser(apiclient.WithToken(env.ctx, "someone-else"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestAuthService_RedirectWithoutSession(t *testing.T) {
	env := setupEnv(t)
	env.router.Get("/user", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthenticated."})
	})
	svc := service.NewAuthService(env.api, env.deps)

	path, err := svc.Redirect(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, routing.PathLogin, path)
}

func TestAuthService_LogoutClearsOnlyThatSession(t *testing.T) {
	env := setupEnv(t)
	env.router.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	svc := service.NewAuthService(env.api, env.deps)

	mine := cache.NewKey("billing/plans", "scope", apiclient.Scope(env.ctx))
	theirs := cache.NewKey("billing/plans", "scope", apiclient.Scope(apiclient.WithToken(env.ctx, "other")))
	env.deps.Cache.SetData(mine, []model.Plan{})
	env.deps.Cache.SetData(theirs, []model.Plan{})

	require.NoError(t, svc.Logout(env.ctx))

	_, ok := env.deps.Cache.Get(mine)
	assert.False(t, ok)
	_, ok = env.deps.Cache.Get(theirs)
	assert.True(t, ok)
}

func TestAuthService_LogoutStopsSessionPolling(t *testing.T) {
	env := setupEnv(t)
	env.router.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	var calls int32
	env.router.Get("/conversations/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusOK, page([]model.Message{}, 1, 1, 0))
	})
	auth := service.NewAuthService(env.api, env.deps)
	messages := service.NewMessageService(env.api, env.deps)
	thread := cache.NewKey("messages/thread", "conversation", 1, "page", 1, "scope", apiclient.Scope(env.ctx))

	require.NoError(t, messages.WatchThread(env.ctx, 1))
	waitFor(t, &calls, 1)

	require.NoError(t, auth.Logout(env.ctx))
	assert.Equal(t, poller.StateNone, env.deps.Poller.State(string(thread)))

	env.clock.Add(10 * time.Second)
	assert.Never(t, func() bool {
		_, ok := env.deps.Cache.Get(thread)
		return ok || atomic.LoadInt32(&calls) > 1
	}, 50*time.Millisecond, 5*time.Millisecond)
}
