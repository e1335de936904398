package service

import (
	"context"
	"errors"
	"fmt"

	"threadline/web/internal/apiclient"
	"threadline/web/internal/cache"
	app_errors "threadline/web/internal/errors"
	"threadline/web/internal/model"
	"threadline/web/internal/routing"
)

// AuthAPI is the part of the marketplace API the auth flow needs.
type AuthAPI interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Logout(ctx context.Context) error
	GetUser(ctx context.Context) (*model.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error
}

// Session is the outcome of a successful login or registration.
type Session struct {
	User     model.User `json:"user"`
	Token    string     `json:"token"`
	Redirect string     `json:"redirect"`
}

// AuthService handles sign-in and the cached current user.
type AuthService struct {
	api  AuthAPI
	deps Deps
}

func NewAuthService(api AuthAPI, deps Deps) *AuthService {
	return &AuthService{api: api, deps: deps.withDefaults()}
}

func userKey(ctx context.Context) cache.Key { return key(ctx, "auth/user") }

// Login signs in, caches the user for the new session and resolves where the
// user lands.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*Session, error) {
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return s.start(ctx, resp), nil
}

// Register creates an account and signs it in.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*Session, error) {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return s.start(ctx, resp), nil
}

func (s *AuthService) start(ctx context.Context, resp *model.AuthResponse) *Session {
	user := resp.User
	s.deps.Cache.SetData(userKey(apiclient.WithToken(ctx, resp.Token)), &user)
	redirect := routing.RedirectFor(&user)
	s.deps.Logger.Info("User signed in", "user_id", user.ID, "role", user.Role, "redirect", redirect)
	return &Session{User: user, Token: resp.Token, Redirect: redirect}
}

// CurrentUser returns the signed-in user, from cache when fresh.
func (s *AuthService) CurrentUser(ctx context.Context) (*model.User, error) {
	return cache.Query(ctx, s.deps.Cache, userKey(ctx), s.api.GetUser)
}

// Redirect returns the landing path for the session in ctx. An expired or
// missing session lands on the login page.
func (s *AuthService) Redirect(ctx context.Context) (string, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, app_errors.ErrUnauthorized) {
			return routing.RedirectFor(nil), nil
		}
		return "", err
	}
	return routing.RedirectFor(user), nil
}

// Logout revokes the token and drops everything cached or polled for the
// session, even when the API call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)

	scope := apiclient.Scope(ctx)
	// Loops go first so no tick can recreate an entry after the removal.
	stopped := 0
	if s.deps.Poller != nil {
		stopped = s.deps.Poller.StopWhere(func(k string) bool { return cache.Key(k).Param("scope") == scope })
	}
	removed := s.deps.Cache.RemoveWhere(func(k cache.Key) bool { return k.Param("scope") == scope })
	s.deps.Logger.Info("Session cleared", "cache_entries", removed, "pollers", stopped)

	if err != nil && !errors.Is(err, app_errors.ErrUnauthorized) {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.api.ForgotPassword(ctx, email)
}

func (s *AuthService) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error {
	return s.api.ResetPassword(ctx, req)
}
