package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"threadline/web/internal/apiclient"
	app_errors "threadline/web/internal/errors"
	"threadline/web/internal/interfaces"
	"threadline/web/internal/routing"
)

// BearerToken copies the caller's bearer token into the request context, where
// the API client and the session-scoped cache keys pick it up.
func BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if ok && strings.EqualFold(scheme, "Bearer") && strings.TrimSpace(token) != "" {
			r = r.WithContext(apiclient.WithToken(r.Context(), strings.TrimSpace(token)))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession rejects requests without a bearer token before any upstream
// call is made.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiclient.TokenFromContext(r.Context()) == "" {
			respondWithError(w, app_errors.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireArea only lets through users whose role may open area, as decided by
// the routing policy.
func RequireArea(auth interfaces.AuthService, area string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.CurrentUser(r.Context())
			if err != nil {
				respondWithError(w, err)
				return
			}
			if !routing.CanAccess(user.Role, area) {
				slog.Info("Blocked access to restricted area", "user_id", user.ID, "role", user.Role, "area", area)
				respondWithError(w, fmt.Errorf("%s may not open %s: %w", user.Role, area, app_errors.ErrPermission))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// methodNotAllowed answers with the standard JSON error body instead of chi's
// plain-text default.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: "The requested resource was not found."})
}
