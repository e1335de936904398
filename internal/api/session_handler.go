package api

import (
	"net/http"

	"threadline/web/internal/interfaces"
	"threadline/web/internal/model"
)

// SessionHandler signs users in and out against the marketplace API and tells
// the frontend where each user lands.
type SessionHandler struct {
	auth interfaces.AuthService
}

func NewSessionHandler(auth interfaces.AuthService) *SessionHandler {
	return &SessionHandler{auth: auth}
}

// SessionResponse is the signed-in user and the path the frontend should open.
type SessionResponse struct {
	User     *model.User `json:"user"`
	Redirect string      `json:"redirect"`
}

// HandleLogin godoc
// @Summary      Sign in
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        credentials  body      model.LoginRequest  true  "Credentials"
// @Success      200          {object}  service.Session
// @Failure      400          {object}  ErrorResponse
// @Failure      401          {object}  ErrorResponse
// @Router       /v1/session [post]
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	session, err := h.auth.Login(r.Context(), req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleCurrent godoc
// @Summary      Current session
// @Description  Returns the signed-in user and the landing path for their role.
// @Tags         Session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SessionResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /v1/session [get]
func (h *SessionHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.CurrentUser(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	redirect, err := h.auth.Redirect(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SessionResponse{User: user, Redirect: redirect})
}

// HandleLogout godoc
// @Summary      Sign out
// @Tags         Session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  StatusResponse
// @Router       /v1/session [delete]
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
