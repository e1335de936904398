package api

import (
	"net/http"

	"threadline/web/internal/interfaces"
	"threadline/web/internal/model"
)

type AdminHandler struct {
	admin interfaces.AdminService
}

func NewAdminHandler(admin interfaces.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// UserStatusRequest activates or suspends an account.
type UserStatusRequest struct {
	Status model.UserStatus `json:"status" validate:"required,oneof=active suspended"`
}

// HandleUsers godoc
// @Summary      List users
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int     false  "Page number"
// @Param        role  query     string  false  "Role filter"
// @Success      200   {object}  pagination.Page[model.User]
// @Failure      403   {object}  ErrorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	role := model.Role(r.URL.Query().Get("role"))
	page, err := h.admin.Users(r.Context(), queryInt(r, "page", 1), role)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// HandleStats godoc
// @Summary      Back-office statistics
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.AdminStats
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// HandleUserStatus godoc
// @Summary      Update a user's status
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userID  path      int                true  "User ID"
// @Param        status  body      UserStatusRequest  true  "New status"
// @Success      200     {object}  model.User
// @Failure      400     {object}  ErrorResponse
// @Router       /v1/admin/users/{userID}/status [patch]
func (h *AdminHandler) HandleUserStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	var req UserStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	user, err := h.admin.UpdateUserStatus(r.Context(), id, req.Status)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}
