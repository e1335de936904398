package api

import (
	"fmt"
	"log/slog"
	"net/http"

	app_errors "threadline/web/internal/errors"
	"threadline/web/internal/interfaces"
	"threadline/web/internal/model"
	"threadline/web/internal/poller"
)

type ValidationHandler struct {
	validations interfaces.ValidationService
}

func NewValidationHandler(validations interfaces.ValidationService) *ValidationHandler {
	return &ValidationHandler{validations: validations}
}

// ValidationStatusResponse is a validation and whether it is still polled.
type ValidationStatusResponse struct {
	Validation *model.Validation `json:"validation"`
	Tracking   poller.State      `json:"tracking"`
}

// HandleList godoc
// @Summary      List validations of a design
// @Tags         Validations
// @Produce      json
// @Security     BearerAuth
// @Param        designID  path      int  true   "Design ID"
// @Param        page      query     int  false  "Page number"
// @Success      200       {object}  pagination.Page[model.Validation]
// @Router       /v1/designs/{designID}/validations [get]
func (h *ValidationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	designID, ok := pathID(w, r, "designID")
	if !ok {
		return
	}
	page, err := h.validations.List(r.Context(), designID, queryInt(r, "page", 1))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// HandleGet godoc
// @Summary      Show a validation
// @Tags         Validations
// @Produce      json
// @Security     BearerAuth
// @Param        validationID  path      int  true  "Validation ID"
// @Success      200           {object}  ValidationStatusResponse
// @Failure      404           {object}  ErrorResponse
// @Router       /v1/validations/{validationID} [get]
func (h *ValidationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "validationID")
	if !ok {
		return
	}
	h.respond(w, r, id, http.StatusOK)
}

// HandleTrack godoc
// @Summary      Track a validation
// @Description  Polls the validation until it leaves pending and active.
// @Tags         Validations
// @Produce      json
// @Security     BearerAuth
// @Param        validationID  path      int  true  "Validation ID"
// @Success      202           {object}  ValidationStatusResponse
// @Router       /v1/validations/{validationID}/track [post]
func (h *ValidationHandler) HandleTrack(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "validationID")
	if !ok {
		return
	}
	v, err := h.validations.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	err = h.validations.Track(r.Context(), id, func(v model.Validation) {
		slog.Info("Validation settled", "validation_id", v.ID, "status", v.Status)
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, ValidationStatusResponse{Validation: v, Tracking: h.validations.TrackState(r.Context(), id)})
}

// HandleStopTrack godoc
// @Summary      Stop tracking a validation
// @Tags         Validations
// @Produce      json
// @Security     BearerAuth
// @Param        validationID  path      int  true  "Validation ID"
// @Success      200           {object}  StatusResponse
// @Failure      404           {object}  ErrorResponse
// @Router       /v1/validations/{validationID}/track [delete]
func (h *ValidationHandler) HandleStopTrack(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "validationID")
	if !ok {
		return
	}
	if !h.validations.StopTracking(r.Context(), id) {
		respondWithError(w, fmt.Errorf("%w: validation %d is not being tracked", app_errors.ErrNotFound, id))
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "stopped"})
}

func (h *ValidationHandler) respond(w http.ResponseWriter, r *http.Request, id int64, code int) {
	v, err := h.validations.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, code, ValidationStatusResponse{Validation: v, Tracking: h.validations.TrackState(r.Context(), id)})
}
