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

type DesignHandler struct {
	designs interfaces.DesignService
}

func NewDesignHandler(designs interfaces.DesignService) *DesignHandler {
	return &DesignHandler{designs: designs}
}

// AnalysisResponse reports the analysis status of a design and whether the
// server is still polling it.
type AnalysisResponse struct {
	DesignID int64                `json:"design_id"`
	Status   model.AnalysisStatus `json:"ai_analysis_status"`
	Tracking poller.State         `json:"tracking"`
}

// HandleList godoc
// @Summary      List designs
// @Tags         Designs
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number"
// @Success      200   {object}  pagination.Page[model.Design]
// @Router       /v1/designs [get]
func (h *DesignHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.designs.List(r.Context(), queryInt(r, "page", 1))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// HandleGet godoc
// @Summary      Show a design
// @Tags         Designs
// @Produce      json
// @Security     BearerAuth
// @Param        designID  path      int  true  "Design ID"
// @Success      200       {object}  model.Design
// @Failure      404       {object}  ErrorResponse
// @Router       /v1/designs/{designID} [get]
func (h *DesignHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "designID")
	if !ok {
		return
	}
	design, err := h.designs.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, design)
}

// HandleTrackAnalysis godoc
// @Summary      Track AI analysis
// @Description  Starts polling the design until its analysis completes or fails.
// @Tags         Designs
// @Produce      json
// @Security     BearerAuth
// @Param        designID  path      int  true  "Design ID"
// @Success      202       {object}  AnalysisResponse
// @Router       /v1/designs/{designID}/analysis [post]
func (h *DesignHandler) HandleTrackAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "designID")
	if !ok {
		return
	}
	// A design that cannot be loaded is never tracked.
	design, err := h.designs.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	err = h.designs.TrackAnalysis(r.Context(), id, func(d model.Design) {
		slog.Info("Design analysis completed", "design_id", d.ID)
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, AnalysisResponse{
		DesignID: id,
		Status:   design.AIAnalysisStatus,
		Tracking: h.designs.AnalysisState(r.Context(), id),
	})
}

// HandleStopAnalysis godoc
// @Summary      Stop tracking AI analysis
// @Tags         Designs
// @Produce      json
// @Security     BearerAuth
// @Param        designID  path      int  true  "Design ID"
// @Success      200       {object}  StatusResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /v1/designs/{designID}/analysis [delete]
func (h *DesignHandler) HandleStopAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "designID")
	if !ok {
		return
	}
	if !h.designs.StopTracking(r.Context(), id) {
		respondWithError(w, fmt.Errorf("%w: design %d is not being tracked", app_errors.ErrNotFound, id))
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "stopped"})
}

// HandleAnalysis godoc
// @Summary      AI analysis status
// @Tags         Designs
// @Produce      json
// @Security     BearerAuth
// @Param        designID  path      int  true  "Design ID"
// @Success      200       {object}  AnalysisResponse
// @Router       /v1/designs/{designID}/analysis [get]
func (h *DesignHandler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "designID")
	if !ok {
		return
	}
	h.respondAnalysis(w, r, id, http.StatusOK)
}

func (h *DesignHandler) respondAnalysis(w http.ResponseWriter, r *http.Request, id int64, code int) {
	design, err := h.designs.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, code, AnalysisResponse{
		DesignID: id,
		Status:   design.AIAnalysisStatus,
		Tracking: h.designs.AnalysisState(r.Context(), id),
	})
}
