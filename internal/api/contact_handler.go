package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"threadline/web/internal/interfaces"
	"threadline/web/internal/model"
)

const contactThanks = "Thank you for your message. We'll get back to you soon!"

// ContactHandler serves the public contact form and its back-office listing.
type ContactHandler struct {
	service interfaces.ContactService
}

func NewContactHandler(svc interfaces.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// HandleSubmit godoc
// @Summary      Submit the contact form
// @Description  Validates a contact form payload, records it and acknowledges it.
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        contact  body      model.ContactRequest  true  "Contact form"
// @Success      200      {object}  ContactResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      405      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	if _, err := h.service.Submit(r.Context(), req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ContactResponse{Success: true, Message: contactThanks})
}

// HandleList godoc
// @Summary      List contact submissions
// @Tags         Admin
// @Produce      json
// @Param        page      query     int  false  "Page number"
// @Param        per_page  query     int  false  "Page size"
// @Success      200       {object}  pagination.Page[model.ContactSubmission]
// @Failure      403       {object}  ErrorResponse
// @Router       /v1/admin/contact-submissions [get]
func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), queryInt(r, "page", 1), queryInt(r, "per_page", 0))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// HandleGet godoc
// @Summary      Show a contact submission
// @Tags         Admin
// @Produce      json
// @Param        submissionID  path      string  true  "Submission ID"
// @Success      200           {object}  model.ContactSubmission
// @Failure      404           {object}  ErrorResponse
// @Router       /v1/admin/contact-submissions/{submissionID} [get]
func (h *ContactHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sub, err := h.service.Get(r.Context(), chi.URLParam(r, "submissionID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sub)
}
