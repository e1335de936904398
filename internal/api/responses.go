package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"threadline/web/internal/apiclient"
	app_errors "threadline/web/internal/errors"
)

// ErrorResponse defines the standard JSON structure for error messages.
// Errors is set for validation failures, keyed by JSON field name.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors,omitempty"`
}

// StatusResponse defines a generic success response for operations that
// don't need to return a resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// ContactResponse is returned when a contact form submission is accepted.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondWithError maps business-layer errors to HTTP status codes and writes
// a standard JSON error body.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	resp := ErrorResponse{}

	switch {
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		resp.Error = "Validation failed"
		var ve *ValidationError
		if errors.As(err, &ve) {
			resp.Errors = ve.Fields
		} else if fields := apiclient.FieldErrors(err); len(fields) > 0 {
			resp.Errors = fields
		} else {
			resp.Error = err.Error()
		}
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		resp.Error = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		resp.Error = "Authentication required."
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		resp.Error = "You do not have permission to perform this action."
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		resp.Error = "A conflict occurred with the current state of the resource."
	case errors.Is(err, app_errors.ErrNetwork):
		statusCode = http.StatusBadGateway
		resp.Error = "The marketplace is unreachable. Please try again."
	default:
		statusCode = http.StatusInternalServerError
		resp.Error = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", resp.Error, "internal_error", err)

	respondWithJSON(w, statusCode, resp)
}

// respondWithBadRequest is used for payloads that could not be decoded at all.
func respondWithBadRequest(w http.ResponseWriter, message string) {
	respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// decodeJSON reads the request body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithBadRequest(w, "Invalid request payload")
		return false
	}
	return true
}

// queryInt returns the named query parameter, or def when it is absent or
// not a number.
func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return def
	}
	return v
}

// pathID parses an int64 chi URL parameter and writes a 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respondWithBadRequest(w, "Invalid "+name)
		return 0, false
	}
	return id, true
}
