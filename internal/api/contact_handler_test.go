package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"threadline/web/internal/api"
	app_errors "threadline/web/internal/errors"
	"threadline/web/internal/interfaces/mocks"
	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

func setupContactHandler(t *testing.T) (*api.ContactHandler, *mocks.MockContactService) {
	mockSvc := mocks.NewMockContactService(t)
	return api.NewContactHandler(mockSvc), mockSvc
}

// addChiURLParams simulates how the chi router injects URL parameters into
// the request context.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestContactHandler_HandleSubmit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupContactHandler(t)
		body := `{"name":"Ada","email":"ada@example.com","subject":"sales","message":"I would like a quote.","company":"Loom"}`
		mockSvc.On("Submit", mock.Anything, mock.MatchedBy(func(r model.ContactRequest) bool {
			return r.Email == "ada@example.com" && r.Subject == "sales" && r.Company == "Loom"
		})).Return(&model.ContactSubmission{ID: "c1"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.ContactResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("Failure - Bad email and short message are both reported", func(t *testing.T) {
		handler, _ := setupContactHandler(t)
		body := `{"name":"A","email":"bad","subject":"general","message":"short"}`

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeError(t, rr)
		assert.NotEmpty(t, resp.Error)
		assert.Len(t, resp.Errors, 2)
		assert.Contains(t, resp.Errors, "email")
		assert.Contains(t, resp.Errors, "message")
	})

	t.Run("Failure - Subject outside the whitelist", func(t *testing.T) {
		handler, _ := setupContactHandler(t)
		body := `{"name":"Ada","email":"ada@example.com","subject":"press","message":"A long enough message"}`

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeError(t, rr)
		assert.Equal(t, []string{"subject"}, keys(resp.Errors))
	})

	t.Run("Failure - Padding does not count towards the message length", func(t *testing.T) {
		handler, _ := setupContactHandler(t)
		body := `{"name":"Ada","email":"ada@example.com","subject":"other","message":"   tiny      "}`

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Errors, "message")
	})

	t.Run("Failure - Missing fields", func(t *testing.T) {
		handler, _ := setupContactHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.ElementsMatch(t, []string{"name", "email", "subject", "message"}, keys(decodeError(t, rr).Errors))
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler, _ := setupContactHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":`))
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Storage error", func(t *testing.T) {
		handler, mockSvc := setupContactHandler(t)
		body := `{"name":"Ada","email":"ada@example.com","subject":"support","message":"Something broke again."}`
		mockSvc.On("Submit", mock.Anything, mock.Anything).Return(nil, app_errors.ErrInternal).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleSubmit(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotEmpty(t, decodeError(t, rr).Error)
	})
}

func TestContactHandler_HandleList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupContactHandler(t)
		page := pagination.Page[model.ContactSubmission]{
			Data: []model.ContactSubmission{{ID: "c2"}, {ID: "c1"}},
			Meta: pagination.Meta{CurrentPage: 2, LastPage: 2, PerPage: 2, Total: 4},
		}
		mockSvc.On("List", mock.Anything, 2, 2).Return(page, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contact-submissions?page=2&per_page=2", nil)
		rr := httptest.NewRecorder()
		handler.HandleList(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got pagination.Page[model.ContactSubmission]
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, page.Meta, got.Meta)
		assert.Len(t, got.Data, 2)
	})

	t.Run("Failure - Service returns error", func(t *testing.T) {
		handler, mockSvc := setupContactHandler(t)
		mockSvc.On("List", mock.Anything, 1, 0).
			Return(pagination.Page[model.ContactSubmission]{}, errors.New("disk gone")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contact-submissions", nil)
		rr := httptest.NewRecorder()
		handler.HandleList(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestContactHandler_HandleGet(t *testing.T) {
	t.Run("Failure - Not Found", func(t *testing.T) {
		handler, mockSvc := setupContactHandler(t)
		mockSvc.On("Get", mock.Anything, "missing").Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contact-submissions/missing", nil)
		req = addChiURLParams(req, map[string]string{"submissionID": "missing"})
		rr := httptest.NewRecorder()
		handler.HandleGet(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
