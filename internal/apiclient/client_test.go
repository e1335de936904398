package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "threadline/web/internal/errors"
	"threadline/web/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// setupClient starts a fake marketplace API served by r.
func setupClient(t *testing.T, r chi.Router) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestClient_LoginAndBearerToken(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		var body model.LoginRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body.Email)
		writeJSON(w, http.StatusOK, model.AuthResponse{
			User:  model.User{ID: 7, Role: model.RoleDesigner},
			Token: "tok-123",
		})
	})
	r.Get("/user", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer tok-123" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthenticated."})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": model.User{ID: 7, Role: model.RoleDesigner}})
	})
	c := setupClient(t, r)
	ctx := context.Background()

	_, err := c.GetUser(ctx)
	assert.ErrorIs(t, err, app_errors.ErrUnauthorized)

	auth, err := c.Login(ctx, model.LoginRequest{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", auth.Token)

	t.Run("Token from context", func(t *testing.T) {
		u, err := c.GetUser(WithToken(ctx, auth.Token))
		require.NoError(t, err)
		assert.Equal(t, int64(7), u.ID)
	})

	t.Run("Client-wide token", func(t *testing.T) {
		c.SetToken(auth.Token)
		u, err := c.GetUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.RoleDesigner, u.Role)
	})
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		want   error
	}{
		{"Forbidden", http.StatusForbidden, map[string]string{"message": "nope"}, app_errors.ErrPermission},
		{"Not found", http.StatusNotFound, map[string]string{"message": "No query results"}, app_errors.ErrNotFound},
		{"Conflict", http.StatusConflict, map[string]string{"message": "taken"}, app_errors.ErrConflict},
		{"Unprocessable", http.StatusUnprocessableEntity, map[string]any{
			"message": "The title field is required.",
			"errors":  map[string][]string{"title": {"The title field is required."}},
		}, app_errors.ErrValidation},
		{"Server error", http.StatusBadGateway, map[string]string{"error": "upstream"}, app_errors.ErrNetwork},
		{"Throttled", http.StatusTooManyRequests, map[string]string{"message": "slow down"}, app_errors.ErrNetwork},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/designs", func(w http.ResponseWriter, req *http.Request) {
				writeJSON(w, tc.status, tc.body)
			})
			c := setupClient(t, r)

			_, err := c.CreateDesign(context.Background(), model.DesignInput{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.want == app_errors.ErrNetwork, app_errors.IsTransient(err))

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
		})
	}

	t.Run("Field errors", func(t *testing.T) {
		r := chi.NewRouter()
		r.Post("/designs", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"message": "invalid",
				"errors":  map[string]any{"title": []string{"Too long.", "Bad."}, "category": "Unknown."},
			})
		})
		c := setupClient(t, r)
		_, err := c.CreateDesign(context.Background(), model.DesignInput{})
		assert.Equal(t, map[string]string{"title": "Too long.", "category": "Unknown."}, FieldErrors(err))
	})
}

func TestClient_TransportFailureIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(Options{BaseURL: url, Timeout: time.Second})
	_, err := c.GetDesign(context.Background(), 1)
	assert.ErrorIs(t, err, app_errors.ErrNetwork)
}

func TestClient_PaginatedListPastLastPage(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/conversations/{id}/messages", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "4", chi.URLParam(req, "id"))
		page := req.URL.Query().Get("page")
		if page != "1" {
			// Some deployments echo the last page's items for out-of-range requests.
			writeJSON(w, http.StatusOK, map[string]any{
				"data": []model.Message{{ID: 1}},
				"meta": map[string]int{"current_page": 9, "last_page": 1, "per_page": 15, "total": 1},
			})
			return
		}
		base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []model.Message{
				{ID: 3, CreatedAt: base.Add(time.Minute)},
				{ID: 2, CreatedAt: base},
				{ID: 1, CreatedAt: base},
			},
			"meta": map[string]int{"current_page": 1, "last_page": 1, "per_page": 15, "total": 3},
		})
	})
	c := setupClient(t, r)

	first, err := c.ListMessages(context.Background(), 4, 1)
	require.NoError(t, err)
	require.Len(t, first.Data, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{first.Data[0].ID, first.Data[1].ID, first.Data[2].ID})
	assert.False(t, first.Meta.HasNext())

	past, err := c.ListMessages(context.Background(), 4, 9)
	require.NoError(t, err)
	assert.True(t, past.IsEmpty())
	assert.Empty(t, past.Controls())
}

func TestClient_SearchSuppliersQuery(t *testing.T) {
	verified := true
	r := chi.NewRouter()
	r.Get("/suppliers", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.Equal(t, "denim", q.Get("q"))
		assert.Equal(t, "Porto", q.Get("location"))
		assert.Equal(t, "true", q.Get("verified"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("per_page"))
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []model.Supplier{{ID: 5, CompanyName: "Tecelagem Norte"}},
			"meta": map[string]int{"current_page": 2, "last_page": 3, "per_page": 10, "total": 21},
		})
	})
	c := setupClient(t, r)

	page, err := c.SearchSuppliers(context.Background(), model.SupplierFilter{
		Query: "denim", Location: "Porto", Verified: &verified, Page: 2, PerPage: 10,
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.True(t, page.Meta.HasNext())
	assert.True(t, page.Meta.HasPrev())
}

func TestClient_UpdateInquiryStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Patch("/inquiries/{id}", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		writeJSON(w, http.StatusOK, map[string]any{"data": model.Inquiry{ID: 11, Status: model.InquiryStatus(body["status"])}})
	})
	c := setupClient(t, r)

	inq, err := c.UpdateInquiryStatus(context.Background(), 11, model.InquiryQuoted)
	require.NoError(t, err)
	assert.Equal(t, model.InquiryQuoted, inq.Status)
}

func TestScope(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "anon", Scope(ctx))

	a := Scope(WithToken(ctx, "alpha"))
	b := Scope(WithToken(ctx, "beta"))
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Scope(WithToken(ctx, "alpha")))
}
