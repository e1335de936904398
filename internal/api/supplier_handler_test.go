package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"threadline/web/internal/api"
	app_errors "threadline/web/internal/errors"
	"threadline/web/internal/interfaces/mocks"
	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

func TestSupplierHandler_HandleSearch(t *testing.T) {
	mockSvc := mocks.NewMockSupplierService(t)
	handler := api.NewSupplierHandler(mockSvc)

	mockSvc.On("Search", mock.Anything, mock.MatchedBy(func(f model.SupplierFilter) bool {
		return f.Query == "denim" && f.Location == "Porto" && f.Verified != nil && *f.Verified && f.Page == 2
	})).Return(pagination.Page[model.Supplier]{
		Data: []model.Supplier{{ID: 1}},
		Meta: pagination.Meta{CurrentPage: 2, LastPage: 2, PerPage: 12, Total: 13},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers?q=denim&location=Porto&verified=true&page=2", nil)
	rr := httptest.NewRecorder()
	handler.HandleSearch(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSupplierHandler_HandleToggleSaved(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockSupplierService(t)
		handler := api.NewSupplierHandler(mockSvc)
		mockSvc.On("ToggleSaved", mock.Anything, int64(8)).
			Return(model.SavedToggle{SupplierID: 8, IsSaved: true}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/suppliers/8/save", nil)
		req = addChiURLParams(req, map[string]string{"supplierID": "8"})
		rr := httptest.NewRecorder()
		handler.HandleToggleSaved(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got model.SavedToggle
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.True(t, got.IsSaved)
	})

	t.Run("Failure - Designers only", func(t *testing.T) {
		mockSvc := mocks.NewMockSupplierService(t)
		handler := api.NewSupplierHandler(mockSvc)
		mockSvc.On("ToggleSaved", mock.Anything, int64(8)).
			Return(model.SavedToggle{}, app_errors.ErrPermission).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/suppliers/8/save", nil)
		req = addChiURLParams(req, map[string]string{"supplierID": "8"})
		rr := httptest.NewRecorder()
		handler.HandleToggleSaved(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
