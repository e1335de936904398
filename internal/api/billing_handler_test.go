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
	"threadline/web/internal/interfaces/mocks"
	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

func TestBillingHandler_HandlePlans(t *testing.T) {
	mockSvc := mocks.NewMockBillingService(t)
	handler := api.NewBillingHandler(mockSvc)
	mockSvc.On("Plans", mock.Anything).Return([]model.Plan{
		{ID: 1, Name: "Studio", PriceCents: 4900, Currency: "USD"},
		{ID: 2, Name: "Atelier", PriceCents: 129900, Currency: "EUR"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/plans", nil)
	rr := httptest.NewRecorder()
	handler.HandlePlans(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []api.PlanView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(4900), got[0].PriceCents)
	assert.Equal(t, "$49.00", got[0].Price)
	assert.Equal(t, "€1,299.00", got[1].Price)
}

func TestBillingHandler_HandleInvoices(t *testing.T) {
	mockSvc := mocks.NewMockBillingService(t)
	handler := api.NewBillingHandler(mockSvc)
	meta := pagination.Meta{CurrentPage: 1, LastPage: 1, PerPage: 10, Total: 1}
	mockSvc.On("Invoices", mock.Anything, 1).Return(pagination.Page[model.Invoice]{
		Data: []model.Invoice{{ID: 4, AmountCents: 1999, Currency: "GBP"}},
		Meta: meta,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/invoices", nil)
	rr := httptest.NewRecorder()
	handler.HandleInvoices(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got pagination.Page[api.InvoiceView]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, meta, got.Meta)
	assert.Equal(t, "£19.99", got.Data[0].Amount)
}
