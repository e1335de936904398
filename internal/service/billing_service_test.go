package service_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadline/web/internal/cache"
	"threadline/web/internal/model"
	"threadline/web/internal/service"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents    int64
		currency string
		want     string
	}{
		{0, "USD", "$0.00"},
		{5, "usd", "$0.05"},
		{1900, "USD", "$19.00"},
		{123456, "USD", "$1,234.56"},
		{100000000, "EUR", "€1,000,000.00"},
		{-2550, "GBP", "-£25.50"},
		{999, "CHF", "CHF 9.99"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, service.FormatCents(tc.cents, tc.currency))
		})
	}
}

func TestBillingService_MutationsInvalidateBilling(t *testing.T) {
	env := setupEnv(t)
	env.router.Get("/plans", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, data([]model.Plan{{ID: 1, Name: "Pro", PriceCents: 4900, Currency: "USD"}}))
	})
	env.router.Get("/invoices", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, page([]model.Invoice{{ID: 1, AmountCents: 4900}}, 1, 1, 1))
	})
	env.router.Post("/subscription", func(w http.ResponseWriter, r *http.Request) {
		var req model.SubscribeRequest
		_ = decode(r, &req)
		writeJSON(w, http.StatusCreated, data(model.Subscription{ID: 3, PlanID: req.PlanID, Status: "active"}))
	})
	svc := service.NewBillingService(env.api, env.deps)

	plans, err := svc.Plans(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, "$49.00", service.FormatCents(plans[0].PriceCents, plans[0].Currency))
	_, err = svc.Invoices(env.ctx, 1)
	require.NoError(t, err)

	sub, err := svc.Subscribe(env.ctx, model.SubscribeRequest{PlanID: 1, PaymentMethodID: "pm_1"})
	require.NoError(t, err)
	assert.Equal(t, "active", sub.Status)

	for _, k := range []cache.Key{
		cache.NewKey("billing/plans", "scope", scopeOf(env)),
		cache.NewKey("billing/invoices", "page", 1, "scope", scopeOf(env)),
	} {
		entry, ok := env.deps.Cache.Get(k)
		require.True(t, ok, k)
		assert.True(t, entry.Stale, k)
	}
}
