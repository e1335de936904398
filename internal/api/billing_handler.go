package api

import (
	"net/http"

	"threadline/web/internal/interfaces"
	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
	"threadline/web/internal/service"
)

// BillingHandler renders billing data. Amounts stay in integer cents on the
// wire; the formatted strings are for display only.
type BillingHandler struct {
	billing interfaces.BillingService
}

func NewBillingHandler(billing interfaces.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

type PlanView struct {
	model.Plan
	Price string `json:"price"`
}

type InvoiceView struct {
	model.Invoice
	Amount string `json:"amount"`
}

// HandlePlans godoc
// @Summary      List subscription plans
// @Tags         Billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PlanView
// @Router       /v1/billing/plans [get]
func (h *BillingHandler) HandlePlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.billing.Plans(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	views := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, PlanView{Plan: p, Price: service.FormatCents(p.PriceCents, p.Currency)})
	}
	respondWithJSON(w, http.StatusOK, views)
}

// HandleSubscription godoc
// @Summary      Current subscription
// @Tags         Billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.Subscription
// @Router       /v1/billing/subscription [get]
func (h *BillingHandler) HandleSubscription(w http.ResponseWriter, r *http.Request) {
	sub, err := h.billing.Subscription(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sub)
}

// HandleInvoices godoc
// @Summary      List invoices
// @Tags         Billing
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number"
// @Success      200   {object}  pagination.Page[InvoiceView]
// @Router       /v1/billing/invoices [get]
func (h *BillingHandler) HandleInvoices(w http.ResponseWriter, r *http.Request) {
	page, err := h.billing.Invoices(r.Context(), queryInt(r, "page", 1))
	if err != nil {
		respondWithError(w, err)
		return
	}
	views := make([]InvoiceView, 0, len(page.Data))
	for _, inv := range page.Data {
		views = append(views, InvoiceView{Invoice: inv, Amount: service.FormatCents(inv.AmountCents, inv.Currency)})
	}
	respondWithJSON(w, http.StatusOK, pagination.Page[InvoiceView]{Data: views, Meta: page.Meta})
}
