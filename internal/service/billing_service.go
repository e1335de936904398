package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"threadline/web/internal/cache"
	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

type BillingAPI interface {
	ListPlans(ctx context.Context) ([]model.Plan, error)
	GetSubscription(ctx context.Context) (*model.Subscription, error)
	Subscribe(ctx context.Context, req model.SubscribeRequest) (*model.Subscription, error)
	CancelSubscription(ctx context.Context) (*model.Subscription, error)
	ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
	ListInvoices(ctx context.Context, page int) (pagination.Page[model.Invoice], error)
	RequestRefund(ctx context.Context, req model.RefundRequest) (*model.Refund, error)
}

// BillingService serves plans, the subscription and invoices. Every billing
// mutation revalidates all billing data of the session.
type BillingService struct {
	api  BillingAPI
	deps Deps
}

func NewBillingService(api BillingAPI, deps Deps) *BillingService {
	return &BillingService{api: api, deps: deps.withDefaults()}
}

func (s *BillingService) Plans(ctx context.Context) ([]model.Plan, error) {
	return cache.Query(ctx, s.deps.Cache, key(ctx, "billing/plans"), s.api.ListPlans)
}

func (s *BillingService) Subscription(ctx context.Context) (*model.Subscription, error) {
	return cache.Query(ctx, s.deps.Cache, key(ctx, "billing/subscription"), s.api.GetSubscription)
}

func (s *BillingService) PaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	return cache.Query(ctx, s.deps.Cache, key(ctx, "billing/payment-methods"), s.api.ListPaymentMethods)
}

func (s *BillingService) Invoices(ctx context.Context, page int) (pagination.Page[model.Invoice], error) {
	page = pagination.Clamp(page)
	return cache.Query(ctx, s.deps.Cache, key(ctx, "billing/invoices", "page", page),
		func(ctx context.Context) (pagination.Page[model.Invoice], error) { return s.api.ListInvoices(ctx, page) })
}

func (s *BillingService) Subscribe(ctx context.Context, req model.SubscribeRequest) (*model.Subscription, error) {
	sub, err := s.api.Subscribe(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not subscribe to plan %d: %w", req.PlanID, err)
	}
	s.deps.Cache.InvalidateWhere(inScope(ctx, "billing/"))
	return sub, nil
}

func (s *BillingService) Cancel(ctx context.Context) (*model.Subscription, error) {
	sub, err := s.api.CancelSubscription(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not cancel subscription: %w", err)
	}
	s.deps.Cache.InvalidateWhere(inScope(ctx, "billing/"))
	return sub, nil
}

func (s *BillingService) RequestRefund(ctx context.Context, req model.RefundRequest) (*model.Refund, error) {
	refund, err := s.api.RequestRefund(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not request refund for invoice %d: %w", req.InvoiceID, err)
	}
	s.deps.Cache.InvalidateWhere(inScope(ctx, "billing/"))
	return refund, nil
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatCents renders an integer amount of cents for display, e.g.
// FormatCents(123456, "USD") is "$1,234.56". Unknown currencies are prefixed
// with their code.
func FormatCents(cents int64, currency string) string {
	amount := decimal.New(cents, -2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	whole, frac, _ := strings.Cut(amount.StringFixed(2), ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	code := strings.ToUpper(currency)
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code + " "
	}
	return sign + symbol + b.String() + "." + frac
}
