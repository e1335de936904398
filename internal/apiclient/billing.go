package apiclient

import (
	"context"
	"net/http"

	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

func (c *Client) ListPlans(ctx context.Context) ([]model.Plan, error) {
	return getOne[[]model.Plan](ctx, c, "/plans", nil)
}

// GetSubscription returns the current subscription. An account without one
// gets ErrNotFound.
func (c *Client) GetSubscription(ctx context.Context) (*model.Subscription, error) {
	sub, err := getOne[model.Subscription](ctx, c, "/subscription", nil)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) Subscribe(ctx context.Context, req model.SubscribeRequest) (*model.Subscription, error) {
	sub, err := sendOne[model.Subscription](ctx, c, http.MethodPost, "/subscription", req)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// CancelSubscription cancels at the end of the current period.
func (c *Client) CancelSubscription(ctx context.Context) (*model.Subscription, error) {
	sub, err := sendOne[model.Subscription](ctx, c, http.MethodDelete, "/subscription", nil)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	return getOne[[]model.PaymentMethod](ctx, c, "/payment-methods", nil)
}

func (c *Client) ListInvoices(ctx context.Context, page int) (pagination.Page[model.Invoice], error) {
	return getPage[model.Invoice](ctx, c, "/invoices", pageQuery(page))
}

func (c *Client) RequestRefund(ctx context.Context, req model.RefundRequest) (*model.Refund, error) {
	r, err := sendOne[model.Refund](ctx, c, http.MethodPost, "/refunds", req)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
