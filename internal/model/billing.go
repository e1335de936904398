package model

import "time"

// Monetary amounts are integer cents throughout. Formatting happens at render time.

// Plan is a subscription tier.
type Plan struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	PriceCents int64    `json:"price_cents"`
	Currency   string   `json:"currency"`
	Interval   string   `json:"interval"`
	Features   []string `json:"features"`
}

// Subscription is the account's current plan binding.
type Subscription struct {
	ID                int64      `json:"id"`
	PlanID            int64      `json:"plan_id"`
	Plan              *Plan      `json:"plan,omitempty"`
	Status            string     `json:"status"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd bool       `json:"cancel_at_period_end"`
}

// SubscribeRequest starts or changes a subscription.
type SubscribeRequest struct {
	PlanID          int64  `json:"plan_id" validate:"required"`
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

// PaymentMethod is a stored card.
type PaymentMethod struct {
	ID        string `json:"id"`
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	ExpMonth  int    `json:"exp_month"`
	ExpYear   int    `json:"exp_year"`
	IsDefault bool   `json:"is_default"`
}

// Invoice is a billed period.
type Invoice struct {
	ID          int64     `json:"id"`
	Number      string    `json:"number"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	IssuedAt    time.Time `json:"issued_at"`
	PDFURL      string    `json:"pdf_url,omitempty"`
}

// RefundRequest asks for a full or partial refund of an invoice.
type RefundRequest struct {
	InvoiceID   int64  `json:"invoice_id" validate:"required"`
	AmountCents int64  `json:"amount_cents" validate:"gt=0"`
	Reason      string `json:"reason" validate:"required,max=500"`
}

// Refund is the API acknowledgement of a refund request.
type Refund struct {
	ID          int64  `json:"id"`
	InvoiceID   int64  `json:"invoice_id"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
}
