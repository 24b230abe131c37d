package models

import (
	"time"
)

// Payment is the business-facing record attached to a subscription or order.
// It links to the ledger transaction by reference; over its lifetime it points
// to at most one live transaction but may accumulate failed historical ones.
type Payment struct {
	ID                   string            `json:"id" db:"id"`
	EnvironmentID        string            `json:"environment_id" db:"environment_id"`
	SubscriberID         string            `json:"subscriber_id" db:"subscriber_id"`
	SubscriptionID       string            `json:"subscription_id,omitempty" db:"subscription_id"`
	OrderID              string            `json:"order_id,omitempty" db:"order_id"`
	Amount               float64           `json:"amount" db:"amount"`
	FeeAmount            float64           `json:"fee_amount" db:"fee_amount"`
	TaxAmount            float64           `json:"tax_amount" db:"tax_amount"`
	TaxRate              float64           `json:"tax_rate" db:"tax_rate"`
	TotalAmount          float64           `json:"total_amount" db:"total_amount"`
	Currency             string            `json:"currency" db:"currency"`
	PaymentMethod        string            `json:"payment_method" db:"payment_method"`
	Status               TransactionStatus `json:"status" db:"status"`
	TransactionReference string            `json:"transaction_reference,omitempty" db:"transaction_reference"`
	GatewayStatus        string            `json:"gateway_status,omitempty" db:"gateway_status"`
	GatewayResponse      JSONMap           `json:"gateway_response,omitempty" db:"gateway_response"`
	CreatedAt            time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at" db:"updated_at"`
}

// PaymentIntent is the business request handed to the orchestrator by
// checkout controllers
type PaymentIntent struct {
	EnvironmentID  string  `json:"environment_id"`
	CustomerID     string  `json:"customer_id"`
	SubscriptionID string  `json:"subscription_id,omitempty"`
	OrderID        string  `json:"order_id,omitempty"`
	Amount         float64 `json:"amount"`
	DiscountAmount float64 `json:"discount_amount,omitempty"`
	Currency       string  `json:"currency"`
	GatewayCode    string  `json:"gateway_code"`
	Description    string  `json:"description,omitempty"`
	CountryCode    string  `json:"country_code,omitempty"`
	PhoneNumber    string  `json:"phone_number,omitempty"`
	ReturnURL      string  `json:"return_url,omitempty"`
	CancelURL      string  `json:"cancel_url,omitempty"`
}

// CheckoutResult is the normalized orchestrator response: whatever the caller
// needs to complete checkout for the chosen provider
type CheckoutResult struct {
	Success              bool              `json:"success"`
	Message              string            `json:"message,omitempty"`
	TransactionReference string            `json:"transaction_reference"`
	CheckoutURL          string            `json:"checkout_url,omitempty"`
	ClientSecret         string            `json:"client_secret,omitempty"`
	Links                map[string]string `json:"links,omitempty"`
}

// RefundResult reports the outcome of a refund request
type RefundResult struct {
	Success         bool   `json:"success"`
	RefundReference string `json:"refund_reference,omitempty"`
	Message         string `json:"message,omitempty"`
}

// Invoice is the minimal invoice shape needed to produce a payment link; the
// invoice document itself is generated elsewhere
type Invoice struct {
	ID            string  `json:"id"`
	EnvironmentID string  `json:"environment_id"`
	CustomerID    string  `json:"customer_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	GatewayCode   string  `json:"gateway_code"`
	Description   string  `json:"description,omitempty"`
}
