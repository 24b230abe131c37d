package models

import (
	"time"
)

// TransactionStatus enumerates the lifecycle states of a transaction
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusSucceeded  TransactionStatus = "succeeded"
	TransactionStatusFailed     TransactionStatus = "failed"
	TransactionStatusCancelled  TransactionStatus = "cancelled"
)

// IsTerminal reports whether the status is immutable
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusSucceeded || s == TransactionStatusFailed
}

// IsReusable reports whether a transaction in this status may be reset and
// reused for a retry instead of creating a fresh reference
func (s TransactionStatus) IsReusable() bool {
	return s == TransactionStatusPending || s == TransactionStatusCancelled
}

// ConversionSnapshot records a currency conversion applied before charging,
// kept on the transaction for reconciliation
type ConversionSnapshot struct {
	ConvertedAmount float64   `json:"converted_amount"`
	TargetCurrency  string    `json:"target_currency"`
	ExchangeRate    float64   `json:"exchange_rate"`
	Provider        string    `json:"provider"`
	ConvertedAt     time.Time `json:"converted_at"`
}

// Transaction is the canonical ledger record of one money movement attempt
// against a payment provider. The reference is unique per environment and is
// the identifier shared with the provider.
type Transaction struct {
	ID               string              `json:"id" db:"id"`
	Reference        string              `json:"reference" db:"reference"`
	EnvironmentID    string              `json:"environment_id" db:"environment_id"`
	CustomerID       string              `json:"customer_id" db:"customer_id"`
	OrderID          string              `json:"order_id,omitempty" db:"order_id"`
	Description      string              `json:"description,omitempty" db:"description"`
	Amount           float64             `json:"amount" db:"amount"`
	FeeAmount        float64             `json:"fee_amount" db:"fee_amount"`
	TaxAmount        float64             `json:"tax_amount" db:"tax_amount"`
	TaxRate          float64             `json:"tax_rate" db:"tax_rate"`
	DiscountAmount   float64             `json:"discount_amount" db:"discount_amount"`
	TotalAmount      float64             `json:"total_amount" db:"total_amount"`
	Currency         string              `json:"currency" db:"currency"`
	Status           TransactionStatus   `json:"status" db:"status"`
	PaymentMethod    string              `json:"payment_method" db:"payment_method"`
	GatewayCode      string              `json:"gateway_code" db:"gateway_code"`
	GatewayReference string              `json:"gateway_reference,omitempty" db:"gateway_reference"`
	GatewayStatus    string              `json:"gateway_status,omitempty" db:"gateway_status"`
	GatewayResponse  JSONMap             `json:"gateway_response,omitempty" db:"gateway_response"`
	Conversion       *ConversionSnapshot `json:"conversion,omitempty" db:"-"`
	CreatedAt        time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at" db:"updated_at"`
}
