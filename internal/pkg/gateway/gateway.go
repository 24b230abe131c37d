// Package gateway holds the payment provider abstraction: one PaymentGateway
// implementation per provider behind a shared contract, and a registry that
// builds initialized instances bound to one environment's credentials.
//
// Adapters only make outbound calls and read credentials; they never write
// the transaction or payment records. They return data for the orchestrator
// to persist so each entity keeps a single writer.
package gateway

import (
	"context"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

// Flow describes how a customer completes a payment for a provider
type Flow string

const (
	// FlowRedirect sends the customer to a provider-hosted page or deep link
	FlowRedirect Flow = "redirect"
	// FlowClientSide hands the client a confirmation handle (e.g. a client
	// secret) to finish the charge in the browser or app
	FlowClientSide Flow = "client_side"
)

// Capability describes what a provider supports
type Capability struct {
	Code                string   `json:"code"`
	DisplayName         string   `json:"display_name"`
	Flow                Flow     `json:"flow"`
	SupportedCurrencies []string `json:"supported_currencies"`
	SupportedCountries  []string `json:"supported_countries"`
	// SettlementCurrency is non-empty for providers that only charge in one
	// fixed currency; the orchestrator converts before calling the adapter
	SettlementCurrency string `json:"settlement_currency,omitempty"`
	RequiresWebhook    bool   `json:"requires_webhook"`
	SupportsRefunds    bool   `json:"supports_refunds"`
}

// CreateParams carries provider-specific extras for payment creation
type CreateParams struct {
	ReturnURL     string
	CancelURL     string
	PhoneNumber   string
	CustomerEmail string
	CountryCode   string
}

// CreateResult is the normalized outcome of a charge initiation
type CreateResult struct {
	Success          bool
	CheckoutURL      string
	ClientSecret     string
	Links            map[string]string
	GatewayReference string
	GatewayStatus    string
	Message          string
	RawResponse      models.JSONMap
}

// VerifyResult is the normalized outcome of a provider-side status poll
type VerifyResult struct {
	Status        models.TransactionStatus
	GatewayStatus string
	Amount        float64
	Currency      string
	RawResponse   models.JSONMap
}

// RefundOutcome reports a refund attempt
type RefundOutcome struct {
	Success         bool
	RefundReference string
	RawResponse     models.JSONMap
}

// WebhookEvent is a provider notification after signature verification
type WebhookEvent struct {
	// Reference is our transaction reference when the provider echoes it back
	Reference string
	// GatewayReference is the provider-assigned correlation id
	GatewayReference string
	Status           models.TransactionStatus
	GatewayStatus    string
	Amount           float64
	Currency         string
	RawPayload       models.JSONMap
}

// ErrRefundUnsupported is returned by adapters for providers without a
// refund API; the failure is reported to the caller, never swallowed
var ErrRefundUnsupported = payerr.New(payerr.KindValidation, "refunds are not supported by this gateway")

// PaymentGateway is the uniform provider contract. Implementations are bound
// to one environment's credentials at construction time and fail fast when a
// required credential is missing.
type PaymentGateway interface {
	// Code returns the provider code the gateway is registered under
	Code() string

	// GetConfig returns the provider's capability descriptor
	GetConfig() Capability

	// CreatePayment initiates a charge for the transaction. Amount and
	// currency are taken from the transaction's conversion snapshot when one
	// exists, otherwise from its total amount. Must be called at most once
	// per live transaction reference (enforced by the orchestrator's reuse
	// rule).
	CreatePayment(ctx context.Context, txn *models.Transaction, params CreateParams) (*CreateResult, error)

	// VerifyPayment polls the provider for the current status of a charge,
	// used for manual verification and as a fallback for missed webhooks
	VerifyPayment(ctx context.Context, gatewayReference string) (*VerifyResult, error)

	// ProcessRefund issues a full (amount == 0) or partial refund
	ProcessRefund(ctx context.Context, txn *models.Transaction, amount float64, reason string) (*RefundOutcome, error)

	// ParseWebhook verifies the payload signature and decodes the event.
	// An unverifiable payload returns a signature-kind error and must not
	// cause any state change.
	ParseWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookEvent, error)
}

// ChargeAmount resolves the amount/currency an adapter should charge: the
// conversion snapshot when the orchestrator converted, the transaction total
// otherwise
func ChargeAmount(txn *models.Transaction) (float64, string) {
	if txn.Conversion != nil {
		return txn.Conversion.ConvertedAmount, txn.Conversion.TargetCurrency
	}
	return txn.TotalAmount, txn.Currency
}
