package gateway

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

const stripeAPIBase = "https://api.stripe.com/v1"

// StripeGateway charges cards through Stripe PaymentIntents. The flow is
// client-side: the caller receives a client secret and confirms the payment
// in the browser.
type StripeGateway struct {
	secretKey     string
	publicKey     string
	webhookSecret string
	baseURL       string
	client        *http.Client
}

// NewStripeGateway builds a Stripe gateway bound to one environment's keys
func NewStripeGateway(creds models.GatewayCredentials, client *http.Client) (PaymentGateway, error) {
	if creds.SecretKey == "" {
		return nil, payerr.New(payerr.KindConfiguration, "stripe: secret key is required")
	}

	return &StripeGateway{
		secretKey:     creds.SecretKey,
		publicKey:     creds.PublicKey,
		webhookSecret: creds.WebhookSecret,
		baseURL:       stripeAPIBase,
		client:        client,
	}, nil
}

// Code returns the provider code
func (g *StripeGateway) Code() string { return CodeStripe }

// GetConfig returns Stripe capabilities
func (g *StripeGateway) GetConfig() Capability {
	return Capability{
		Code:                CodeStripe,
		DisplayName:         "Stripe",
		Flow:                FlowClientSide,
		SupportedCurrencies: []string{"USD", "EUR", "GBP", "XAF"},
		SupportedCountries:  []string{"US", "GB", "FR", "DE", "CM"},
		RequiresWebhook:     true,
		SupportsRefunds:     true,
	}
}

// CreatePayment creates a PaymentIntent keyed by our transaction reference
func (g *StripeGateway) CreatePayment(ctx context.Context, txn *models.Transaction, params CreateParams) (*CreateResult, error) {
	amount, currency := ChargeAmount(txn)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(toMinorUnits(amount, currency), 10))
	form.Set("currency", strings.ToLower(currency))
	form.Set("metadata[reference]", txn.Reference)
	form.Set("metadata[environment_id]", txn.EnvironmentID)
	if txn.Description != "" {
		form.Set("description", txn.Description)
	}
	form.Set("automatic_payment_methods[enabled]", "true")

	body, _, err := doForm(ctx, g.client, http.MethodPost, g.baseURL+"/payment_intents", form, map[string]string{
		"Authorization":   "Bearer " + g.secretKey,
		"Idempotency-Key": txn.Reference,
	})
	if err != nil {
		return nil, fmt.Errorf("stripe create payment: %w", err)
	}

	return &CreateResult{
		Success:          true,
		ClientSecret:     stringField(body, "client_secret"),
		GatewayReference: stringField(body, "id"),
		GatewayStatus:    stringField(body, "status"),
		RawResponse:      body,
	}, nil
}

// VerifyPayment polls the PaymentIntent status
func (g *StripeGateway) VerifyPayment(ctx context.Context, gatewayReference string) (*VerifyResult, error) {
	body, _, err := doForm(ctx, g.client, http.MethodGet, g.baseURL+"/payment_intents/"+gatewayReference, url.Values{}, map[string]string{
		"Authorization": "Bearer " + g.secretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("stripe verify payment: %w", err)
	}

	currency := strings.ToUpper(stringField(body, "currency"))
	return &VerifyResult{
		Status:        mapStripeStatus(stringField(body, "status")),
		GatewayStatus: stringField(body, "status"),
		Amount:        fromMinorUnits(int64(floatField(body, "amount")), currency),
		Currency:      currency,
		RawResponse:   body,
	}, nil
}

// ProcessRefund refunds against the PaymentIntent; amount 0 refunds fully
func (g *StripeGateway) ProcessRefund(ctx context.Context, txn *models.Transaction, amount float64, reason string) (*RefundOutcome, error) {
	chargeAmount, currency := ChargeAmount(txn)

	form := url.Values{}
	form.Set("payment_intent", txn.GatewayReference)
	if amount > 0 && amount < chargeAmount {
		form.Set("amount", strconv.FormatInt(toMinorUnits(amount, currency), 10))
	}
	if reason != "" {
		form.Set("metadata[reason]", reason)
	}

	body, _, err := doForm(ctx, g.client, http.MethodPost, g.baseURL+"/refunds", form, map[string]string{
		"Authorization": "Bearer " + g.secretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("stripe refund: %w", err)
	}

	return &RefundOutcome{
		Success:         true,
		RefundReference: stringField(body, "id"),
		RawResponse:     body,
	}, nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes the event
func (g *StripeGateway) ParseWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookEvent, error) {
	if err := VerifyStripeSignature(payload, g.webhookSecret, signatureHeader); err != nil {
		return nil, err
	}

	var raw models.JSONMap
	if err := raw.Scan(payload); err != nil {
		return nil, payerr.Wrap(payerr.KindSignature, "malformed webhook payload", err)
	}

	eventType := stringField(raw, "type")
	object := webhookObject(raw)

	event := &WebhookEvent{
		GatewayReference: stringField(object, "id"),
		GatewayStatus:    stringField(object, "status"),
		RawPayload:       raw,
	}

	if metadata, ok := object["metadata"].(map[string]interface{}); ok {
		if ref, ok := metadata["reference"].(string); ok {
			event.Reference = ref
		}
	}

	currency := strings.ToUpper(stringField(object, "currency"))
	event.Currency = currency
	event.Amount = fromMinorUnits(int64(floatField(object, "amount")), currency)

	switch eventType {
	case "payment_intent.succeeded":
		event.Status = models.TransactionStatusSucceeded
	case "payment_intent.payment_failed":
		event.Status = models.TransactionStatusFailed
	case "payment_intent.canceled":
		// same customer abandonment as a polled "canceled" intent, so the
		// transaction stays reusable rather than going terminal
		event.Status = models.TransactionStatusCancelled
	default:
		event.Status = models.TransactionStatusProcessing
	}

	return event, nil
}

func webhookObject(raw models.JSONMap) models.JSONMap {
	data, ok := raw["data"].(map[string]interface{})
	if !ok {
		return nil
	}
	object, ok := data["object"].(map[string]interface{})
	if !ok {
		return nil
	}
	return models.JSONMap(object)
}

func mapStripeStatus(status string) models.TransactionStatus {
	switch status {
	case "succeeded":
		return models.TransactionStatusSucceeded
	case "canceled":
		return models.TransactionStatusCancelled
	case "requires_payment_method", "requires_confirmation", "requires_action", "processing":
		return models.TransactionStatusProcessing
	default:
		return models.TransactionStatusProcessing
	}
}

// zeroDecimalCurrencies have no minor unit
var zeroDecimalCurrencies = map[string]bool{
	"XAF": true,
	"XOF": true,
	"JPY": true,
	"KRW": true,
}

func toMinorUnits(amount float64, currency string) int64 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * 100))
}

func fromMinorUnits(units int64, currency string) float64 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return float64(units)
	}
	return float64(units) / 100
}
