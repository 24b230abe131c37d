package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

const (
	paypalLiveBase    = "https://api-m.paypal.com"
	paypalSandboxBase = "https://api-m.sandbox.paypal.com"
)

// PayPalGateway charges wallets through the PayPal Orders API. The flow is
// redirect-based: the customer approves the order on a PayPal-hosted page.
type PayPalGateway struct {
	clientID      string
	clientSecret  string
	webhookSecret string
	baseURL       string
	client        *http.Client
}

// NewPayPalGateway builds a PayPal gateway bound to one environment's keys
func NewPayPalGateway(creds models.GatewayCredentials, client *http.Client) (PaymentGateway, error) {
	if creds.PublicKey == "" || creds.SecretKey == "" {
		return nil, payerr.New(payerr.KindConfiguration, "paypal: client id and secret are required")
	}

	base := paypalLiveBase
	if creds.SandboxMode {
		base = paypalSandboxBase
	}

	return &PayPalGateway{
		clientID:      creds.PublicKey,
		clientSecret:  creds.SecretKey,
		webhookSecret: creds.WebhookSecret,
		baseURL:       base,
		client:        client,
	}, nil
}

// Code returns the provider code
func (g *PayPalGateway) Code() string { return CodePayPal }

// GetConfig returns PayPal capabilities
func (g *PayPalGateway) GetConfig() Capability {
	return Capability{
		Code:                CodePayPal,
		DisplayName:         "PayPal",
		Flow:                FlowRedirect,
		SupportedCurrencies: []string{"USD", "EUR", "GBP"},
		SupportedCountries:  []string{"US", "GB", "FR", "DE"},
		RequiresWebhook:     true,
		SupportsRefunds:     true,
	}
}

// accessToken fetches an OAuth token with the client credentials grant
func (g *PayPalGateway) accessToken(ctx context.Context) (string, error) {
	auth := base64.StdEncoding.EncodeToString([]byte(g.clientID + ":" + g.clientSecret))

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	body, _, err := doForm(ctx, g.client, http.MethodPost, g.baseURL+"/v1/oauth2/token", form, map[string]string{
		"Authorization": "Basic " + auth,
	})
	if err != nil {
		return "", fmt.Errorf("paypal token: %w", err)
	}

	token := stringField(body, "access_token")
	if token == "" {
		return "", payerr.New(payerr.KindProviderUnavailable, "paypal token: empty access token")
	}
	return token, nil
}

// CreatePayment creates a PayPal order and returns the approval link
func (g *PayPalGateway) CreatePayment(ctx context.Context, txn *models.Transaction, params CreateParams) (*CreateResult, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	amount, currency := ChargeAmount(txn)

	order := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"reference_id": txn.Reference,
				"custom_id":    txn.Reference,
				"description":  txn.Description,
				"amount": map[string]string{
					"currency_code": currency,
					"value":         strconv.FormatFloat(amount, 'f', 2, 64),
				},
			},
		},
		"application_context": map[string]string{
			"return_url": params.ReturnURL,
			"cancel_url": params.CancelURL,
		},
	}

	body, _, err := doJSON(ctx, g.client, http.MethodPost, g.baseURL+"/v2/checkout/orders", order, map[string]string{
		"Authorization":     "Bearer " + token,
		"PayPal-Request-Id": txn.Reference,
	})
	if err != nil {
		return nil, fmt.Errorf("paypal create order: %w", err)
	}

	links := map[string]string{}
	approveURL := ""
	if rawLinks, ok := body["links"].([]interface{}); ok {
		for _, l := range rawLinks {
			link, ok := l.(map[string]interface{})
			if !ok {
				continue
			}
			rel, _ := link["rel"].(string)
			href, _ := link["href"].(string)
			if rel != "" && href != "" {
				links[rel] = href
			}
			if rel == "approve" {
				approveURL = href
			}
		}
	}

	return &CreateResult{
		Success:          true,
		CheckoutURL:      approveURL,
		Links:            links,
		GatewayReference: stringField(body, "id"),
		GatewayStatus:    stringField(body, "status"),
		RawResponse:      body,
	}, nil
}

// VerifyPayment polls the order status
func (g *PayPalGateway) VerifyPayment(ctx context.Context, gatewayReference string) (*VerifyResult, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, _, err := doJSON(ctx, g.client, http.MethodGet, g.baseURL+"/v2/checkout/orders/"+gatewayReference, nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return nil, fmt.Errorf("paypal verify order: %w", err)
	}

	var amount float64
	var currency string
	if units, ok := body["purchase_units"].([]interface{}); ok && len(units) > 0 {
		if unit, ok := units[0].(map[string]interface{}); ok {
			if amt, ok := unit["amount"].(map[string]interface{}); ok {
				currency, _ = amt["currency_code"].(string)
				if v, ok := amt["value"].(string); ok {
					amount, _ = strconv.ParseFloat(v, 64)
				}
			}
		}
	}

	status := stringField(body, "status")
	return &VerifyResult{
		Status:        mapPayPalStatus(status),
		GatewayStatus: status,
		Amount:        amount,
		Currency:      currency,
		RawResponse:   body,
	}, nil
}

// ProcessRefund refunds a captured order
func (g *PayPalGateway) ProcessRefund(ctx context.Context, txn *models.Transaction, amount float64, reason string) (*RefundOutcome, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	captureID, err := g.captureID(ctx, token, txn.GatewayReference)
	if err != nil {
		return nil, err
	}

	var payload interface{}
	if amount > 0 {
		_, currency := ChargeAmount(txn)
		payload = map[string]interface{}{
			"amount": map[string]string{
				"currency_code": currency,
				"value":         strconv.FormatFloat(amount, 'f', 2, 64),
			},
			"note_to_payer": reason,
		}
	}

	body, _, err := doJSON(ctx, g.client, http.MethodPost, g.baseURL+"/v2/payments/captures/"+captureID+"/refund", payload, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return nil, fmt.Errorf("paypal refund: %w", err)
	}

	return &RefundOutcome{
		Success:         true,
		RefundReference: stringField(body, "id"),
		RawResponse:     body,
	}, nil
}

// captureID looks up the capture behind an order for refunding
func (g *PayPalGateway) captureID(ctx context.Context, token, orderID string) (string, error) {
	body, _, err := doJSON(ctx, g.client, http.MethodGet, g.baseURL+"/v2/checkout/orders/"+orderID, nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return "", fmt.Errorf("paypal order lookup: %w", err)
	}

	if units, ok := body["purchase_units"].([]interface{}); ok && len(units) > 0 {
		if unit, ok := units[0].(map[string]interface{}); ok {
			if payments, ok := unit["payments"].(map[string]interface{}); ok {
				if captures, ok := payments["captures"].([]interface{}); ok && len(captures) > 0 {
					if capture, ok := captures[0].(map[string]interface{}); ok {
						if id, ok := capture["id"].(string); ok {
							return id, nil
						}
					}
				}
			}
		}
	}

	return "", payerr.New(payerr.KindConsistency, "paypal: order has no capture to refund")
}

// ParseWebhook verifies the transmission signature and decodes the event
func (g *PayPalGateway) ParseWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookEvent, error) {
	if err := VerifyHMAC(payload, g.webhookSecret, signatureHeader); err != nil {
		return nil, err
	}

	var raw models.JSONMap
	if err := raw.Scan(payload); err != nil {
		return nil, payerr.Wrap(payerr.KindSignature, "malformed webhook payload", err)
	}

	eventType := stringField(raw, "event_type")
	resource, _ := raw["resource"].(map[string]interface{})

	event := &WebhookEvent{
		GatewayStatus: eventType,
		RawPayload:    raw,
	}

	if resource != nil {
		event.GatewayReference = stringField(models.JSONMap(resource), "id")
		if custom, ok := resource["custom_id"].(string); ok {
			event.Reference = custom
		}
		if amt, ok := resource["amount"].(map[string]interface{}); ok {
			event.Currency, _ = amt["currency_code"].(string)
			if v, ok := amt["value"].(string); ok {
				event.Amount, _ = strconv.ParseFloat(v, 64)
			}
		}
	}

	switch eventType {
	case "PAYMENT.CAPTURE.COMPLETED", "CHECKOUT.ORDER.COMPLETED":
		event.Status = models.TransactionStatusSucceeded
	case "PAYMENT.CAPTURE.DENIED", "PAYMENT.CAPTURE.DECLINED":
		event.Status = models.TransactionStatusFailed
	default:
		event.Status = models.TransactionStatusProcessing
	}

	return event, nil
}

func mapPayPalStatus(status string) models.TransactionStatus {
	switch status {
	case "COMPLETED":
		return models.TransactionStatusSucceeded
	case "VOIDED":
		return models.TransactionStatusCancelled
	case "CREATED", "SAVED", "APPROVED", "PAYER_ACTION_REQUIRED":
		return models.TransactionStatusProcessing
	default:
		return models.TransactionStatusProcessing
	}
}
