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
	orangeAPIBase  = "https://api.orange.com"
	orangeCurrency = "XAF"
)

// OrangeMoneyGateway collects mobile-money payments through the Orange Money
// Web Payment API. Redirect flow: the customer pays on an Orange-hosted page
// reached via the returned payment URL. Settlement is fixed to XAF.
type OrangeMoneyGateway struct {
	merchantKey   string
	authHeader    string
	webhookSecret string
	baseURL       string
	client        *http.Client
}

// NewOrangeMoneyGateway builds an Orange Money gateway bound to one
// environment's keys. PublicKey carries the merchant key, SecretKey the
// consumer credentials used for OAuth.
func NewOrangeMoneyGateway(creds models.GatewayCredentials, client *http.Client) (PaymentGateway, error) {
	if creds.PublicKey == "" || creds.SecretKey == "" {
		return nil, payerr.New(payerr.KindConfiguration, "orange_money: merchant key and consumer credentials are required")
	}

	return &OrangeMoneyGateway{
		merchantKey:   creds.PublicKey,
		authHeader:    "Basic " + base64.StdEncoding.EncodeToString([]byte(creds.SecretKey)),
		webhookSecret: creds.WebhookSecret,
		baseURL:       orangeAPIBase,
		client:        client,
	}, nil
}

// Code returns the provider code
func (g *OrangeMoneyGateway) Code() string { return CodeOrangeMoney }

// GetConfig returns Orange Money capabilities
func (g *OrangeMoneyGateway) GetConfig() Capability {
	return Capability{
		Code:                CodeOrangeMoney,
		DisplayName:         "Orange Money",
		Flow:                FlowRedirect,
		SupportedCurrencies: []string{orangeCurrency},
		SupportedCountries:  []string{"CM", "CI", "SN"},
		SettlementCurrency:  orangeCurrency,
		RequiresWebhook:     true,
		SupportsRefunds:     false,
	}
}

func (g *OrangeMoneyGateway) token(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	body, _, err := doForm(ctx, g.client, http.MethodPost, g.baseURL+"/oauth/v3/token", form, map[string]string{
		"Authorization": g.authHeader,
	})
	if err != nil {
		return "", fmt.Errorf("orange_money token: %w", err)
	}

	token := stringField(body, "access_token")
	if token == "" {
		return "", payerr.New(payerr.KindProviderUnavailable, "orange_money token: empty access token")
	}
	return token, nil
}

// CreatePayment opens a web payment session and returns the hosted URL
func (g *OrangeMoneyGateway) CreatePayment(ctx context.Context, txn *models.Transaction, params CreateParams) (*CreateResult, error) {
	token, err := g.token(ctx)
	if err != nil {
		return nil, err
	}

	amount, currency := ChargeAmount(txn)

	payload := map[string]interface{}{
		"merchant_key": g.merchantKey,
		"currency":     currency,
		"order_id":     txn.Reference,
		"amount":       strconv.FormatFloat(amount, 'f', 0, 64),
		"return_url":   params.ReturnURL,
		"cancel_url":   params.CancelURL,
		"notif_url":    "",
		"lang":         "en",
		"reference":    txn.Reference,
	}

	body, _, err := doJSON(ctx, g.client, http.MethodPost, g.baseURL+"/orange-money-webpay/cm/v1/webpayment", payload, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return nil, fmt.Errorf("orange_money webpayment: %w", err)
	}

	payToken := stringField(body, "pay_token")
	paymentURL := stringField(body, "payment_url")

	return &CreateResult{
		Success:          true,
		CheckoutURL:      paymentURL,
		GatewayReference: payToken,
		GatewayStatus:    stringField(body, "status"),
		Links: map[string]string{
			"payment_url": paymentURL,
			"ussd":        "#150#",
		},
		RawResponse: body,
	}, nil
}

// VerifyPayment polls the transaction status by pay token
func (g *OrangeMoneyGateway) VerifyPayment(ctx context.Context, gatewayReference string) (*VerifyResult, error) {
	token, err := g.token(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"pay_token": gatewayReference,
	}

	body, _, err := doJSON(ctx, g.client, http.MethodPost, g.baseURL+"/orange-money-webpay/cm/v1/transactionstatus", payload, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return nil, fmt.Errorf("orange_money transaction status: %w", err)
	}

	amount, _ := strconv.ParseFloat(stringField(body, "amount"), 64)
	status := stringField(body, "status")

	return &VerifyResult{
		Status:        mapOrangeStatus(status),
		GatewayStatus: status,
		Amount:        amount,
		Currency:      orangeCurrency,
		RawResponse:   body,
	}, nil
}

// ProcessRefund is not available on the web payment API
func (g *OrangeMoneyGateway) ProcessRefund(ctx context.Context, txn *models.Transaction, amount float64, reason string) (*RefundOutcome, error) {
	return nil, ErrRefundUnsupported
}

// ParseWebhook verifies the notification signature and decodes the event
func (g *OrangeMoneyGateway) ParseWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookEvent, error) {
	if err := VerifyHMAC(payload, g.webhookSecret, signatureHeader); err != nil {
		return nil, err
	}

	var raw models.JSONMap
	if err := raw.Scan(payload); err != nil {
		return nil, payerr.Wrap(payerr.KindSignature, "malformed webhook payload", err)
	}

	amount, _ := strconv.ParseFloat(stringField(raw, "amount"), 64)
	status := stringField(raw, "status")

	return &WebhookEvent{
		Reference:        stringField(raw, "order_id"),
		GatewayReference: stringField(raw, "pay_token"),
		Status:           mapOrangeStatus(status),
		GatewayStatus:    status,
		Amount:           amount,
		Currency:         orangeCurrency,
		RawPayload:       raw,
	}, nil
}

func mapOrangeStatus(status string) models.TransactionStatus {
	switch status {
	case "SUCCESS", "SUCCESSFULL":
		return models.TransactionStatusSucceeded
	case "FAILED", "EXPIRED":
		return models.TransactionStatusFailed
	case "CANCELLED":
		return models.TransactionStatusCancelled
	default:
		return models.TransactionStatusProcessing
	}
}
