package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

const (
	momoLiveBase    = "https://proxy.momoapi.mtn.com"
	momoSandboxBase = "https://sandbox.momodeveloper.mtn.com"
	momoCurrency    = "XAF"
)

// MTNMoMoGateway collects mobile-money payments through the MTN MoMo
// Collections API (request-to-pay). The customer confirms the charge on
// their handset; the flow exposes a USSD deep link. Settlement is fixed to
// XAF, so the orchestrator converts other currencies first.
type MTNMoMoGateway struct {
	subscriptionKey string
	apiUser         string
	apiKey          string
	webhookSecret   string
	targetEnv       string
	baseURL         string
	client          *http.Client
}

// NewMTNMoMoGateway builds an MTN MoMo gateway bound to one environment's
// keys. PublicKey carries the subscription key; SecretKey carries the
// collections credentials as "apiUser:apiKey".
func NewMTNMoMoGateway(creds models.GatewayCredentials, client *http.Client) (PaymentGateway, error) {
	if creds.PublicKey == "" || creds.SecretKey == "" {
		return nil, payerr.New(payerr.KindConfiguration, "mtn_momo: subscription key and api credentials are required")
	}

	apiUser, apiKey, ok := strings.Cut(creds.SecretKey, ":")
	if !ok || apiUser == "" || apiKey == "" {
		return nil, payerr.New(payerr.KindConfiguration, "mtn_momo: api credentials must be in apiUser:apiKey form")
	}

	base := momoLiveBase
	targetEnv := "mtncameroon"
	if creds.SandboxMode {
		base = momoSandboxBase
		targetEnv = "sandbox"
	}

	return &MTNMoMoGateway{
		subscriptionKey: creds.PublicKey,
		apiUser:         apiUser,
		apiKey:          apiKey,
		webhookSecret:   creds.WebhookSecret,
		targetEnv:       targetEnv,
		baseURL:         base,
		client:          client,
	}, nil
}

// Code returns the provider code
func (g *MTNMoMoGateway) Code() string { return CodeMTNMoMo }

// GetConfig returns MTN MoMo capabilities
func (g *MTNMoMoGateway) GetConfig() Capability {
	return Capability{
		Code:                CodeMTNMoMo,
		DisplayName:         "MTN Mobile Money",
		Flow:                FlowRedirect,
		SupportedCurrencies: []string{momoCurrency},
		SupportedCountries:  []string{"CM"},
		SettlementCurrency:  momoCurrency,
		RequiresWebhook:     true,
		SupportsRefunds:     false,
	}
}

// bearerToken obtains a collections API token
func (g *MTNMoMoGateway) bearerToken(ctx context.Context) (string, error) {
	auth := base64.StdEncoding.EncodeToString([]byte(g.apiUser + ":" + g.apiKey))

	body, _, err := doForm(ctx, g.client, http.MethodPost, g.baseURL+"/collection/token/", url.Values{}, map[string]string{
		"Authorization":             "Basic " + auth,
		"Ocp-Apim-Subscription-Key": g.subscriptionKey,
	})
	if err != nil {
		return "", fmt.Errorf("mtn_momo token: %w", err)
	}

	token := stringField(body, "access_token")
	if token == "" {
		return "", payerr.New(payerr.KindProviderUnavailable, "mtn_momo token: empty access token")
	}
	return token, nil
}

// CreatePayment issues a request-to-pay; the provider correlation id is a
// UUID we generate and send as X-Reference-Id
func (g *MTNMoMoGateway) CreatePayment(ctx context.Context, txn *models.Transaction, params CreateParams) (*CreateResult, error) {
	if params.PhoneNumber == "" {
		return nil, payerr.New(payerr.KindValidation, "mtn_momo: customer phone number is required")
	}

	token, err := g.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	amount, currency := ChargeAmount(txn)
	referenceID := uuid.New().String()

	payload := map[string]interface{}{
		"amount":     strconv.FormatFloat(amount, 'f', 0, 64),
		"currency":   currency,
		"externalId": txn.Reference,
		"payer": map[string]string{
			"partyIdType": "MSISDN",
			"partyId":     params.PhoneNumber,
		},
		"payerMessage": txn.Description,
		"payeeNote":    txn.Reference,
	}

	body, status, err := doJSON(ctx, g.client, http.MethodPost, g.baseURL+"/collection/v1_0/requesttopay", payload, map[string]string{
		"Authorization":             "Bearer " + token,
		"X-Reference-Id":            referenceID,
		"X-Target-Environment":      g.targetEnv,
		"Ocp-Apim-Subscription-Key": g.subscriptionKey,
	})
	if err != nil {
		return nil, fmt.Errorf("mtn_momo request to pay: %w", err)
	}
	// request-to-pay returns 202 with an empty body on acceptance
	_ = status

	return &CreateResult{
		Success:          true,
		GatewayReference: referenceID,
		GatewayStatus:    "PENDING",
		Message:          "Payment request sent; confirm on your handset",
		Links: map[string]string{
			"ussd": "*126#",
		},
		RawResponse: body,
	}, nil
}

// VerifyPayment polls the request-to-pay status
func (g *MTNMoMoGateway) VerifyPayment(ctx context.Context, gatewayReference string) (*VerifyResult, error) {
	token, err := g.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	body, _, err := doJSON(ctx, g.client, http.MethodGet, g.baseURL+"/collection/v1_0/requesttopay/"+gatewayReference, nil, map[string]string{
		"Authorization":             "Bearer " + token,
		"X-Target-Environment":      g.targetEnv,
		"Ocp-Apim-Subscription-Key": g.subscriptionKey,
	})
	if err != nil {
		return nil, fmt.Errorf("mtn_momo verify: %w", err)
	}

	amount, _ := strconv.ParseFloat(stringField(body, "amount"), 64)
	status := stringField(body, "status")

	return &VerifyResult{
		Status:        mapMoMoStatus(status),
		GatewayStatus: status,
		Amount:        amount,
		Currency:      stringField(body, "currency"),
		RawResponse:   body,
	}, nil
}

// ProcessRefund is not available on the collections API
func (g *MTNMoMoGateway) ProcessRefund(ctx context.Context, txn *models.Transaction, amount float64, reason string) (*RefundOutcome, error) {
	return nil, ErrRefundUnsupported
}

// ParseWebhook verifies the callback signature and decodes the event
func (g *MTNMoMoGateway) ParseWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookEvent, error) {
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
		Reference:        stringField(raw, "externalId"),
		GatewayReference: stringField(raw, "referenceId"),
		Status:           mapMoMoStatus(status),
		GatewayStatus:    status,
		Amount:           amount,
		Currency:         stringField(raw, "currency"),
		RawPayload:       raw,
	}, nil
}

func mapMoMoStatus(status string) models.TransactionStatus {
	switch status {
	case "SUCCESSFUL":
		return models.TransactionStatusSucceeded
	case "FAILED", "REJECTED", "TIMEOUT":
		return models.TransactionStatusFailed
	default:
		return models.TransactionStatusProcessing
	}
}
