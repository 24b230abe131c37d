package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kevin997/csl-payments/internal/pkg/gateway"
	"github.com/kevin997/csl-payments/internal/pkg/logger"
	nrpkg "github.com/kevin997/csl-payments/internal/pkg/newrelic"
	"github.com/kevin997/csl-payments/internal/utils"
	"github.com/kevin997/csl-payments/services/payments"
)

// WebhookHandler receives provider notifications. Endpoints are per
// environment so the webhook secret resolves before the payload is trusted.
type WebhookHandler struct {
	paymentUC payments.PaymentUC
}

// NewWebhookHandler creates a new webhook HTTP handler
func NewWebhookHandler(paymentUC payments.PaymentUC) *WebhookHandler {
	return &WebhookHandler{
		paymentUC: paymentUC,
	}
}

// HandleWebhook verifies and applies one provider notification
func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.HandleWebhook")

	providerCode := c.Param("provider")
	environmentID := c.Param("environmentID")
	if providerCode == "" || environmentID == "" {
		return utils.BadRequestResponse(c, "Provider and environment are required")
	}

	nrpkg.AddTransactionAttribute(txn, "webhook.provider", providerCode)
	nrpkg.AddTransactionAttribute(txn, "environment.id", environmentID)

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Failed to read webhook payload")
	}

	signature := signatureHeader(c, providerCode)

	if err := h.paymentUC.HandleProviderWebhook(c.Request().Context(), providerCode, environmentID, payload, signature); err != nil {
		logger.Error("Webhook processing failed",
			logger.String("provider", providerCode),
			logger.String("environment_id", environmentID),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Webhook processed", nil)
}

// signatureHeader picks the signature header the provider actually sends
func signatureHeader(c echo.Context, providerCode string) string {
	switch providerCode {
	case gateway.CodeStripe:
		return c.Request().Header.Get("Stripe-Signature")
	case gateway.CodePayPal:
		return c.Request().Header.Get("Paypal-Transmission-Sig")
	default:
		return c.Request().Header.Get("X-Signature")
	}
}
