package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kevin997/csl-payments/internal/pkg/logger"
	"github.com/kevin997/csl-payments/internal/pkg/models"
	nrpkg "github.com/kevin997/csl-payments/internal/pkg/newrelic"
	"github.com/kevin997/csl-payments/internal/utils"
	"github.com/kevin997/csl-payments/services/payments"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// CreatePayment handles checkout initiation
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.CreatePayment")

	var intent models.PaymentIntent
	if err := c.Bind(&intent); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	nrpkg.AddTransactionAttribute(txn, "environment.id", intent.EnvironmentID)
	nrpkg.AddTransactionAttribute(txn, "gateway.code", intent.GatewayCode)

	result, err := h.paymentUC.CreatePayment(c.Request().Context(), &intent)
	if err != nil {
		logger.Error("Failed to create payment",
			logger.String("environment_id", intent.EnvironmentID),
			logger.String("gateway_code", intent.GatewayCode),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	logger.Info("Payment created",
		logger.String("reference", result.TransactionReference),
		logger.String("gateway_code", intent.GatewayCode))

	return utils.SuccessResponse(c, http.StatusCreated, "Payment created successfully", result)
}

// CreateInvoiceLink handles payment link generation for an invoice
func (h *PaymentHandler) CreateInvoiceLink(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.CreateInvoiceLink")

	var invoice models.Invoice
	if err := c.Bind(&invoice); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	link, err := h.paymentUC.CreateInvoicePaymentLink(c.Request().Context(), &invoice)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment link created successfully", map[string]string{
		"payment_url": link,
	})
}

// GetTransaction returns one transaction by reference
func (h *PaymentHandler) GetTransaction(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.GetTransaction")

	reference := c.Param("reference")
	if reference == "" {
		return utils.BadRequestResponse(c, "Transaction reference is required")
	}

	transaction, err := h.paymentUC.GetTransaction(c.Request().Context(), reference)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", transaction)
}

// VerifyPayment polls the provider for the current status of a transaction
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.VerifyPayment")

	reference := c.Param("reference")
	if reference == "" {
		return utils.BadRequestResponse(c, "Transaction reference is required")
	}

	status, err := h.paymentUC.VerifyPayment(c.Request().Context(), reference)
	if err != nil {
		logger.Error("Failed to verify payment",
			logger.String("reference", reference),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment verified successfully", map[string]string{
		"reference": reference,
		"status":    string(status),
	})
}

// RefundRequest is the inbound refund payload
type RefundRequest struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason,omitempty"`
}

// Refund issues a full or partial refund for a succeeded transaction
func (h *PaymentHandler) Refund(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.Refund")

	reference := c.Param("reference")
	if reference == "" {
		return utils.BadRequestResponse(c, "Transaction reference is required")
	}

	var req RefundRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.paymentUC.Refund(c.Request().Context(), reference, req.Amount, req.Reason)
	if err != nil {
		logger.Error("Failed to process refund",
			logger.String("reference", reference),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Refund processed successfully", result)
}

// CancelTransaction cancels a pending or processing transaction
func (h *PaymentHandler) CancelTransaction(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.CancelTransaction")

	reference := c.Param("reference")
	if reference == "" {
		return utils.BadRequestResponse(c, "Transaction reference is required")
	}

	if err := h.paymentUC.CancelTransaction(c.Request().Context(), reference); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction cancelled successfully", nil)
}

// ListPayments returns an environment's payments
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.ListPayments")

	environmentID := c.QueryParam("environment_id")
	if environmentID == "" {
		return utils.BadRequestResponse(c, "environment_id is required")
	}

	limit, offset := paginationParams(c)
	result, err := h.paymentUC.ListPayments(c.Request().Context(), environmentID, limit, offset)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", result)
}

// ListGateways returns the capability descriptors of all supported providers
func (h *PaymentHandler) ListGateways(c echo.Context) error {
	configs := h.paymentUC.ListGatewayConfigs()
	return utils.SuccessResponse(c, http.StatusOK, "Gateways retrieved successfully", configs)
}

func paginationParams(c echo.Context) (limit, offset int) {
	limit = 20
	offset = 0
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
