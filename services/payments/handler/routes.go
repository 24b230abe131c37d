package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kevin997/csl-payments/internal/pkg/middleware"
	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/services/payments"
	httpHandler "github.com/kevin997/csl-payments/services/payments/handler/http"
)

// Handler combines all HTTP handlers for the payments service
type Handler struct {
	payment    *httpHandler.PaymentHandler
	webhook    *httpHandler.WebhookHandler
	commission *httpHandler.CommissionHandler
	withdrawal *httpHandler.WithdrawalHandler
	config     *httpHandler.ConfigHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	paymentUC payments.PaymentUC,
	commissionUC payments.CommissionUC,
	withdrawalUC payments.WithdrawalUC,
	configUC payments.ConfigUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		payment:    httpHandler.NewPaymentHandler(paymentUC),
		webhook:    httpHandler.NewWebhookHandler(paymentUC),
		commission: httpHandler.NewCommissionHandler(commissionUC),
		withdrawal: httpHandler.NewWithdrawalHandler(withdrawalUC),
		config:     httpHandler.NewConfigHandler(configUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Provider callbacks authenticate by signature, not by JWT
	e.POST("/webhooks/:provider/:environmentID", h.webhook.HandleWebhook)

	// Checkout endpoints used by storefronts
	payments := e.Group("/payments")
	payments.POST("", h.payment.CreatePayment)
	payments.POST("/invoice-link", h.payment.CreateInvoiceLink)
	payments.GET("/gateways", h.payment.ListGateways)
	payments.GET("/transactions/:reference", h.payment.GetTransaction)
	payments.POST("/transactions/:reference/verify", h.payment.VerifyPayment)
	payments.POST("/transactions/:reference/cancel", h.payment.CancelTransaction)

	// Administrative endpoints (JWT required)
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	admin := e.Group("/admin", auth, middleware.RequireRole("admin"))

	admin.GET("/payments", h.payment.ListPayments)
	admin.POST("/payments/transactions/:reference/refund", h.payment.Refund)

	admin.GET("/commissions", h.commission.ListCommissions)
	admin.POST("/commissions/:id/approve", h.commission.ApproveCommission)
	admin.POST("/commissions/bulk-approve", h.commission.BulkApprove)
	admin.GET("/commissions/balance/:environmentID", h.commission.GetBalance)

	admin.GET("/withdrawals", h.withdrawal.ListWithdrawals)
	admin.GET("/withdrawals/:id", h.withdrawal.GetWithdrawal)
	admin.POST("/withdrawals/:id/approve", h.withdrawal.ApproveWithdrawal)
	admin.POST("/withdrawals/:id/reject", h.withdrawal.RejectWithdrawal)
	admin.POST("/withdrawals/:id/process", h.withdrawal.ProcessWithdrawal)

	admin.GET("/config/:environmentID", h.config.GetConfig)
	admin.PUT("/config/:environmentID", h.config.UpdateConfig)

	// Instructor-facing endpoints (JWT, any role)
	api := e.Group("/api", auth)
	api.POST("/withdrawals", h.withdrawal.CreateWithdrawal)
	api.GET("/withdrawals", h.withdrawal.ListWithdrawals)
	api.GET("/commissions", h.commission.ListCommissions)
	api.GET("/commissions/balance/:environmentID", h.commission.GetBalance)
}
