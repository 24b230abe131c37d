package payments

import (
	"context"

	"github.com/kevin997/csl-payments/internal/pkg/gateway"
	"github.com/kevin997/csl-payments/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kevin997/csl-payments/services/payments PaymentUC,CommissionUC,WithdrawalUC,ConfigUC

// PaymentUC represents the payment orchestration interface
type PaymentUC interface {
	// CreatePayment turns a business intent into a provider charge and
	// returns whatever the caller needs to complete checkout
	CreatePayment(ctx context.Context, intent *models.PaymentIntent) (*models.CheckoutResult, error)

	// CreateInvoicePaymentLink produces a provider-hosted payment URL for an
	// invoice
	CreateInvoicePaymentLink(ctx context.Context, invoice *models.Invoice) (string, error)

	// HandleProviderWebhook verifies the payload signature against the
	// environment's webhook secret before touching any state, then applies
	// the status transition idempotently. Webhook endpoints are per
	// environment and provider.
	HandleProviderWebhook(ctx context.Context, providerCode, environmentID string, payload []byte, signatureHeader string) error

	// VerifyPayment polls the provider and applies the resulting transition;
	// fallback path for delayed or missed webhooks
	VerifyPayment(ctx context.Context, reference string) (models.TransactionStatus, error)

	// Refund issues a full (amount == 0) or partial refund
	Refund(ctx context.Context, reference string, amount float64, reason string) (*models.RefundResult, error)

	// CancelTransaction marks a non-terminal transaction cancelled (customer
	// abandonment or timeout policy)
	CancelTransaction(ctx context.Context, reference string) error

	GetTransaction(ctx context.Context, reference string) (*models.Transaction, error)
	ListPayments(ctx context.Context, environmentID string, limit, offset int) ([]models.Payment, error)
	ListGatewayConfigs() []gateway.Capability
}

// CommissionUC represents the commission ledger interface
type CommissionUC interface {
	ApproveCommission(ctx context.Context, id string) error
	BulkApproveCommissions(ctx context.Context, ids []string) (*models.BulkApprovalResult, error)
	ListCommissions(ctx context.Context, environmentID string, status models.CommissionStatus, limit, offset int) ([]models.Commission, error)
	GetAvailableBalance(ctx context.Context, environmentID string) (float64, error)
}

// WithdrawalUC represents the withdrawal payout interface
type WithdrawalUC interface {
	CreateWithdrawalRequest(ctx context.Context, req *models.WithdrawalCreateRequest) (*models.WithdrawalRequest, error)
	ApproveWithdrawal(ctx context.Context, id, approver string) error
	RejectWithdrawal(ctx context.Context, id, reason string) error
	ProcessWithdrawal(ctx context.Context, id, processor, paymentReference string) error
	GetWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequest, error)
	ListWithdrawals(ctx context.Context, environmentID string, limit, offset int) ([]models.WithdrawalRequest, error)
}

// ConfigUC represents the environment payment configuration interface
type ConfigUC interface {
	GetEnvironmentConfig(ctx context.Context, environmentID string) (*models.EnvironmentPaymentConfig, error)
	UpdateEnvironmentConfig(ctx context.Context, config *models.EnvironmentPaymentConfig) error
}
