package payments

import (
	"context"

	"github.com/kevin997/csl-payments/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kevin997/csl-payments/services/payments TransactionRepo,PaymentRepo,CommissionRepo,WithdrawalRepo,EnvConfigRepo

// TransactionRepo persists the transaction ledger
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error)
	GetTransactionByGatewayReference(ctx context.Context, gatewayReference string) (*models.Transaction, error)
	// UpdateTransaction rewrites a reusable transaction's mutable fields for
	// a retry, keeping the same reference
	UpdateTransaction(ctx context.Context, txn *models.Transaction) error
	// UpdateTransactionOutcome persists the provider correlation id, status
	// string and raw response after an adapter call
	UpdateTransactionOutcome(ctx context.Context, reference string, status models.TransactionStatus, gatewayReference, gatewayStatus string, response models.JSONMap) error
	// TransitionStatus moves a transaction to a new status only if its
	// current status is one of from; reports whether a row changed. This is
	// the optimistic guard making webhook and polling paths idempotent.
	TransitionStatus(ctx context.Context, reference string, from []models.TransactionStatus, to models.TransactionStatus, gatewayStatus string) (bool, error)
}

// PaymentRepo persists the business-facing payment records
type PaymentRepo interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPaymentByID(ctx context.Context, id string) (*models.Payment, error)
	// GetPaymentForIntent finds the open payment for a subscription or order
	// so retries reuse it instead of creating a second one
	GetPaymentForIntent(ctx context.Context, environmentID, subscriptionID, orderID string) (*models.Payment, error)
	UpdatePayment(ctx context.Context, payment *models.Payment) error
	UpdatePaymentByTransactionRef(ctx context.Context, reference string, status models.TransactionStatus, gatewayStatus string) error
	ListPayments(ctx context.Context, environmentID string, limit, offset int) ([]models.Payment, error)
}

// CommissionRepo persists commission records. Financial fields are written
// once at derivation; later operations only change status and linkage.
type CommissionRepo interface {
	CreateCommission(ctx context.Context, commission *models.Commission) error
	GetCommissionByID(ctx context.Context, id string) (*models.Commission, error)
	GetCommissionByTransactionID(ctx context.Context, transactionID string) (*models.Commission, error)
	ListCommissions(ctx context.Context, environmentID string, status models.CommissionStatus, limit, offset int) ([]models.Commission, error)
	ApproveCommission(ctx context.Context, id string) error
	// BulkApprove approves each pending commission in one DB transaction and
	// reports per-item outcomes
	BulkApprove(ctx context.Context, ids []string) (*models.BulkApprovalResult, error)
	// ListApprovedUnlinked returns approved commissions with no withdrawal
	// link, oldest first
	ListApprovedUnlinked(ctx context.Context, environmentID string) ([]models.Commission, error)
	// AvailableBalance sums payout amounts of approved, unlinked commissions
	AvailableBalance(ctx context.Context, environmentID string) (float64, error)
}

// WithdrawalRepo persists withdrawal requests and owns the commission link.
// Linking, unlinking and paid-marking happen atomically with the withdrawal
// status change.
type WithdrawalRepo interface {
	// CreateWithdrawal inserts the request and links the given commissions in
	// one DB transaction; it fails if any commission is no longer approved
	// and unlinked
	CreateWithdrawal(ctx context.Context, withdrawal *models.WithdrawalRequest, commissionIDs []string) error
	GetWithdrawalByID(ctx context.Context, id string) (*models.WithdrawalRequest, error)
	ListWithdrawals(ctx context.Context, environmentID string, limit, offset int) ([]models.WithdrawalRequest, error)
	ApproveWithdrawal(ctx context.Context, id, approver string) error
	// RejectWithdrawal sets the status and unlinks every aggregated
	// commission in one DB transaction
	RejectWithdrawal(ctx context.Context, id, reason string) error
	// CompleteWithdrawal marks the request completed and every linked
	// commission paid with the same reference, atomically
	CompleteWithdrawal(ctx context.Context, id, processor, paymentReference string) error
}

// EnvConfigRepo persists per-environment payment configuration and gateway
// credentials
type EnvConfigRepo interface {
	GetEnvironmentConfig(ctx context.Context, environmentID string) (*models.EnvironmentPaymentConfig, error)
	UpsertEnvironmentConfig(ctx context.Context, config *models.EnvironmentPaymentConfig) error
	GetGatewayCredentials(ctx context.Context, environmentID, gatewayCode string) (*models.GatewayCredentials, error)
}
