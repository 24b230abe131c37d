package usecase

import (
	"sync"
	"time"

	"github.com/kevin997/csl-payments/internal/pkg/gateway"
	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/services/payments"
)

// PaymentUC implements the payments.PaymentUC interface: the orchestrator
// that turns business intents into provider charges and applies status
// transitions coming back from webhooks and polls
type PaymentUC struct {
	cfg            *models.Config
	txnRepo        payments.TransactionRepo
	paymentRepo    payments.PaymentRepo
	commissionRepo payments.CommissionRepo
	envRepo        payments.EnvConfigRepo
	registry       *gateway.Registry
	gw             payments.PaymentGW
	configCache    *ConfigCache
}

// NewPaymentUC creates a new payment orchestration usecase
func NewPaymentUC(
	cfg *models.Config,
	txnRepo payments.TransactionRepo,
	paymentRepo payments.PaymentRepo,
	commissionRepo payments.CommissionRepo,
	envRepo payments.EnvConfigRepo,
	registry *gateway.Registry,
	gw payments.PaymentGW,
	configCache *ConfigCache,
) *PaymentUC {
	return &PaymentUC{
		cfg:            cfg,
		txnRepo:        txnRepo,
		paymentRepo:    paymentRepo,
		commissionRepo: commissionRepo,
		envRepo:        envRepo,
		registry:       registry,
		gw:             gw,
		configCache:    configCache,
	}
}

// gatewayTimeout returns the per-call timeout for provider requests
func (uc *PaymentUC) gatewayTimeout() time.Duration {
	if uc.cfg.Payment.GatewayTimeout > 0 {
		return time.Duration(uc.cfg.Payment.GatewayTimeout) * time.Second
	}
	return 30 * time.Second
}

// CommissionUC implements the payments.CommissionUC interface
type CommissionUC struct {
	commissionRepo payments.CommissionRepo
	gw             payments.PaymentGW
}

// NewCommissionUC creates a new commission usecase
func NewCommissionUC(commissionRepo payments.CommissionRepo, gw payments.PaymentGW) *CommissionUC {
	return &CommissionUC{
		commissionRepo: commissionRepo,
		gw:             gw,
	}
}

// WithdrawalUC implements the payments.WithdrawalUC interface
type WithdrawalUC struct {
	commissionRepo payments.CommissionRepo
	withdrawalRepo payments.WithdrawalRepo
	configCache    *ConfigCache
	gw             payments.PaymentGW

	// one lock per environment serializes aggregation so two concurrent
	// requests cannot link the same commission
	envLocks sync.Map
}

// NewWithdrawalUC creates a new withdrawal usecase
func NewWithdrawalUC(
	commissionRepo payments.CommissionRepo,
	withdrawalRepo payments.WithdrawalRepo,
	configCache *ConfigCache,
	gw payments.PaymentGW,
) *WithdrawalUC {
	return &WithdrawalUC{
		commissionRepo: commissionRepo,
		withdrawalRepo: withdrawalRepo,
		configCache:    configCache,
		gw:             gw,
	}
}

func (uc *WithdrawalUC) lockEnvironment(environmentID string) func() {
	value, _ := uc.envLocks.LoadOrStore(environmentID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
