package payments

import (
	"context"

	"github.com/kevin997/csl-payments/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kevin997/csl-payments/services/payments PaymentGW

// PaymentGW defines the external collaborator interface: tax resolution,
// currency conversion and lifecycle event publication. Implementations live
// under gateway/ (HTTP clients and the NATS publisher).
type PaymentGW interface {
	// CalculateTax resolves the tax amount and rate for an amount in an
	// environment's tax jurisdiction
	CalculateTax(ctx context.Context, amount float64, environmentID string) (*models.TaxResult, error)

	// ConvertCurrency converts an amount between currencies; an error signals
	// the caller should fall back to the original amount
	ConvertCurrency(ctx context.Context, amount float64, from, to string) (*models.ConversionSnapshot, error)

	// Event publication (fire-and-forget toward the notification service)
	PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error
	PublishCommissionEvent(ctx context.Context, event *models.CommissionEvent) error
	PublishWithdrawalEvent(ctx context.Context, event *models.WithdrawalEvent) error
}
