package gateway

import (
	"context"

	"github.com/kevin997/csl-payments/internal/pkg/models"
)

// CalculateTax forwards to the tax service HTTP client
func (g *PaymentGW) CalculateTax(ctx context.Context, amount float64, environmentID string) (*models.TaxResult, error) {
	return g.taxClient.CalculateTax(ctx, amount, environmentID)
}

// ConvertCurrency forwards to the exchange rate HTTP client
func (g *PaymentGW) ConvertCurrency(ctx context.Context, amount float64, from, to string) (*models.ConversionSnapshot, error) {
	return g.exchangeClient.Convert(ctx, amount, from, to)
}

// PublishPaymentEvent forwards to the NATS gateway
func (g *PaymentGW) PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error {
	return g.natsGateway.PublishPaymentEvent(ctx, event)
}

// PublishCommissionEvent forwards to the NATS gateway
func (g *PaymentGW) PublishCommissionEvent(ctx context.Context, event *models.CommissionEvent) error {
	return g.natsGateway.PublishCommissionEvent(ctx, event)
}

// PublishWithdrawalEvent forwards to the NATS gateway
func (g *PaymentGW) PublishWithdrawalEvent(ctx context.Context, event *models.WithdrawalEvent) error {
	return g.natsGateway.PublishWithdrawalEvent(ctx, event)
}
