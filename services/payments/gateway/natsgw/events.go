package natsgw

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	natspkg "github.com/kevin997/csl-payments/internal/pkg/nats"
	"github.com/kevin997/csl-payments/internal/pkg/retry"
)

// Gateway publishes payment lifecycle events to NATS. A short broker hiccup
// is retried with backoff before the failure is surfaced to the caller.
type Gateway struct {
	client  *natspkg.Client
	retrier *retry.Retrier
}

// NewGateway creates a new NATS event gateway
func NewGateway(client *natspkg.Client) *Gateway {
	return &Gateway{
		client:  client,
		retrier: retry.New(retry.DefaultConfig()),
	}
}

// PublishPaymentEvent publishes a terminal payment status event
func (g *Gateway) PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error {
	subject := models.SubjectPaymentSucceeded
	if event.Status != string(models.TransactionStatusSucceeded) {
		subject = models.SubjectPaymentFailed
	}
	return g.publish(ctx, subject, event)
}

// PublishCommissionEvent publishes a commission lifecycle event
func (g *Gateway) PublishCommissionEvent(ctx context.Context, event *models.CommissionEvent) error {
	return g.publish(ctx, models.SubjectCommissionCreated, event)
}

// PublishWithdrawalEvent publishes a withdrawal lifecycle event
func (g *Gateway) PublishWithdrawalEvent(ctx context.Context, event *models.WithdrawalEvent) error {
	subject := models.SubjectWithdrawalRequested
	switch models.WithdrawalStatus(event.Status) {
	case models.WithdrawalStatusCompleted:
		subject = models.SubjectWithdrawalCompleted
	case models.WithdrawalStatusRejected:
		subject = models.SubjectWithdrawalRejected
	}
	return g.publish(ctx, subject, event)
}

func (g *Gateway) publish(ctx context.Context, subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = g.retrier.Do(ctx, "publish "+subject, func(ctx context.Context) error {
		return g.client.Publish(subject, data)
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}

	return nil
}
