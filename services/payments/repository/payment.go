package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

// CreatePayment inserts a new payment record
func (r *PostgresRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	query := `
		INSERT INTO payments (
			id, environment_id, subscriber_id, subscription_id, order_id,
			amount, fee_amount, tax_amount, tax_rate, total_amount, currency,
			payment_method, status, transaction_reference, gateway_status,
			gateway_response, created_at, updated_at
		) VALUES (
			:id, :environment_id, :subscriber_id, :subscription_id, :order_id,
			:amount, :fee_amount, :tax_amount, :tax_rate, :total_amount, :currency,
			:payment_method, :status, :transaction_reference, :gateway_status,
			:gateway_response, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, payment)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// GetPaymentByID retrieves a payment by id
func (r *PostgresRepo) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	query := `SELECT * FROM payments WHERE id = $1`

	var payment models.Payment
	err := r.db.GetContext(ctx, &payment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payerr.Newf(payerr.KindNotFound, "payment not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

// GetPaymentForIntent finds the open payment for a subscription or order so
// a retry reuses it instead of opening a second one
func (r *PostgresRepo) GetPaymentForIntent(ctx context.Context, environmentID, subscriptionID, orderID string) (*models.Payment, error) {
	query := `
		SELECT * FROM payments
		WHERE environment_id = $1
			AND ((subscription_id <> '' AND subscription_id = $2)
				OR (order_id <> '' AND order_id = $3))
		ORDER BY created_at DESC
		LIMIT 1
	`

	var payment models.Payment
	err := r.db.GetContext(ctx, &payment, query, environmentID, subscriptionID, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payerr.New(payerr.KindNotFound, "no payment for intent")
		}
		return nil, fmt.Errorf("failed to get payment for intent: %w", err)
	}

	return &payment, nil
}

// UpdatePayment rewrites a payment's mutable fields
func (r *PostgresRepo) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	payment.UpdatedAt = time.Now()

	query := `
		UPDATE payments SET
			amount = :amount,
			fee_amount = :fee_amount,
			tax_amount = :tax_amount,
			tax_rate = :tax_rate,
			total_amount = :total_amount,
			currency = :currency,
			payment_method = :payment_method,
			status = :status,
			transaction_reference = :transaction_reference,
			gateway_status = :gateway_status,
			gateway_response = :gateway_response,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, payment)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return payerr.Newf(payerr.KindNotFound, "payment not found: %s", payment.ID)
	}

	return nil
}

// UpdatePaymentByTransactionRef mirrors a transaction status change onto the
// payment pointing at that reference
func (r *PostgresRepo) UpdatePaymentByTransactionRef(ctx context.Context, reference string, status models.TransactionStatus, gatewayStatus string) error {
	query := `
		UPDATE payments
		SET status = $1, gateway_status = $2, updated_at = NOW()
		WHERE transaction_reference = $3
	`
	_, err := r.db.ExecContext(ctx, query, status, gatewayStatus, reference)
	if err != nil {
		return fmt.Errorf("failed to update payment by transaction reference: %w", err)
	}

	return nil
}

// ListPayments returns an environment's payments, newest first
func (r *PostgresRepo) ListPayments(ctx context.Context, environmentID string, limit, offset int) ([]models.Payment, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT * FROM payments
		WHERE environment_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	payments := []models.Payment{}
	err := r.db.SelectContext(ctx, &payments, query, environmentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}
