package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

// CreateTransaction inserts a new ledger transaction
func (r *PostgresRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	conversionJSON, err := marshalConversion(txn.Conversion)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (
			id, reference, environment_id, customer_id, order_id, description,
			amount, fee_amount, tax_amount, tax_rate, discount_amount, total_amount,
			currency, status, payment_method, gateway_code, gateway_reference,
			gateway_status, gateway_response, conversion, created_at, updated_at
		) VALUES (
			:id, :reference, :environment_id, :customer_id, :order_id, :description,
			:amount, :fee_amount, :tax_amount, :tax_rate, :discount_amount, :total_amount,
			:currency, :status, :payment_method, :gateway_code, :gateway_reference,
			:gateway_status, :gateway_response, :conversion, :created_at, :updated_at
		)
	`
	_, err = r.db.NamedExecContext(ctx, query, transactionRow(txn, conversionJSON))
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetTransactionByReference retrieves a transaction by its reference
func (r *PostgresRepo) GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	return r.getTransaction(ctx, "reference", reference)
}

// GetTransactionByGatewayReference retrieves a transaction by the provider
// correlation id
func (r *PostgresRepo) GetTransactionByGatewayReference(ctx context.Context, gatewayReference string) (*models.Transaction, error) {
	return r.getTransaction(ctx, "gateway_reference", gatewayReference)
}

func (r *PostgresRepo) getTransaction(ctx context.Context, field, value string) (*models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT id, reference, environment_id, customer_id, order_id, description,
			amount, fee_amount, tax_amount, tax_rate, discount_amount, total_amount,
			currency, status, payment_method, gateway_code, gateway_reference,
			gateway_status, gateway_response, conversion, created_at, updated_at
		FROM transactions
		WHERE %s = $1
	`, field)

	var row struct {
		models.Transaction
		ConversionRaw []byte `db:"conversion"`
	}
	err := r.db.GetContext(ctx, &row, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payerr.Newf(payerr.KindNotFound, "transaction not found: %s", value)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	txn := row.Transaction
	if len(row.ConversionRaw) > 0 {
		var snapshot models.ConversionSnapshot
		if err := json.Unmarshal(row.ConversionRaw, &snapshot); err == nil {
			txn.Conversion = &snapshot
		}
	}

	return &txn, nil
}

// UpdateTransaction rewrites a reusable transaction's mutable fields for a
// retry, keeping the same reference
func (r *PostgresRepo) UpdateTransaction(ctx context.Context, txn *models.Transaction) error {
	txn.UpdatedAt = time.Now()

	conversionJSON, err := marshalConversion(txn.Conversion)
	if err != nil {
		return err
	}

	query := `
		UPDATE transactions SET
			customer_id = :customer_id,
			order_id = :order_id,
			description = :description,
			amount = :amount,
			fee_amount = :fee_amount,
			tax_amount = :tax_amount,
			tax_rate = :tax_rate,
			discount_amount = :discount_amount,
			total_amount = :total_amount,
			currency = :currency,
			status = :status,
			payment_method = :payment_method,
			gateway_code = :gateway_code,
			gateway_reference = :gateway_reference,
			gateway_status = :gateway_status,
			gateway_response = :gateway_response,
			conversion = :conversion,
			updated_at = :updated_at
		WHERE reference = :reference
	`
	result, err := r.db.NamedExecContext(ctx, query, transactionRow(txn, conversionJSON))
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return payerr.Newf(payerr.KindNotFound, "transaction not found: %s", txn.Reference)
	}

	return nil
}

// UpdateTransactionOutcome persists the provider correlation id, status
// string and raw response after an adapter call
func (r *PostgresRepo) UpdateTransactionOutcome(ctx context.Context, reference string, status models.TransactionStatus, gatewayReference, gatewayStatus string, response models.JSONMap) error {
	query := `
		UPDATE transactions
		SET status = $1, gateway_reference = $2, gateway_status = $3,
			gateway_response = $4, updated_at = NOW()
		WHERE reference = $5
	`
	result, err := r.db.ExecContext(ctx, query, status, gatewayReference, gatewayStatus, response, reference)
	if err != nil {
		return fmt.Errorf("failed to update transaction outcome: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return payerr.Newf(payerr.KindNotFound, "transaction not found: %s", reference)
	}

	return nil
}

// TransitionStatus moves a transaction to a new status only if its current
// status is one of from. Returns false without error when no row matched,
// which is how concurrent webhook/poll paths stay idempotent.
func (r *PostgresRepo) TransitionStatus(ctx context.Context, reference string, from []models.TransactionStatus, to models.TransactionStatus, gatewayStatus string) (bool, error) {
	if len(from) == 0 {
		return false, fmt.Errorf("transition requires at least one source status")
	}

	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = string(s)
	}

	query, args, err := sqlx.In(`
		UPDATE transactions
		SET status = ?, gateway_status = ?, updated_at = NOW()
		WHERE reference = ? AND status IN (?)
	`, string(to), gatewayStatus, reference, fromStrs)
	if err != nil {
		return false, fmt.Errorf("failed to build transition query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return false, fmt.Errorf("failed to transition transaction status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func marshalConversion(snapshot *models.ConversionSnapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal conversion snapshot: %w", err)
	}
	return data, nil
}

func transactionRow(txn *models.Transaction, conversionJSON []byte) map[string]interface{} {
	return map[string]interface{}{
		"id":                txn.ID,
		"reference":         txn.Reference,
		"environment_id":    txn.EnvironmentID,
		"customer_id":       txn.CustomerID,
		"order_id":          txn.OrderID,
		"description":       txn.Description,
		"amount":            txn.Amount,
		"fee_amount":        txn.FeeAmount,
		"tax_amount":        txn.TaxAmount,
		"tax_rate":          txn.TaxRate,
		"discount_amount":   txn.DiscountAmount,
		"total_amount":      txn.TotalAmount,
		"currency":          txn.Currency,
		"status":            txn.Status,
		"payment_method":    txn.PaymentMethod,
		"gateway_code":      txn.GatewayCode,
		"gateway_reference": txn.GatewayReference,
		"gateway_status":    txn.GatewayStatus,
		"gateway_response":  txn.GatewayResponse,
		"conversion":        conversionJSON,
		"created_at":        txn.CreatedAt,
		"updated_at":        txn.UpdatedAt,
	}
}
