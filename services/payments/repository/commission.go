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

// CreateCommission inserts a new commission record
func (r *PostgresRepo) CreateCommission(ctx context.Context, commission *models.Commission) error {
	now := time.Now()
	commission.CreatedAt = now
	commission.UpdatedAt = now

	query := `
		INSERT INTO instructor_commissions (
			id, environment_id, transaction_id, order_id, gross_amount,
			fee_rate, fee_amount, payout_amount, currency, status,
			withdrawal_id, payment_reference, paid_at, created_at, updated_at
		) VALUES (
			:id, :environment_id, :transaction_id, :order_id, :gross_amount,
			:fee_rate, :fee_amount, :payout_amount, :currency, :status,
			:withdrawal_id, :payment_reference, :paid_at, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, commission)
	if err != nil {
		return fmt.Errorf("failed to create commission: %w", err)
	}

	return nil
}

// GetCommissionByID retrieves a commission by id
func (r *PostgresRepo) GetCommissionByID(ctx context.Context, id string) (*models.Commission, error) {
	query := `SELECT * FROM instructor_commissions WHERE id = $1`

	var commission models.Commission
	err := r.db.GetContext(ctx, &commission, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payerr.Newf(payerr.KindNotFound, "commission not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get commission: %w", err)
	}

	return &commission, nil
}

// GetCommissionByTransactionID retrieves the commission derived from a
// transaction; the at-most-once derivation guard
func (r *PostgresRepo) GetCommissionByTransactionID(ctx context.Context, transactionID string) (*models.Commission, error) {
	query := `SELECT * FROM instructor_commissions WHERE transaction_id = $1`

	var commission models.Commission
	err := r.db.GetContext(ctx, &commission, query, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payerr.Newf(payerr.KindNotFound, "no commission for transaction: %s", transactionID)
		}
		return nil, fmt.Errorf("failed to get commission by transaction: %w", err)
	}

	return &commission, nil
}

// ListCommissions returns an environment's commissions, optionally filtered
// by status, newest first
func (r *PostgresRepo) ListCommissions(ctx context.Context, environmentID string, status models.CommissionStatus, limit, offset int) ([]models.Commission, error) {
	if limit <= 0 {
		limit = 50
	}

	commissions := []models.Commission{}
	var err error

	if status == "" {
		query := `
			SELECT * FROM instructor_commissions
			WHERE environment_id = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`
		err = r.db.SelectContext(ctx, &commissions, query, environmentID, limit, offset)
	} else {
		query := `
			SELECT * FROM instructor_commissions
			WHERE environment_id = $1 AND status = $2
			ORDER BY created_at DESC
			LIMIT $3 OFFSET $4
		`
		err = r.db.SelectContext(ctx, &commissions, query, environmentID, status, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}

	return commissions, nil
}

// ApproveCommission moves a single pending commission to approved
func (r *PostgresRepo) ApproveCommission(ctx context.Context, id string) error {
	query := `
		UPDATE instructor_commissions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`
	result, err := r.db.ExecContext(ctx, query, models.CommissionStatusApproved, id, models.CommissionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to approve commission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return payerr.Newf(payerr.KindConsistency, "commission %s is not pending", id)
	}

	return nil
}

// BulkApprove approves each pending commission inside one DB transaction and
// reports per-item outcomes. Items that are not pending are reported as
// failed without aborting the batch.
func (r *PostgresRepo) BulkApprove(ctx context.Context, ids []string) (*models.BulkApprovalResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result := &models.BulkApprovalResult{
		Approved: []string{},
		Failed:   []string{},
		Errors:   map[string]string{},
	}

	for _, id := range ids {
		res, err := tx.ExecContext(ctx, `
			UPDATE instructor_commissions
			SET status = $1, updated_at = NOW()
			WHERE id = $2 AND status = $3
		`, models.CommissionStatusApproved, id, models.CommissionStatusPending)
		if err != nil {
			return nil, fmt.Errorf("failed to approve commission %s: %w", id, err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rows == 0 {
			result.Failed = append(result.Failed, id)
			result.Errors[id] = "commission is not pending"
			continue
		}
		result.Approved = append(result.Approved, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bulk approval: %w", err)
	}

	return result, nil
}

// ListApprovedUnlinked returns approved commissions with no withdrawal link,
// oldest first. This is the aggregation candidate set.
func (r *PostgresRepo) ListApprovedUnlinked(ctx context.Context, environmentID string) ([]models.Commission, error) {
	query := `
		SELECT * FROM instructor_commissions
		WHERE environment_id = $1 AND status = $2 AND withdrawal_id = ''
		ORDER BY created_at ASC
	`

	commissions := []models.Commission{}
	err := r.db.SelectContext(ctx, &commissions, query, environmentID, models.CommissionStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved commissions: %w", err)
	}

	return commissions, nil
}

// AvailableBalance sums payout amounts of approved, unlinked commissions
func (r *PostgresRepo) AvailableBalance(ctx context.Context, environmentID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(payout_amount), 0) FROM instructor_commissions
		WHERE environment_id = $1 AND status = $2 AND withdrawal_id = ''
	`

	var balance float64
	err := r.db.GetContext(ctx, &balance, query, environmentID, models.CommissionStatusApproved)
	if err != nil {
		return 0, fmt.Errorf("failed to get available balance: %w", err)
	}

	return balance, nil
}
