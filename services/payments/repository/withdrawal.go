package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

// CreateWithdrawal inserts the request and links the given commissions in a
// single DB transaction. Every commission must still be approved and
// unlinked when the link is taken; otherwise the whole creation rolls back.
func (r *PostgresRepo) CreateWithdrawal(ctx context.Context, withdrawal *models.WithdrawalRequest, commissionIDs []string) error {
	now := time.Now()
	withdrawal.CreatedAt = now
	withdrawal.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO withdrawal_requests (
			id, environment_id, requester_id, amount, currency, status,
			method, method_details, rejection_reason, approved_by, approved_at,
			processed_by, processed_at, payment_reference, created_at, updated_at
		) VALUES (
			:id, :environment_id, :requester_id, :amount, :currency, :status,
			:method, :method_details, :rejection_reason, :approved_by, :approved_at,
			:processed_by, :processed_at, :payment_reference, :created_at, :updated_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, query, withdrawal); err != nil {
		return fmt.Errorf("failed to create withdrawal request: %w", err)
	}

	linkQuery, args, err := sqlx.In(`
		UPDATE instructor_commissions
		SET withdrawal_id = ?, updated_at = NOW()
		WHERE id IN (?) AND status = ? AND withdrawal_id = ''
	`, withdrawal.ID, commissionIDs, models.CommissionStatusApproved)
	if err != nil {
		return fmt.Errorf("failed to build link query: %w", err)
	}

	result, err := tx.ExecContext(ctx, tx.Rebind(linkQuery), args...)
	if err != nil {
		return fmt.Errorf("failed to link commissions: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows != int64(len(commissionIDs)) {
		return payerr.Newf(payerr.KindConsistency,
			"commission set changed during aggregation: linked %d of %d", rows, len(commissionIDs))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit withdrawal creation: %w", err)
	}

	return nil
}

// GetWithdrawalByID retrieves a withdrawal with its linked commission ids
func (r *PostgresRepo) GetWithdrawalByID(ctx context.Context, id string) (*models.WithdrawalRequest, error) {
	query := `SELECT * FROM withdrawal_requests WHERE id = $1`

	var withdrawal models.WithdrawalRequest
	err := r.db.GetContext(ctx, &withdrawal, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payerr.Newf(payerr.KindNotFound, "withdrawal not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get withdrawal: %w", err)
	}

	ids := []string{}
	err = r.db.SelectContext(ctx, &ids, `
		SELECT id FROM instructor_commissions
		WHERE withdrawal_id = $1
		ORDER BY created_at ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get linked commissions: %w", err)
	}
	withdrawal.CommissionIDs = ids

	return &withdrawal, nil
}

// ListWithdrawals returns an environment's withdrawal requests, newest first
func (r *PostgresRepo) ListWithdrawals(ctx context.Context, environmentID string, limit, offset int) ([]models.WithdrawalRequest, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT * FROM withdrawal_requests
		WHERE environment_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	withdrawals := []models.WithdrawalRequest{}
	err := r.db.SelectContext(ctx, &withdrawals, query, environmentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}

	return withdrawals, nil
}

// ApproveWithdrawal moves a pending withdrawal to approved; status only
func (r *PostgresRepo) ApproveWithdrawal(ctx context.Context, id, approver string) error {
	query := `
		UPDATE withdrawal_requests
		SET status = $1, approved_by = $2, approved_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND status = $4
	`
	result, err := r.db.ExecContext(ctx, query, models.WithdrawalStatusApproved, approver, id, models.WithdrawalStatusPending)
	if err != nil {
		return fmt.Errorf("failed to approve withdrawal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return payerr.Newf(payerr.KindConsistency, "withdrawal %s is not pending", id)
	}

	return nil
}

// RejectWithdrawal sets the status to rejected and unlinks every aggregated
// commission in the same DB transaction so they stay available for a future
// request
func (r *PostgresRepo) RejectWithdrawal(ctx context.Context, id, reason string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE withdrawal_requests
		SET status = $1, rejection_reason = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`, models.WithdrawalStatusRejected, reason, id, models.WithdrawalStatusPending)
	if err != nil {
		return fmt.Errorf("failed to reject withdrawal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return payerr.Newf(payerr.KindConsistency, "withdrawal %s is not pending", id)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE instructor_commissions
		SET withdrawal_id = '', updated_at = NOW()
		WHERE withdrawal_id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to unlink commissions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit withdrawal rejection: %w", err)
	}

	return nil
}

// CompleteWithdrawal marks an approved withdrawal completed and every linked
// commission paid with the same payment reference, atomically
func (r *PostgresRepo) CompleteWithdrawal(ctx context.Context, id, processor, paymentReference string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE withdrawal_requests
		SET status = $1, processed_by = $2, processed_at = NOW(),
			payment_reference = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`, models.WithdrawalStatusCompleted, processor, paymentReference, id, models.WithdrawalStatusApproved)
	if err != nil {
		return fmt.Errorf("failed to complete withdrawal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return payerr.Newf(payerr.KindConsistency, "withdrawal %s is not approved", id)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE instructor_commissions
		SET status = $1, payment_reference = $2, paid_at = NOW(), updated_at = NOW()
		WHERE withdrawal_id = $3
	`, models.CommissionStatusPaid, paymentReference, id)
	if err != nil {
		return fmt.Errorf("failed to mark commissions paid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit withdrawal completion: %w", err)
	}

	return nil
}
