package usecase

import (
	"context"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

// ApproveCommission marks a pending commission eligible for withdrawal
func (uc *CommissionUC) ApproveCommission(ctx context.Context, id string) error {
	if id == "" {
		return payerr.New(payerr.KindValidation, "commission id is required")
	}
	return uc.commissionRepo.ApproveCommission(ctx, id)
}

// BulkApproveCommissions approves a batch and reports per-item outcomes; an
// already-approved or paid entry fails individually without aborting the rest
func (uc *CommissionUC) BulkApproveCommissions(ctx context.Context, ids []string) (*models.BulkApprovalResult, error) {
	if len(ids) == 0 {
		return nil, payerr.New(payerr.KindValidation, "no commission ids given")
	}
	return uc.commissionRepo.BulkApprove(ctx, ids)
}

// ListCommissions returns an environment's commissions, optionally filtered
// by status
func (uc *CommissionUC) ListCommissions(ctx context.Context, environmentID string, status models.CommissionStatus, limit, offset int) ([]models.Commission, error) {
	return uc.commissionRepo.ListCommissions(ctx, environmentID, status, limit, offset)
}

// GetAvailableBalance sums the payout amounts of approved commissions not yet
// attached to a withdrawal
func (uc *CommissionUC) GetAvailableBalance(ctx context.Context, environmentID string) (float64, error) {
	if environmentID == "" {
		return 0, payerr.New(payerr.KindValidation, "environment id is required")
	}
	return uc.commissionRepo.AvailableBalance(ctx, environmentID)
}
