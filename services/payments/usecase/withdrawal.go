package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kevin997/csl-payments/internal/pkg/logger"
	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
	"github.com/kevin997/csl-payments/internal/utils"
)

// CreateWithdrawalRequest opens a withdrawal by aggregating approved
// commissions oldest first. The per-environment lock serializes aggregation,
// so two concurrent requests can never claim the same commission.
func (uc *WithdrawalUC) CreateWithdrawalRequest(ctx context.Context, req *models.WithdrawalCreateRequest) (*models.WithdrawalRequest, error) {
	if req.EnvironmentID == "" {
		return nil, payerr.New(payerr.KindValidation, "environment id is required")
	}
	if req.RequesterID == "" {
		return nil, payerr.New(payerr.KindValidation, "requester id is required")
	}
	if req.Amount <= 0 {
		return nil, payerr.New(payerr.KindValidation, "withdrawal amount must be positive")
	}

	envConfig, err := uc.configCache.GetEnvironmentConfig(ctx, req.EnvironmentID)
	if err != nil {
		return nil, err
	}
	if req.Amount < envConfig.MinimumWithdrawal {
		return nil, payerr.Newf(payerr.KindValidation,
			"withdrawal amount %.2f is below the minimum of %.2f", req.Amount, envConfig.MinimumWithdrawal)
	}

	unlock := uc.lockEnvironment(req.EnvironmentID)
	defer unlock()

	balance, err := uc.commissionRepo.AvailableBalance(ctx, req.EnvironmentID)
	if err != nil {
		return nil, err
	}
	if req.Amount > balance {
		return nil, payerr.Newf(payerr.KindValidation,
			"withdrawal amount %.2f exceeds available balance %.2f", req.Amount, balance)
	}

	candidates, err := uc.commissionRepo.ListApprovedUnlinked(ctx, req.EnvironmentID)
	if err != nil {
		return nil, err
	}

	commissionIDs, total, currency := aggregateCommissions(candidates, req.Amount)
	if len(commissionIDs) == 0 {
		return nil, payerr.Newf(payerr.KindValidation,
			"no combination of approved commissions fits within %.2f", req.Amount)
	}

	method := req.Method
	if method == "" {
		method = envConfig.DefaultPayoutMethod
	}

	withdrawal := &models.WithdrawalRequest{
		ID:            uuid.New().String(),
		EnvironmentID: req.EnvironmentID,
		RequesterID:   req.RequesterID,
		Amount:        total,
		Currency:      currency,
		Status:        models.WithdrawalStatusPending,
		Method:        method,
		MethodDetails: req.MethodDetails,
		CommissionIDs: commissionIDs,
	}

	if err := uc.withdrawalRepo.CreateWithdrawal(ctx, withdrawal, commissionIDs); err != nil {
		return nil, err
	}

	logger.Info("withdrawal requested",
		logger.String("withdrawal_id", withdrawal.ID),
		logger.String("environment_id", withdrawal.EnvironmentID),
		logger.Float64("requested", req.Amount),
		logger.Float64("aggregated", total),
		logger.Int("commissions", len(commissionIDs)))

	uc.publishWithdrawalEvent(ctx, withdrawal, "")
	return withdrawal, nil
}

// aggregateCommissions walks the approved commissions oldest first and links
// them while the running sum stays within the requested amount, stopping at
// the first one that would overflow. The resulting total never exceeds the
// request.
func aggregateCommissions(candidates []models.Commission, requested float64) (ids []string, total float64, currency string) {
	for _, c := range candidates {
		next := utils.RoundMoney(total + c.PayoutAmount)
		if next > requested {
			break
		}
		ids = append(ids, c.ID)
		total = next
		currency = c.Currency
	}
	return ids, total, currency
}

// ApproveWithdrawal marks a pending withdrawal approved for processing
func (uc *WithdrawalUC) ApproveWithdrawal(ctx context.Context, id, approver string) error {
	if approver == "" {
		return payerr.New(payerr.KindValidation, "approver is required")
	}
	return uc.withdrawalRepo.ApproveWithdrawal(ctx, id, approver)
}

// RejectWithdrawal rejects a withdrawal and releases its commissions back to
// the available pool
func (uc *WithdrawalUC) RejectWithdrawal(ctx context.Context, id, reason string) error {
	if reason == "" {
		return payerr.New(payerr.KindValidation, "a rejection reason is required")
	}

	if err := uc.withdrawalRepo.RejectWithdrawal(ctx, id, reason); err != nil {
		return err
	}

	withdrawal, err := uc.withdrawalRepo.GetWithdrawalByID(ctx, id)
	if err != nil {
		logger.Warn("rejected withdrawal could not be reloaded for its event",
			logger.String("withdrawal_id", id),
			logger.Err(err))
		return nil
	}

	uc.publishWithdrawalEvent(ctx, withdrawal, reason)
	return nil
}

// ProcessWithdrawal completes an approved withdrawal: the request is marked
// completed and every linked commission is marked paid with the payout
// reference, atomically
func (uc *WithdrawalUC) ProcessWithdrawal(ctx context.Context, id, processor, paymentReference string) error {
	if processor == "" {
		return payerr.New(payerr.KindValidation, "processor is required")
	}
	if paymentReference == "" {
		return payerr.New(payerr.KindValidation, "payment reference is required")
	}

	if err := uc.withdrawalRepo.CompleteWithdrawal(ctx, id, processor, paymentReference); err != nil {
		return err
	}

	withdrawal, err := uc.withdrawalRepo.GetWithdrawalByID(ctx, id)
	if err != nil {
		logger.Warn("completed withdrawal could not be reloaded for its event",
			logger.String("withdrawal_id", id),
			logger.Err(err))
		return nil
	}

	uc.publishWithdrawalEvent(ctx, withdrawal, "")
	return nil
}

// GetWithdrawal returns a withdrawal with its linked commission ids
func (uc *WithdrawalUC) GetWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequest, error) {
	return uc.withdrawalRepo.GetWithdrawalByID(ctx, id)
}

// ListWithdrawals returns an environment's withdrawal requests, newest first
func (uc *WithdrawalUC) ListWithdrawals(ctx context.Context, environmentID string, limit, offset int) ([]models.WithdrawalRequest, error) {
	return uc.withdrawalRepo.ListWithdrawals(ctx, environmentID, limit, offset)
}

func (uc *WithdrawalUC) publishWithdrawalEvent(ctx context.Context, w *models.WithdrawalRequest, reason string) {
	err := uc.gw.PublishWithdrawalEvent(ctx, &models.WithdrawalEvent{
		WithdrawalID:  w.ID,
		EnvironmentID: w.EnvironmentID,
		RequesterID:   w.RequesterID,
		Amount:        w.Amount,
		Currency:      w.Currency,
		Status:        string(w.Status),
		Reason:        reason,
		Timestamp:     time.Now(),
	})
	if err != nil {
		logger.Warn("failed to publish withdrawal event",
			logger.String("withdrawal_id", w.ID),
			logger.String("status", string(w.Status)),
			logger.Err(err))
	}
}
