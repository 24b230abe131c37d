package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kevin997/csl-payments/internal/pkg/gateway"
	"github.com/kevin997/csl-payments/internal/pkg/logger"
	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
	"github.com/kevin997/csl-payments/internal/utils"
)

// HandleProviderWebhook verifies and applies a provider notification. The
// environment is part of the webhook URL, so credentials resolve before any
// payload is trusted; an unverifiable signature returns an error with zero
// state changes.
func (uc *PaymentUC) HandleProviderWebhook(ctx context.Context, providerCode, environmentID string, payload []byte, signatureHeader string) error {
	envConfig, err := uc.configCache.GetEnvironmentConfig(ctx, environmentID)
	if err != nil {
		return err
	}

	gw, err := uc.resolveGateway(ctx, envConfig, providerCode)
	if err != nil {
		return err
	}

	event, err := gw.ParseWebhook(ctx, payload, signatureHeader)
	if err != nil {
		return err
	}

	txn, err := uc.findWebhookTransaction(ctx, event)
	if err != nil {
		return err
	}

	if txn.EnvironmentID != environmentID {
		return payerr.Newf(payerr.KindNotFound,
			"transaction %s does not belong to environment %s", txn.Reference, environmentID)
	}

	return uc.applyStatusEvent(ctx, txn, event.Status, event.GatewayStatus)
}

func (uc *PaymentUC) findWebhookTransaction(ctx context.Context, event *gateway.WebhookEvent) (*models.Transaction, error) {
	if event.Reference != "" {
		txn, err := uc.txnRepo.GetTransactionByReference(ctx, event.Reference)
		if err == nil {
			return txn, nil
		}
		if payerr.KindOf(err) != payerr.KindNotFound {
			return nil, err
		}
	}

	if event.GatewayReference == "" {
		return nil, payerr.New(payerr.KindNotFound, "webhook carries no usable transaction reference")
	}
	return uc.txnRepo.GetTransactionByGatewayReference(ctx, event.GatewayReference)
}

// VerifyPayment polls the provider for the current charge status and applies
// it through the same optimistic transition as webhooks, so the two paths
// race safely
func (uc *PaymentUC) VerifyPayment(ctx context.Context, reference string) (models.TransactionStatus, error) {
	txn, err := uc.txnRepo.GetTransactionByReference(ctx, reference)
	if err != nil {
		return "", err
	}

	if txn.Status.IsTerminal() {
		return txn.Status, nil
	}
	if txn.GatewayReference == "" {
		return txn.Status, nil
	}

	envConfig, err := uc.configCache.GetEnvironmentConfig(ctx, txn.EnvironmentID)
	if err != nil {
		return "", err
	}

	gw, err := uc.resolveGateway(ctx, envConfig, txn.GatewayCode)
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.gatewayTimeout())
	defer cancel()

	result, err := gw.VerifyPayment(callCtx, txn.GatewayReference)
	if err != nil {
		return "", err
	}

	if err := uc.applyStatusEvent(ctx, txn, result.Status, result.GatewayStatus); err != nil {
		return "", err
	}

	fresh, err := uc.txnRepo.GetTransactionByReference(ctx, reference)
	if err != nil {
		return "", err
	}
	return fresh.Status, nil
}

// applyStatusEvent moves the transaction toward the provider-reported status.
// The optimistic transition makes duplicate deliveries no-ops: a repeated
// event finds the transaction already moved and changes nothing.
func (uc *PaymentUC) applyStatusEvent(ctx context.Context, txn *models.Transaction, status models.TransactionStatus, gatewayStatus string) error {
	switch status {
	case models.TransactionStatusSucceeded:
		moved, err := uc.txnRepo.TransitionStatus(ctx, txn.Reference,
			[]models.TransactionStatus{models.TransactionStatusPending, models.TransactionStatusProcessing},
			models.TransactionStatusSucceeded, gatewayStatus)
		if err != nil {
			return err
		}
		if !moved {
			logger.Info("duplicate success event ignored",
				logger.String("reference", txn.Reference),
				logger.String("gateway_status", gatewayStatus))
			return nil
		}

		if err := uc.paymentRepo.UpdatePaymentByTransactionRef(ctx, txn.Reference,
			models.TransactionStatusSucceeded, gatewayStatus); err != nil {
			return err
		}

		if err := uc.deriveCommission(ctx, txn); err != nil {
			return err
		}

		uc.publishPaymentEvent(ctx, txn, models.TransactionStatusSucceeded)
		return nil

	case models.TransactionStatusFailed:
		moved, err := uc.txnRepo.TransitionStatus(ctx, txn.Reference,
			[]models.TransactionStatus{models.TransactionStatusPending, models.TransactionStatusProcessing},
			models.TransactionStatusFailed, gatewayStatus)
		if err != nil {
			return err
		}
		if !moved {
			logger.Info("duplicate failure event ignored",
				logger.String("reference", txn.Reference),
				logger.String("gateway_status", gatewayStatus))
			return nil
		}

		if err := uc.paymentRepo.UpdatePaymentByTransactionRef(ctx, txn.Reference,
			models.TransactionStatusFailed, gatewayStatus); err != nil {
			return err
		}

		uc.publishPaymentEvent(ctx, txn, models.TransactionStatusFailed)
		return nil

	case models.TransactionStatusCancelled:
		_, err := uc.txnRepo.TransitionStatus(ctx, txn.Reference,
			[]models.TransactionStatus{models.TransactionStatusPending, models.TransactionStatusProcessing},
			models.TransactionStatusCancelled, gatewayStatus)
		return err

	default:
		// pending and processing notifications carry no transition
		logger.Debug("non-terminal provider event",
			logger.String("reference", txn.Reference),
			logger.String("gateway_status", gatewayStatus))
		return nil
	}
}

// deriveCommission books the commission split for a succeeded transaction.
// The per-transaction uniqueness check makes derivation idempotent even if
// two success paths slip past the status guard.
func (uc *PaymentUC) deriveCommission(ctx context.Context, txn *models.Transaction) error {
	existing, err := uc.commissionRepo.GetCommissionByTransactionID(ctx, txn.ID)
	if err != nil && payerr.KindOf(err) != payerr.KindNotFound {
		return err
	}
	if existing != nil {
		return nil
	}

	envConfig, err := uc.configCache.GetEnvironmentConfig(ctx, txn.EnvironmentID)
	if err != nil {
		return err
	}

	gross := txn.TotalAmount
	fee, payout := utils.SplitCommission(gross, envConfig.CommissionRate)

	commission := &models.Commission{
		ID:            uuid.New().String(),
		EnvironmentID: txn.EnvironmentID,
		TransactionID: txn.ID,
		OrderID:       txn.OrderID,
		GrossAmount:   gross,
		FeeRate:       envConfig.CommissionRate,
		FeeAmount:     fee,
		PayoutAmount:  payout,
		Currency:      txn.Currency,
		Status:        models.CommissionStatusPending,
	}

	if err := uc.commissionRepo.CreateCommission(ctx, commission); err != nil {
		return err
	}

	if err := uc.gw.PublishCommissionEvent(ctx, &models.CommissionEvent{
		CommissionID:  commission.ID,
		EnvironmentID: commission.EnvironmentID,
		TransactionID: commission.TransactionID,
		GrossAmount:   commission.GrossAmount,
		FeeAmount:     commission.FeeAmount,
		PayoutAmount:  commission.PayoutAmount,
		Status:        string(commission.Status),
		Timestamp:     time.Now(),
	}); err != nil {
		logger.Warn("failed to publish commission event",
			logger.String("commission_id", commission.ID),
			logger.Err(err))
	}

	return nil
}

func (uc *PaymentUC) publishPaymentEvent(ctx context.Context, txn *models.Transaction, status models.TransactionStatus) {
	err := uc.gw.PublishPaymentEvent(ctx, &models.PaymentEvent{
		TransactionReference: txn.Reference,
		EnvironmentID:        txn.EnvironmentID,
		CustomerID:           txn.CustomerID,
		Amount:               txn.TotalAmount,
		Currency:             txn.Currency,
		Status:               string(status),
		GatewayCode:          txn.GatewayCode,
		Timestamp:            time.Now(),
	})
	if err != nil {
		logger.Warn("failed to publish payment event",
			logger.String("reference", txn.Reference),
			logger.Err(err))
	}
}

// Refund issues a full (amount == 0) or partial refund for a succeeded
// transaction. The transaction record keeps its status; refunds are tracked
// on the provider side and surfaced through the returned reference.
func (uc *PaymentUC) Refund(ctx context.Context, reference string, amount float64, reason string) (*models.RefundResult, error) {
	if amount < 0 {
		return nil, payerr.New(payerr.KindValidation, "refund amount cannot be negative")
	}

	txn, err := uc.txnRepo.GetTransactionByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if txn.Status != models.TransactionStatusSucceeded {
		return nil, payerr.Newf(payerr.KindConsistency,
			"transaction %s is %s, only succeeded transactions can be refunded", reference, txn.Status)
	}

	chargeAmount, _ := gateway.ChargeAmount(txn)
	if amount > chargeAmount {
		return nil, payerr.Newf(payerr.KindValidation,
			"refund amount %.2f exceeds charged amount %.2f", amount, chargeAmount)
	}

	envConfig, err := uc.configCache.GetEnvironmentConfig(ctx, txn.EnvironmentID)
	if err != nil {
		return nil, err
	}

	gw, err := uc.resolveGateway(ctx, envConfig, txn.GatewayCode)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.gatewayTimeout())
	defer cancel()

	outcome, err := gw.ProcessRefund(callCtx, txn, amount, reason)
	if err != nil {
		return nil, err
	}

	logger.Info("refund processed",
		logger.String("reference", reference),
		logger.String("refund_reference", outcome.RefundReference),
		logger.Float64("amount", amount))

	return &models.RefundResult{
		Success:         outcome.Success,
		RefundReference: outcome.RefundReference,
		Message:         "refund processed",
	}, nil
}

// CancelTransaction cancels a pending or processing transaction. Cancelled
// transactions stay reusable for a later attempt.
func (uc *PaymentUC) CancelTransaction(ctx context.Context, reference string) error {
	txn, err := uc.txnRepo.GetTransactionByReference(ctx, reference)
	if err != nil {
		return err
	}

	if txn.Status.IsTerminal() {
		return payerr.Newf(payerr.KindConsistency,
			"transaction %s is already %s", reference, txn.Status)
	}

	moved, err := uc.txnRepo.TransitionStatus(ctx, reference,
		[]models.TransactionStatus{models.TransactionStatusPending, models.TransactionStatusProcessing},
		models.TransactionStatusCancelled, "cancelled")
	if err != nil {
		return err
	}
	if !moved {
		return payerr.Newf(payerr.KindConsistency, "transaction %s could not be cancelled", reference)
	}

	return uc.paymentRepo.UpdatePaymentByTransactionRef(ctx, reference,
		models.TransactionStatusCancelled, "cancelled")
}

// GetTransaction returns the transaction for a reference
func (uc *PaymentUC) GetTransaction(ctx context.Context, reference string) (*models.Transaction, error) {
	return uc.txnRepo.GetTransactionByReference(ctx, reference)
}

// ListPayments returns an environment's payments, newest first
func (uc *PaymentUC) ListPayments(ctx context.Context, environmentID string, limit, offset int) ([]models.Payment, error) {
	return uc.paymentRepo.ListPayments(ctx, environmentID, limit, offset)
}
