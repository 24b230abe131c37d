package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kevin997/csl-payments/internal/pkg/gateway"
	"github.com/kevin997/csl-payments/internal/pkg/logger"
	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
	"github.com/kevin997/csl-payments/internal/utils"
)

// CreatePayment turns a business intent into a provider charge while
// preserving exactly-once semantics for money movement under retries
func (uc *PaymentUC) CreatePayment(ctx context.Context, intent *models.PaymentIntent) (*models.CheckoutResult, error) {
	if err := validateIntent(intent); err != nil {
		return nil, err
	}

	envConfig, err := uc.configCache.GetEnvironmentConfig(ctx, intent.EnvironmentID)
	if err != nil {
		return nil, err
	}
	if !envConfig.IsActive {
		return nil, payerr.Newf(payerr.KindConfiguration, "payments are disabled for environment %s", intent.EnvironmentID)
	}

	gw, err := uc.resolveGateway(ctx, envConfig, intent.GatewayCode)
	if err != nil {
		return nil, err
	}

	tax, err := uc.gw.CalculateTax(ctx, intent.Amount-intent.DiscountAmount, intent.EnvironmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tax: %w", err)
	}

	payment, err := uc.preparePayment(ctx, intent, tax, envConfig.CommissionRate)
	if err != nil {
		return nil, err
	}

	txn, err := uc.prepareTransaction(ctx, intent, payment, tax)
	if err != nil {
		return nil, err
	}

	uc.applyCurrencyConversion(ctx, txn, gw.GetConfig())

	callCtx, cancel := context.WithTimeout(ctx, uc.gatewayTimeout())
	defer cancel()

	result, err := gw.CreatePayment(callCtx, txn, gateway.CreateParams{
		ReturnURL:   intent.ReturnURL,
		CancelURL:   intent.CancelURL,
		PhoneNumber: intent.PhoneNumber,
		CountryCode: intent.CountryCode,
	})
	if err != nil {
		return nil, uc.recordChargeFailure(ctx, txn, err)
	}

	txn.Status = models.TransactionStatusProcessing
	if err := uc.txnRepo.UpdateTransactionOutcome(ctx, txn.Reference, txn.Status,
		result.GatewayReference, result.GatewayStatus, result.RawResponse); err != nil {
		return nil, err
	}

	payment.Status = models.TransactionStatusProcessing
	payment.TransactionReference = txn.Reference
	payment.GatewayStatus = result.GatewayStatus
	payment.GatewayResponse = result.RawResponse
	if err := uc.paymentRepo.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}

	return &models.CheckoutResult{
		Success:              true,
		Message:              result.Message,
		TransactionReference: txn.Reference,
		CheckoutURL:          result.CheckoutURL,
		ClientSecret:         result.ClientSecret,
		Links:                result.Links,
	}, nil
}

// CreateInvoicePaymentLink produces a provider-hosted payment URL for an
// invoice by running it through the same orchestration path
func (uc *PaymentUC) CreateInvoicePaymentLink(ctx context.Context, invoice *models.Invoice) (string, error) {
	if invoice.ID == "" {
		return "", payerr.New(payerr.KindValidation, "invoice id is required")
	}

	result, err := uc.CreatePayment(ctx, &models.PaymentIntent{
		EnvironmentID: invoice.EnvironmentID,
		CustomerID:    invoice.CustomerID,
		OrderID:       "INV-" + invoice.ID,
		Amount:        invoice.Amount,
		Currency:      invoice.Currency,
		GatewayCode:   invoice.GatewayCode,
		Description:   invoice.Description,
	})
	if err != nil {
		return "", err
	}

	if result.CheckoutURL == "" {
		return "", payerr.Newf(payerr.KindConfiguration,
			"gateway %s does not produce a hosted payment link", invoice.GatewayCode)
	}

	return result.CheckoutURL, nil
}

// ListGatewayConfigs returns the capability descriptors of all registered
// providers
func (uc *PaymentUC) ListGatewayConfigs() []gateway.Capability {
	codes := uc.registry.Codes()
	configs := make([]gateway.Capability, 0, len(codes))

	for _, code := range codes {
		// descriptors are static per provider, so throwaway credentials are
		// enough to read them
		gw, err := uc.registry.New(code, placeholderCreds())
		if err != nil {
			continue
		}
		configs = append(configs, gw.GetConfig())
	}

	return configs
}

func placeholderCreds() models.GatewayCredentials {
	return models.GatewayCredentials{
		PublicKey: "descriptor",
		SecretKey: "descriptor:descriptor",
	}
}

func validateIntent(intent *models.PaymentIntent) error {
	if intent.EnvironmentID == "" {
		return payerr.New(payerr.KindValidation, "environment id is required")
	}
	if intent.CustomerID == "" {
		return payerr.New(payerr.KindValidation, "customer id is required")
	}
	if intent.Amount <= 0 {
		return payerr.New(payerr.KindValidation, "amount must be positive")
	}
	if intent.DiscountAmount < 0 || intent.DiscountAmount > intent.Amount {
		return payerr.New(payerr.KindValidation, "discount must be between zero and the amount")
	}
	if intent.Currency == "" {
		return payerr.New(payerr.KindValidation, "currency is required")
	}
	if intent.GatewayCode == "" {
		return payerr.New(payerr.KindValidation, "gateway code is required")
	}
	return nil
}

// resolveGateway produces an initialized adapter for the environment's
// credentials: the platform's shared credentials when the environment routes
// through centralized gateways, its own stored row otherwise
func (uc *PaymentUC) resolveGateway(ctx context.Context, envConfig *models.EnvironmentPaymentConfig, gatewayCode string) (gateway.PaymentGateway, error) {
	if !uc.registry.Supported(gatewayCode) {
		return nil, payerr.Newf(payerr.KindConfiguration, "unsupported payment gateway: %s", gatewayCode)
	}

	var creds models.GatewayCredentials
	if envConfig.UseCentralizedGateways {
		shared, ok := uc.cfg.Payment.CentralizedCreds[gatewayCode]
		if !ok {
			return nil, payerr.Newf(payerr.KindConfiguration,
				"no centralized credentials configured for gateway %s", gatewayCode)
		}
		creds = shared
	} else {
		stored, err := uc.envRepo.GetGatewayCredentials(ctx, envConfig.EnvironmentID, gatewayCode)
		if err != nil {
			return nil, err
		}
		creds = *stored
	}

	return uc.registry.New(gatewayCode, creds)
}

// preparePayment creates the payment record for the intent, or reuses the
// open one already attached to the same subscription or order. The fee
// breakdown is snapshotted at the environment's current rate.
func (uc *PaymentUC) preparePayment(ctx context.Context, intent *models.PaymentIntent, tax *models.TaxResult, feeRate float64) (*models.Payment, error) {
	total := utils.RoundMoney(intent.Amount - intent.DiscountAmount + tax.TaxAmount)
	fee, _ := utils.SplitCommission(total, feeRate)

	var payment *models.Payment
	if intent.SubscriptionID != "" || intent.OrderID != "" {
		existing, err := uc.paymentRepo.GetPaymentForIntent(ctx, intent.EnvironmentID, intent.SubscriptionID, intent.OrderID)
		if err != nil && payerr.KindOf(err) != payerr.KindNotFound {
			return nil, err
		}
		if existing != nil && !existing.Status.IsTerminal() {
			payment = existing
		}
	}

	if payment == nil {
		payment = &models.Payment{
			ID:             uuid.New().String(),
			EnvironmentID:  intent.EnvironmentID,
			SubscriberID:   intent.CustomerID,
			SubscriptionID: intent.SubscriptionID,
			OrderID:        intent.OrderID,
			Status:         models.TransactionStatusPending,
		}
		payment.Amount = intent.Amount
		payment.FeeAmount = fee
		payment.TaxAmount = tax.TaxAmount
		payment.TaxRate = tax.TaxRate
		payment.TotalAmount = total
		payment.Currency = intent.Currency
		payment.PaymentMethod = intent.GatewayCode

		if err := uc.paymentRepo.CreatePayment(ctx, payment); err != nil {
			return nil, err
		}
		return payment, nil
	}

	payment.Amount = intent.Amount
	payment.FeeAmount = fee
	payment.TaxAmount = tax.TaxAmount
	payment.TaxRate = tax.TaxRate
	payment.TotalAmount = total
	payment.Currency = intent.Currency
	payment.PaymentMethod = intent.GatewayCode

	return payment, nil
}

// prepareTransaction applies the reuse rule: a pending or cancelled
// transaction already linked to the payment is reset and reused under the
// same reference; a terminal one is left untouched and a fresh reference is
// created. A fresh reference is persisted onto the payment before the
// provider is called, so a retry after a gateway failure finds the pending
// transaction instead of minting a second charge attempt.
func (uc *PaymentUC) prepareTransaction(ctx context.Context, intent *models.PaymentIntent, payment *models.Payment, tax *models.TaxResult) (*models.Transaction, error) {
	if payment.TransactionReference != "" {
		existing, err := uc.txnRepo.GetTransactionByReference(ctx, payment.TransactionReference)
		if err != nil && payerr.KindOf(err) != payerr.KindNotFound {
			return nil, err
		}

		if existing != nil && existing.Status.IsReusable() {
			existing.CustomerID = intent.CustomerID
			existing.OrderID = intent.OrderID
			existing.Description = intent.Description
			existing.Amount = intent.Amount
			existing.FeeAmount = payment.FeeAmount
			existing.TaxAmount = tax.TaxAmount
			existing.TaxRate = tax.TaxRate
			existing.DiscountAmount = intent.DiscountAmount
			existing.TotalAmount = payment.TotalAmount
			existing.Currency = intent.Currency
			existing.PaymentMethod = intent.GatewayCode
			existing.GatewayCode = intent.GatewayCode
			existing.Status = models.TransactionStatusPending
			existing.GatewayReference = ""
			existing.GatewayStatus = ""
			existing.GatewayResponse = nil
			existing.Conversion = nil

			if err := uc.txnRepo.UpdateTransaction(ctx, existing); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	txn := &models.Transaction{
		ID:             uuid.New().String(),
		Reference:      newTransactionReference(),
		EnvironmentID:  intent.EnvironmentID,
		CustomerID:     intent.CustomerID,
		OrderID:        intent.OrderID,
		Description:    intent.Description,
		Amount:         intent.Amount,
		FeeAmount:      payment.FeeAmount,
		TaxAmount:      tax.TaxAmount,
		TaxRate:        tax.TaxRate,
		DiscountAmount: intent.DiscountAmount,
		TotalAmount:    payment.TotalAmount,
		Currency:       intent.Currency,
		Status:         models.TransactionStatusPending,
		PaymentMethod:  intent.GatewayCode,
		GatewayCode:    intent.GatewayCode,
	}

	if err := uc.txnRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	payment.TransactionReference = txn.Reference
	if err := uc.paymentRepo.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return txn, nil
}

func newTransactionReference() string {
	return "TXN-" + uuid.New().String()
}

// applyCurrencyConversion converts the total when the provider settles in a
// fixed currency. Conversion failure falls back to the original amount; that
// availability-over-correctness choice is logged at warning level so
// operators see it.
func (uc *PaymentUC) applyCurrencyConversion(ctx context.Context, txn *models.Transaction, capability gateway.Capability) {
	settlement := capability.SettlementCurrency
	if settlement == "" || settlement == txn.Currency {
		return
	}

	snapshot, err := uc.gw.ConvertCurrency(ctx, txn.TotalAmount, txn.Currency, settlement)
	if err != nil {
		logger.Warn("currency conversion failed, charging original amount",
			logger.String("reference", txn.Reference),
			logger.String("from", txn.Currency),
			logger.String("to", settlement),
			logger.Err(err))
		return
	}

	txn.Conversion = snapshot
	if err := uc.txnRepo.UpdateTransaction(ctx, txn); err != nil {
		logger.Warn("failed to persist conversion snapshot",
			logger.String("reference", txn.Reference),
			logger.Err(err))
	}
}

// recordChargeFailure persists the adapter failure. Retryable failures leave
// the transaction pending so the reuse rule applies on the next attempt;
// explicit provider rejections are terminal.
func (uc *PaymentUC) recordChargeFailure(ctx context.Context, txn *models.Transaction, gatewayErr error) error {
	if payerr.Retryable(gatewayErr) {
		logger.Warn("gateway unavailable, transaction left pending for retry",
			logger.String("reference", txn.Reference),
			logger.String("gateway", txn.GatewayCode),
			logger.Err(gatewayErr))
		return gatewayErr
	}

	moved, err := uc.txnRepo.TransitionStatus(ctx, txn.Reference,
		[]models.TransactionStatus{models.TransactionStatusPending, models.TransactionStatusProcessing},
		models.TransactionStatusFailed, "rejected")
	if err != nil {
		logger.Error("failed to record charge failure",
			logger.String("reference", txn.Reference),
			logger.Err(err))
	}
	if moved {
		if err := uc.paymentRepo.UpdatePaymentByTransactionRef(ctx, txn.Reference,
			models.TransactionStatusFailed, "rejected"); err != nil {
			logger.Error("failed to mirror charge failure onto payment",
				logger.String("reference", txn.Reference),
				logger.Err(err))
		}
	}

	return gatewayErr
}
