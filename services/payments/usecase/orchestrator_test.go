package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin997/csl-payments/internal/pkg/gateway"
	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
	"github.com/kevin997/csl-payments/services/payments/mocks"
)

const testGatewayCode = "stripe"

// stubGateway stands in for a provider adapter so orchestration tests never
// touch the network
type stubGateway struct {
	capability    gateway.Capability
	createResult  *gateway.CreateResult
	createErr     error
	verifyResult  *gateway.VerifyResult
	verifyErr     error
	webhookEvent  *gateway.WebhookEvent
	webhookErr    error
	refundOutcome *gateway.RefundOutcome
	refundErr     error

	lastCreateTxn *models.Transaction
}

func (s *stubGateway) Code() string { return testGatewayCode }

func (s *stubGateway) GetConfig() gateway.Capability { return s.capability }

func (s *stubGateway) CreatePayment(ctx context.Context, txn *models.Transaction, params gateway.CreateParams) (*gateway.CreateResult, error) {
	s.lastCreateTxn = txn
	return s.createResult, s.createErr
}

func (s *stubGateway) VerifyPayment(ctx context.Context, gatewayReference string) (*gateway.VerifyResult, error) {
	return s.verifyResult, s.verifyErr
}

func (s *stubGateway) ProcessRefund(ctx context.Context, txn *models.Transaction, amount float64, reason string) (*gateway.RefundOutcome, error) {
	return s.refundOutcome, s.refundErr
}

func (s *stubGateway) ParseWebhook(ctx context.Context, payload []byte, signatureHeader string) (*gateway.WebhookEvent, error) {
	return s.webhookEvent, s.webhookErr
}

type testEnv struct {
	uc          *PaymentUC
	txnRepo     *mocks.MockTransactionRepo
	paymentRepo *mocks.MockPaymentRepo
	commRepo    *mocks.MockCommissionRepo
	envRepo     *mocks.MockEnvConfigRepo
	gw          *mocks.MockPaymentGW
	stub        *stubGateway
}

func newTestEnv(ctrl *gomock.Controller, stub *stubGateway) *testEnv {
	txnRepo := mocks.NewMockTransactionRepo(ctrl)
	paymentRepo := mocks.NewMockPaymentRepo(ctrl)
	commRepo := mocks.NewMockCommissionRepo(ctrl)
	envRepo := mocks.NewMockEnvConfigRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)

	registry := gateway.NewRegistry(time.Second)
	registry.Register(testGatewayCode, func(creds models.GatewayCredentials, client *http.Client) (gateway.PaymentGateway, error) {
		return stub, nil
	})

	cfg := &models.Config{
		Payment: models.PaymentConfig{
			GatewayTimeout: 5,
			CentralizedCreds: map[string]models.GatewayCredentials{
				testGatewayCode: {SecretKey: "sk_test", WebhookSecret: "whsec_test"},
			},
		},
	}

	configCache := NewConfigCache(envRepo, nil, time.Minute)
	uc := NewPaymentUC(cfg, txnRepo, paymentRepo, commRepo, envRepo, registry, gw, configCache)

	return &testEnv{
		uc:          uc,
		txnRepo:     txnRepo,
		paymentRepo: paymentRepo,
		commRepo:    commRepo,
		envRepo:     envRepo,
		gw:          gw,
		stub:        stub,
	}
}

func activeEnvConfig(environmentID string) *models.EnvironmentPaymentConfig {
	config := models.DefaultEnvironmentPaymentConfig(environmentID)
	return config
}

func testIntent() *models.PaymentIntent {
	return &models.PaymentIntent{
		EnvironmentID: "env-1",
		CustomerID:    "cust-1",
		OrderID:       "order-1",
		Amount:        10000,
		Currency:      "USD",
		GatewayCode:   testGatewayCode,
	}
}

func TestPaymentUC_CreatePayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stub := &stubGateway{
		capability: gateway.Capability{Code: testGatewayCode, Flow: gateway.FlowClientSide},
		createResult: &gateway.CreateResult{
			Success:          true,
			ClientSecret:     "pi_secret",
			GatewayReference: "pi_123",
			GatewayStatus:    "requires_payment_method",
			RawResponse:      models.JSONMap{"id": "pi_123"},
		},
	}
	env := newTestEnv(ctrl, stub)

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	env.gw.EXPECT().
		CalculateTax(gomock.Any(), 10000.0, "env-1").
		Return(&models.TaxResult{TaxAmount: 1925, TaxRate: 0.1925}, nil)

	env.paymentRepo.EXPECT().
		GetPaymentForIntent(gomock.Any(), "env-1", "", "order-1").
		Return(nil, payerr.New(payerr.KindNotFound, "payment not found"))

	env.paymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) error {
			assert.Equal(t, 11925.0, p.TotalAmount)
			assert.Equal(t, 2027.25, p.FeeAmount)
			assert.Equal(t, models.TransactionStatusPending, p.Status)
			return nil
		})

	env.txnRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			assert.Contains(t, txn.Reference, "TXN-")
			assert.Equal(t, 11925.0, txn.TotalAmount)
			assert.Equal(t, 2027.25, txn.FeeAmount)
			return nil
		})

	env.txnRepo.EXPECT().
		UpdateTransactionOutcome(gomock.Any(), gomock.Any(), models.TransactionStatusProcessing, "pi_123", "requires_payment_method", gomock.Any()).
		Return(nil)

	env.paymentRepo.EXPECT().
		UpdatePayment(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	result, err := env.uc.CreatePayment(context.Background(), testIntent())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "pi_secret", result.ClientSecret)
	assert.NotEmpty(t, result.TransactionReference)
}

func TestPaymentUC_CreatePayment_ReusesPendingTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stub := &stubGateway{
		capability:   gateway.Capability{Code: testGatewayCode},
		createResult: &gateway.CreateResult{Success: true, GatewayReference: "pi_456", GatewayStatus: "created"},
	}
	env := newTestEnv(ctrl, stub)

	existingPayment := &models.Payment{
		ID:                   "pay-1",
		EnvironmentID:        "env-1",
		OrderID:              "order-1",
		Status:               models.TransactionStatusPending,
		TransactionReference: "TXN-old",
	}
	existingTxn := &models.Transaction{
		ID:        "txn-1",
		Reference: "TXN-old",
		Status:    models.TransactionStatusPending,
	}

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	env.gw.EXPECT().
		CalculateTax(gomock.Any(), 10000.0, "env-1").
		Return(&models.TaxResult{}, nil)

	env.paymentRepo.EXPECT().
		GetPaymentForIntent(gomock.Any(), "env-1", "", "order-1").
		Return(existingPayment, nil)

	env.txnRepo.EXPECT().
		GetTransactionByReference(gomock.Any(), "TXN-old").
		Return(existingTxn, nil)

	env.txnRepo.EXPECT().
		UpdateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			assert.Equal(t, "TXN-old", txn.Reference)
			assert.Equal(t, models.TransactionStatusPending, txn.Status)
			assert.Equal(t, 1700.0, txn.FeeAmount)
			assert.Empty(t, txn.GatewayReference)
			return nil
		})

	env.txnRepo.EXPECT().
		UpdateTransactionOutcome(gomock.Any(), "TXN-old", models.TransactionStatusProcessing, "pi_456", "created", gomock.Any()).
		Return(nil)

	env.paymentRepo.EXPECT().
		UpdatePayment(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := env.uc.CreatePayment(context.Background(), testIntent())

	require.NoError(t, err)
	assert.Equal(t, "TXN-old", result.TransactionReference)
}

func TestPaymentUC_CreatePayment_TerminalTransactionGetsFreshReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stub := &stubGateway{
		capability:   gateway.Capability{Code: testGatewayCode},
		createResult: &gateway.CreateResult{Success: true, GatewayReference: "pi_789", GatewayStatus: "created"},
	}
	env := newTestEnv(ctrl, stub)

	existingPayment := &models.Payment{
		ID:                   "pay-1",
		EnvironmentID:        "env-1",
		OrderID:              "order-1",
		Status:               models.TransactionStatusFailed,
		TransactionReference: "TXN-failed",
	}
	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	env.gw.EXPECT().
		CalculateTax(gomock.Any(), 10000.0, "env-1").
		Return(&models.TaxResult{}, nil)

	env.paymentRepo.EXPECT().
		GetPaymentForIntent(gomock.Any(), "env-1", "", "order-1").
		Return(existingPayment, nil)

	// the failed payment record is terminal so a fresh payment is created too
	env.paymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(nil)

	env.txnRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			assert.NotEqual(t, "TXN-failed", txn.Reference)
			return nil
		})

	env.txnRepo.EXPECT().
		UpdateTransactionOutcome(gomock.Any(), gomock.Any(), models.TransactionStatusProcessing, "pi_789", "created", gomock.Any()).
		Return(nil)

	env.paymentRepo.EXPECT().
		UpdatePayment(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	result, err := env.uc.CreatePayment(context.Background(), testIntent())

	require.NoError(t, err)
	assert.NotEqual(t, "TXN-failed", result.TransactionReference)
}

func TestPaymentUC_CreatePayment_ProviderRejectionFailsTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stub := &stubGateway{
		capability: gateway.Capability{Code: testGatewayCode},
		createErr:  payerr.New(payerr.KindProviderRejected, "card declined"),
	}
	env := newTestEnv(ctrl, stub)

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	env.gw.EXPECT().
		CalculateTax(gomock.Any(), 10000.0, "env-1").
		Return(&models.TaxResult{}, nil)

	env.paymentRepo.EXPECT().
		GetPaymentForIntent(gomock.Any(), "env-1", "", "order-1").
		Return(nil, payerr.New(payerr.KindNotFound, "payment not found"))

	env.paymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(nil)

	env.txnRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	env.paymentRepo.EXPECT().
		UpdatePayment(gomock.Any(), gomock.Any()).
		Return(nil)

	env.txnRepo.EXPECT().
		TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any(), models.TransactionStatusFailed, "rejected").
		Return(true, nil)

	env.paymentRepo.EXPECT().
		UpdatePaymentByTransactionRef(gomock.Any(), gomock.Any(), models.TransactionStatusFailed, "rejected").
		Return(nil)

	_, err := env.uc.CreatePayment(context.Background(), testIntent())

	require.Error(t, err)
	assert.Equal(t, payerr.KindProviderRejected, payerr.KindOf(err))
}

func TestPaymentUC_CreatePayment_UnavailableProviderLeavesTransactionPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stub := &stubGateway{
		capability: gateway.Capability{Code: testGatewayCode},
		createErr:  payerr.New(payerr.KindProviderUnavailable, "gateway timeout"),
	}
	env := newTestEnv(ctrl, stub)

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	env.gw.EXPECT().
		CalculateTax(gomock.Any(), 10000.0, "env-1").
		Return(&models.TaxResult{}, nil)

	env.paymentRepo.EXPECT().
		GetPaymentForIntent(gomock.Any(), "env-1", "", "order-1").
		Return(nil, payerr.New(payerr.KindNotFound, "payment not found"))

	env.paymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(nil)

	env.txnRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	env.paymentRepo.EXPECT().
		UpdatePayment(gomock.Any(), gomock.Any()).
		Return(nil)

	// no TransitionStatus expectation: the transaction stays pending

	_, err := env.uc.CreatePayment(context.Background(), testIntent())

	require.Error(t, err)
	assert.True(t, payerr.Retryable(err))
}

func TestPaymentUC_CreatePayment_RetryAfterOutageReusesTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stub := &stubGateway{
		capability: gateway.Capability{Code: testGatewayCode},
		createErr:  payerr.New(payerr.KindProviderUnavailable, "gateway timeout"),
	}
	env := newTestEnv(ctrl, stub)

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil).
		Times(2)

	env.gw.EXPECT().
		CalculateTax(gomock.Any(), 10000.0, "env-1").
		Return(&models.TaxResult{}, nil).
		Times(2)

	// first attempt: no payment exists yet, one is created and linked to a
	// fresh transaction before the provider call times out
	env.paymentRepo.EXPECT().
		GetPaymentForIntent(gomock.Any(), "env-1", "", "order-1").
		Return(nil, payerr.New(payerr.KindNotFound, "payment not found"))

	var persisted models.Payment
	var firstRef string

	env.paymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) error {
			persisted = *p
			return nil
		})

	// a single mint across both attempts
	env.txnRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			firstRef = txn.Reference
			return nil
		})

	env.paymentRepo.EXPECT().
		UpdatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) error {
			assert.Equal(t, firstRef, p.TransactionReference)
			persisted = *p
			return nil
		})

	_, err := env.uc.CreatePayment(context.Background(), testIntent())
	require.Error(t, err)
	require.True(t, payerr.Retryable(err))
	require.NotEmpty(t, persisted.TransactionReference)

	// second attempt: the reloaded payment still carries the link, so the
	// pending transaction is reset and reused under the same reference
	stub.createErr = nil
	stub.createResult = &gateway.CreateResult{Success: true, GatewayReference: "pi_retry", GatewayStatus: "created"}

	env.paymentRepo.EXPECT().
		GetPaymentForIntent(gomock.Any(), "env-1", "", "order-1").
		DoAndReturn(func(_ context.Context, _, _, _ string) (*models.Payment, error) {
			reloaded := persisted
			return &reloaded, nil
		})

	env.txnRepo.EXPECT().
		GetTransactionByReference(gomock.Any(), firstRef).
		DoAndReturn(func(_ context.Context, ref string) (*models.Transaction, error) {
			return &models.Transaction{
				ID:        "txn-retry",
				Reference: ref,
				Status:    models.TransactionStatusPending,
			}, nil
		})

	env.txnRepo.EXPECT().
		UpdateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			assert.Equal(t, firstRef, txn.Reference)
			return nil
		})

	env.txnRepo.EXPECT().
		UpdateTransactionOutcome(gomock.Any(), firstRef, models.TransactionStatusProcessing, "pi_retry", "created", gomock.Any()).
		Return(nil)

	env.paymentRepo.EXPECT().
		UpdatePayment(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := env.uc.CreatePayment(context.Background(), testIntent())

	require.NoError(t, err)
	assert.Equal(t, firstRef, result.TransactionReference)
}

func TestPaymentUC_CreatePayment_InactiveEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl, &stubGateway{})

	inactive := activeEnvConfig("env-1")
	inactive.IsActive = false

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(inactive, nil)

	_, err := env.uc.CreatePayment(context.Background(), testIntent())

	require.Error(t, err)
	assert.Equal(t, payerr.KindConfiguration, payerr.KindOf(err))
}

func TestPaymentUC_CreatePayment_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl, &stubGateway{})

	cases := []struct {
		name   string
		mutate func(*models.PaymentIntent)
	}{
		{"missing environment", func(i *models.PaymentIntent) { i.EnvironmentID = "" }},
		{"missing customer", func(i *models.PaymentIntent) { i.CustomerID = "" }},
		{"zero amount", func(i *models.PaymentIntent) { i.Amount = 0 }},
		{"negative discount", func(i *models.PaymentIntent) { i.DiscountAmount = -1 }},
		{"discount above amount", func(i *models.PaymentIntent) { i.DiscountAmount = i.Amount + 1 }},
		{"missing currency", func(i *models.PaymentIntent) { i.Currency = "" }},
		{"missing gateway", func(i *models.PaymentIntent) { i.GatewayCode = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intent := testIntent()
			tc.mutate(intent)

			_, err := env.uc.CreatePayment(context.Background(), intent)

			require.Error(t, err)
			assert.Equal(t, payerr.KindValidation, payerr.KindOf(err))
		})
	}
}

func TestPaymentUC_CreatePayment_ConvertsToSettlementCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stub := &stubGateway{
		capability: gateway.Capability{
			Code:               testGatewayCode,
			SettlementCurrency: "XAF",
		},
		createResult: &gateway.CreateResult{Success: true, GatewayReference: "mp_1", GatewayStatus: "PENDING"},
	}
	env := newTestEnv(ctrl, stub)

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	env.gw.EXPECT().
		CalculateTax(gomock.Any(), 10000.0, "env-1").
		Return(&models.TaxResult{}, nil)

	env.paymentRepo.EXPECT().
		GetPaymentForIntent(gomock.Any(), "env-1", "", "order-1").
		Return(nil, payerr.New(payerr.KindNotFound, "payment not found"))

	env.paymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(nil)

	env.txnRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	env.gw.EXPECT().
		ConvertCurrency(gomock.Any(), 10000.0, "USD", "XAF").
		Return(&models.ConversionSnapshot{
			ConvertedAmount: 6000000,
			TargetCurrency:  "XAF",
			ExchangeRate:    600,
		}, nil)

	env.txnRepo.EXPECT().
		UpdateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	env.txnRepo.EXPECT().
		UpdateTransactionOutcome(gomock.Any(), gomock.Any(), models.TransactionStatusProcessing, "mp_1", "PENDING", gomock.Any()).
		Return(nil)

	env.paymentRepo.EXPECT().
		UpdatePayment(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	_, err := env.uc.CreatePayment(context.Background(), testIntent())

	require.NoError(t, err)
	require.NotNil(t, stub.lastCreateTxn.Conversion)
	amount, currency := gateway.ChargeAmount(stub.lastCreateTxn)
	assert.Equal(t, 6000000.0, amount)
	assert.Equal(t, "XAF", currency)
}

func TestPaymentUC_CreatePayment_ConversionFailureChargesOriginal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stub := &stubGateway{
		capability: gateway.Capability{
			Code:               testGatewayCode,
			SettlementCurrency: "XAF",
		},
		createResult: &gateway.CreateResult{Success: true, GatewayReference: "mp_2", GatewayStatus: "PENDING"},
	}
	env := newTestEnv(ctrl, stub)

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	env.gw.EXPECT().
		CalculateTax(gomock.Any(), 10000.0, "env-1").
		Return(&models.TaxResult{}, nil)

	env.paymentRepo.EXPECT().
		GetPaymentForIntent(gomock.Any(), "env-1", "", "order-1").
		Return(nil, payerr.New(payerr.KindNotFound, "payment not found"))

	env.paymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(nil)

	env.txnRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	env.gw.EXPECT().
		ConvertCurrency(gomock.Any(), 10000.0, "USD", "XAF").
		Return(nil, payerr.New(payerr.KindProviderUnavailable, "exchange service down"))

	env.txnRepo.EXPECT().
		UpdateTransactionOutcome(gomock.Any(), gomock.Any(), models.TransactionStatusProcessing, "mp_2", "PENDING", gomock.Any()).
		Return(nil)

	env.paymentRepo.EXPECT().
		UpdatePayment(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	_, err := env.uc.CreatePayment(context.Background(), testIntent())

	require.NoError(t, err)
	assert.Nil(t, stub.lastCreateTxn.Conversion)
	amount, currency := gateway.ChargeAmount(stub.lastCreateTxn)
	assert.Equal(t, 10000.0, amount)
	assert.Equal(t, "USD", currency)
}

func TestPaymentUC_CreatePayment_UnsupportedGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl, &stubGateway{})

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	intent := testIntent()
	intent.GatewayCode = "carrier_pigeon"

	_, err := env.uc.CreatePayment(context.Background(), intent)

	require.Error(t, err)
	assert.Equal(t, payerr.KindConfiguration, payerr.KindOf(err))
}

func TestPaymentUC_CreatePayment_DirectCredentialsWhenDecentralized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stub := &stubGateway{
		capability:   gateway.Capability{Code: testGatewayCode},
		createResult: &gateway.CreateResult{Success: true, GatewayReference: "pi_d", GatewayStatus: "created"},
	}
	env := newTestEnv(ctrl, stub)

	direct := activeEnvConfig("env-1")
	direct.UseCentralizedGateways = false

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(direct, nil)

	env.envRepo.EXPECT().
		GetGatewayCredentials(gomock.Any(), "env-1", testGatewayCode).
		Return(&models.GatewayCredentials{SecretKey: "sk_env_own"}, nil)

	env.gw.EXPECT().
		CalculateTax(gomock.Any(), 10000.0, "env-1").
		Return(&models.TaxResult{}, nil)

	env.paymentRepo.EXPECT().
		GetPaymentForIntent(gomock.Any(), "env-1", "", "order-1").
		Return(nil, payerr.New(payerr.KindNotFound, "payment not found"))

	env.paymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(nil)

	env.txnRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	env.txnRepo.EXPECT().
		UpdateTransactionOutcome(gomock.Any(), gomock.Any(), models.TransactionStatusProcessing, "pi_d", "created", gomock.Any()).
		Return(nil)

	env.paymentRepo.EXPECT().
		UpdatePayment(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	_, err := env.uc.CreatePayment(context.Background(), testIntent())

	require.NoError(t, err)
}
