package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
	"github.com/kevin997/csl-payments/services/payments/mocks"
)

type withdrawalTestEnv struct {
	uc       *WithdrawalUC
	commRepo *mocks.MockCommissionRepo
	wdRepo   *mocks.MockWithdrawalRepo
	envRepo  *mocks.MockEnvConfigRepo
	gw       *mocks.MockPaymentGW
}

func newWithdrawalTestEnv(ctrl *gomock.Controller) *withdrawalTestEnv {
	commRepo := mocks.NewMockCommissionRepo(ctrl)
	wdRepo := mocks.NewMockWithdrawalRepo(ctrl)
	envRepo := mocks.NewMockEnvConfigRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)

	configCache := NewConfigCache(envRepo, nil, time.Minute)
	uc := NewWithdrawalUC(commRepo, wdRepo, configCache, gw)

	return &withdrawalTestEnv{
		uc:       uc,
		commRepo: commRepo,
		wdRepo:   wdRepo,
		envRepo:  envRepo,
		gw:       gw,
	}
}

func approvedCommission(id string, payout float64) models.Commission {
	return models.Commission{
		ID:           id,
		PayoutAmount: payout,
		Currency:     "XAF",
		Status:       models.CommissionStatusApproved,
	}
}

func withdrawalRequest(amount float64) *models.WithdrawalCreateRequest {
	return &models.WithdrawalCreateRequest{
		EnvironmentID: "env-1",
		RequesterID:   "instructor-1",
		Amount:        amount,
		Method:        "mobile_money",
	}
}

func TestWithdrawalUC_Create_GreedyAggregationStopsBeforeOverflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newWithdrawalTestEnv(ctrl)

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	env.commRepo.EXPECT().
		AvailableBalance(gomock.Any(), "env-1").
		Return(75000.0, nil)

	// oldest first: 20k + 25k fit within the 60k request, adding the 30k
	// would exceed it so aggregation stops there
	env.commRepo.EXPECT().
		ListApprovedUnlinked(gomock.Any(), "env-1").
		Return([]models.Commission{
			approvedCommission("c-1", 20000),
			approvedCommission("c-2", 25000),
			approvedCommission("c-3", 30000),
		}, nil)

	env.wdRepo.EXPECT().
		CreateWithdrawal(gomock.Any(), gomock.Any(), []string{"c-1", "c-2"}).
		Return(nil)

	env.gw.EXPECT().
		PublishWithdrawalEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	withdrawal, err := env.uc.CreateWithdrawalRequest(context.Background(), withdrawalRequest(60000))

	require.NoError(t, err)
	assert.Equal(t, 45000.0, withdrawal.Amount)
	assert.Equal(t, []string{"c-1", "c-2"}, withdrawal.CommissionIDs)
	assert.Equal(t, models.WithdrawalStatusPending, withdrawal.Status)
	assert.Equal(t, "XAF", withdrawal.Currency)
}

func TestWithdrawalUC_Create_BelowMinimumRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newWithdrawalTestEnv(ctrl)

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	// default minimum is 50,000
	_, err := env.uc.CreateWithdrawalRequest(context.Background(), withdrawalRequest(40000))

	require.Error(t, err)
	assert.Equal(t, payerr.KindValidation, payerr.KindOf(err))
}

func TestWithdrawalUC_Create_InsufficientBalanceRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newWithdrawalTestEnv(ctrl)

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	env.commRepo.EXPECT().
		AvailableBalance(gomock.Any(), "env-1").
		Return(40000.0, nil)

	_, err := env.uc.CreateWithdrawalRequest(context.Background(), withdrawalRequest(50000))

	require.Error(t, err)
	assert.Equal(t, payerr.KindValidation, payerr.KindOf(err))
}

func TestWithdrawalUC_Create_NoFittingCommissionRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newWithdrawalTestEnv(ctrl)

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	env.commRepo.EXPECT().
		AvailableBalance(gomock.Any(), "env-1").
		Return(80000.0, nil)

	// the single commission overflows the request on its own
	env.commRepo.EXPECT().
		ListApprovedUnlinked(gomock.Any(), "env-1").
		Return([]models.Commission{approvedCommission("c-big", 80000)}, nil)

	_, err := env.uc.CreateWithdrawalRequest(context.Background(), withdrawalRequest(60000))

	require.Error(t, err)
	assert.Equal(t, payerr.KindValidation, payerr.KindOf(err))
}

func TestWithdrawalUC_Create_DefaultsPayoutMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newWithdrawalTestEnv(ctrl)

	env.envRepo.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(activeEnvConfig("env-1"), nil)

	env.commRepo.EXPECT().
		AvailableBalance(gomock.Any(), "env-1").
		Return(60000.0, nil)

	env.commRepo.EXPECT().
		ListApprovedUnlinked(gomock.Any(), "env-1").
		Return([]models.Commission{approvedCommission("c-1", 60000)}, nil)

	env.wdRepo.EXPECT().
		CreateWithdrawal(gomock.Any(), gomock.Any(), []string{"c-1"}).
		Return(nil)

	env.gw.EXPECT().
		PublishWithdrawalEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	req := withdrawalRequest(60000)
	req.Method = ""

	withdrawal, err := env.uc.CreateWithdrawalRequest(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "bank_transfer", withdrawal.Method)
}

func TestWithdrawalUC_Reject_ReleasesCommissionsAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newWithdrawalTestEnv(ctrl)

	env.wdRepo.EXPECT().
		RejectWithdrawal(gomock.Any(), "wd-1", "bank details invalid").
		Return(nil)

	env.wdRepo.EXPECT().
		GetWithdrawalByID(gomock.Any(), "wd-1").
		Return(&models.WithdrawalRequest{
			ID:     "wd-1",
			Status: models.WithdrawalStatusRejected,
		}, nil)

	env.gw.EXPECT().
		PublishWithdrawalEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.WithdrawalEvent) error {
			assert.Equal(t, string(models.WithdrawalStatusRejected), event.Status)
			assert.Equal(t, "bank details invalid", event.Reason)
			return nil
		})

	err := env.uc.RejectWithdrawal(context.Background(), "wd-1", "bank details invalid")

	require.NoError(t, err)
}

func TestWithdrawalUC_Reject_RequiresReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newWithdrawalTestEnv(ctrl)

	err := env.uc.RejectWithdrawal(context.Background(), "wd-1", "")

	require.Error(t, err)
	assert.Equal(t, payerr.KindValidation, payerr.KindOf(err))
}

func TestWithdrawalUC_Process_CompletesAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newWithdrawalTestEnv(ctrl)

	env.wdRepo.EXPECT().
		CompleteWithdrawal(gomock.Any(), "wd-1", "admin-1", "PAYOUT-42").
		Return(nil)

	env.wdRepo.EXPECT().
		GetWithdrawalByID(gomock.Any(), "wd-1").
		Return(&models.WithdrawalRequest{
			ID:     "wd-1",
			Status: models.WithdrawalStatusCompleted,
		}, nil)

	env.gw.EXPECT().
		PublishWithdrawalEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	err := env.uc.ProcessWithdrawal(context.Background(), "wd-1", "admin-1", "PAYOUT-42")

	require.NoError(t, err)
}

func TestWithdrawalUC_Process_RequiresReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newWithdrawalTestEnv(ctrl)

	err := env.uc.ProcessWithdrawal(context.Background(), "wd-1", "admin-1", "")

	require.Error(t, err)
	assert.Equal(t, payerr.KindValidation, payerr.KindOf(err))
}

func TestAggregateCommissions(t *testing.T) {
	cases := []struct {
		name      string
		payouts   []float64
		requested float64
		wantIDs   int
		wantTotal float64
	}{
		{"exact fit", []float64{20000, 30000}, 50000, 2, 50000},
		{"stops before overflow", []float64{20000, 25000, 30000}, 60000, 2, 45000},
		{"first too large", []float64{80000}, 60000, 0, 0},
		{"empty pool", nil, 60000, 0, 0},
		{"takes everything when under request", []float64{10000, 10000}, 60000, 2, 20000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var candidates []models.Commission
			for i, p := range tc.payouts {
				candidates = append(candidates, approvedCommission(string(rune('a'+i)), p))
			}

			ids, total, _ := aggregateCommissions(candidates, tc.requested)

			assert.Len(t, ids, tc.wantIDs)
			assert.Equal(t, tc.wantTotal, total)
		})
	}
}

func TestCommissionUC_BulkApprove_RequiresIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commRepo := mocks.NewMockCommissionRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewCommissionUC(commRepo, gw)

	_, err := uc.BulkApproveCommissions(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, payerr.KindValidation, payerr.KindOf(err))
}

func TestCommissionUC_BulkApprove_ForwardsPerItemOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commRepo := mocks.NewMockCommissionRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewCommissionUC(commRepo, gw)

	commRepo.EXPECT().
		BulkApprove(gomock.Any(), []string{"c-1", "c-2"}).
		Return(&models.BulkApprovalResult{
			Approved: []string{"c-1"},
			Failed:   []string{"c-2"},
			Errors:   map[string]string{"c-2": "commission is not pending"},
		}, nil)

	result, err := uc.BulkApproveCommissions(context.Background(), []string{"c-1", "c-2"})

	require.NoError(t, err)
	assert.Equal(t, []string{"c-1"}, result.Approved)
	assert.Equal(t, []string{"c-2"}, result.Failed)
}
