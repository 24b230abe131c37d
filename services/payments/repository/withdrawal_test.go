package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
	"github.com/kevin997/csl-payments/services/payments/repository"
)

func pendingWithdrawal() *models.WithdrawalRequest {
	return &models.WithdrawalRequest{
		ID:            uuid.New().String(),
		EnvironmentID: "env-1",
		RequesterID:   "instructor-1",
		Amount:        45000,
		Currency:      "XAF",
		Status:        models.WithdrawalStatusPending,
		Method:        "mobile_money",
	}
}

func TestCreateWithdrawal_LinksAllCommissions(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	withdrawal := pendingWithdrawal()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO withdrawal_requests")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructor_commissions")).
		WithArgs(withdrawal.ID, "c-1", "c-2", models.CommissionStatusApproved).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.CreateWithdrawal(context.Background(), withdrawal, []string{"c-1", "c-2"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithdrawal_LinkCountMismatchRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	withdrawal := pendingWithdrawal()

	// one of the two commissions was linked by a concurrent request, only
	// one row matches so the whole creation must roll back
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO withdrawal_requests")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructor_commissions")).
		WithArgs(withdrawal.ID, "c-1", "c-2", models.CommissionStatusApproved).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := repo.CreateWithdrawal(context.Background(), withdrawal, []string{"c-1", "c-2"})
	assert.Error(t, err)
	assert.Equal(t, payerr.KindConsistency, payerr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithdrawalByID_LoadsLinkedCommissions(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM withdrawal_requests")).
		WithArgs("wd-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "environment_id", "amount", "status"}).
			AddRow("wd-1", "env-1", 45000.0, "pending"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM instructor_commissions")).
		WithArgs("wd-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c-1").AddRow("c-2"))

	withdrawal, err := repo.GetWithdrawalByID(context.Background(), "wd-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"c-1", "c-2"}, withdrawal.CommissionIDs)
}

func TestGetWithdrawalByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM withdrawal_requests")).
		WithArgs("wd-missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetWithdrawalByID(context.Background(), "wd-missing")
	assert.Error(t, err)
	assert.Equal(t, payerr.KindNotFound, payerr.KindOf(err))
}

func TestApproveWithdrawal_NotPending(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE withdrawal_requests")).
		WithArgs(models.WithdrawalStatusApproved, "admin-1", "wd-1", models.WithdrawalStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ApproveWithdrawal(context.Background(), "wd-1", "admin-1")
	assert.Error(t, err)
	assert.Equal(t, payerr.KindConsistency, payerr.KindOf(err))
}

func TestRejectWithdrawal_UnlinksCommissions(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE withdrawal_requests")).
		WithArgs(models.WithdrawalStatusRejected, "bank details invalid", "wd-1", models.WithdrawalStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructor_commissions")).
		WithArgs("wd-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.RejectWithdrawal(context.Background(), "wd-1", "bank details invalid")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteWithdrawal_MarksCommissionsPaid(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE withdrawal_requests")).
		WithArgs(models.WithdrawalStatusCompleted, "admin-1", "PAYOUT-42", "wd-1", models.WithdrawalStatusApproved).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructor_commissions")).
		WithArgs(models.CommissionStatusPaid, "PAYOUT-42", "wd-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.CompleteWithdrawal(context.Background(), "wd-1", "admin-1", "PAYOUT-42")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteWithdrawal_NotApproved(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE withdrawal_requests")).
		WithArgs(models.WithdrawalStatusCompleted, "admin-1", "PAYOUT-42", "wd-1", models.WithdrawalStatusApproved).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CompleteWithdrawal(context.Background(), "wd-1", "admin-1", "PAYOUT-42")
	assert.Error(t, err)
	assert.Equal(t, payerr.KindConsistency, payerr.KindOf(err))
}
