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

func TestCreateCommission_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	commission := &models.Commission{
		ID:            uuid.New().String(),
		EnvironmentID: "env-1",
		TransactionID: "txn-1",
		GrossAmount:   10000,
		FeeRate:       0.17,
		FeeAmount:     1700,
		PayoutAmount:  8300,
		Currency:      "USD",
		Status:        models.CommissionStatusPending,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO instructor_commissions")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateCommission(context.Background(), commission)
	assert.NoError(t, err)
	assert.False(t, commission.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommissionByTransactionID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM instructor_commissions WHERE transaction_id")).
		WithArgs("txn-missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetCommissionByTransactionID(context.Background(), "txn-missing")
	assert.Error(t, err)
	assert.Equal(t, payerr.KindNotFound, payerr.KindOf(err))
}

func TestApproveCommission_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructor_commissions")).
		WithArgs(models.CommissionStatusApproved, "c-1", models.CommissionStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ApproveCommission(context.Background(), "c-1")
	assert.NoError(t, err)
}

func TestApproveCommission_NotPending(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructor_commissions")).
		WithArgs(models.CommissionStatusApproved, "c-1", models.CommissionStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ApproveCommission(context.Background(), "c-1")
	assert.Error(t, err)
	assert.Equal(t, payerr.KindConsistency, payerr.KindOf(err))
}

func TestBulkApprove_MixedOutcomes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructor_commissions")).
		WithArgs(models.CommissionStatusApproved, "c-1", models.CommissionStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructor_commissions")).
		WithArgs(models.CommissionStatusApproved, "c-2", models.CommissionStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	result, err := repo.BulkApprove(context.Background(), []string{"c-1", "c-2"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"c-1"}, result.Approved)
	assert.Equal(t, []string{"c-2"}, result.Failed)
	assert.Equal(t, "commission is not pending", result.Errors["c-2"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkApprove_ExecErrorRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructor_commissions")).
		WithArgs(models.CommissionStatusApproved, "c-1", models.CommissionStatusPending).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := repo.BulkApprove(context.Background(), []string{"c-1"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApprovedUnlinked_OldestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	rows := sqlmock.NewRows([]string{"id", "environment_id", "payout_amount", "currency", "status", "withdrawal_id"}).
		AddRow("c-old", "env-1", 20000.0, "XAF", "approved", "").
		AddRow("c-new", "env-1", 25000.0, "XAF", "approved", "")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM instructor_commissions")).
		WithArgs("env-1", models.CommissionStatusApproved).
		WillReturnRows(rows)

	commissions, err := repo.ListApprovedUnlinked(context.Background(), "env-1")
	assert.NoError(t, err)
	assert.Len(t, commissions, 2)
	assert.Equal(t, "c-old", commissions[0].ID)
	assert.Equal(t, "c-new", commissions[1].ID)
}

func TestAvailableBalance_SumsPayouts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(payout_amount), 0)")).
		WithArgs("env-1", models.CommissionStatusApproved).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(45000.0))

	balance, err := repo.AvailableBalance(context.Background(), "env-1")
	assert.NoError(t, err)
	assert.Equal(t, 45000.0, balance)
}

func TestListCommissions_StatusFilter(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPostgresRepo(db)

	rows := sqlmock.NewRows([]string{"id", "environment_id", "status"}).
		AddRow("c-1", "env-1", "pending")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM instructor_commissions")).
		WithArgs("env-1", models.CommissionStatusPending, 50, 0).
		WillReturnRows(rows)

	commissions, err := repo.ListCommissions(context.Background(), "env-1", models.CommissionStatusPending, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, commissions, 1)
}
