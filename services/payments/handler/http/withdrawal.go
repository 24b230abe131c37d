package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kevin997/csl-payments/internal/pkg/logger"
	"github.com/kevin997/csl-payments/internal/pkg/models"
	nrpkg "github.com/kevin997/csl-payments/internal/pkg/newrelic"
	"github.com/kevin997/csl-payments/internal/utils"
	"github.com/kevin997/csl-payments/services/payments"
)

// WithdrawalHandler handles HTTP requests for withdrawal operations
type WithdrawalHandler struct {
	withdrawalUC payments.WithdrawalUC
}

// NewWithdrawalHandler creates a new withdrawal HTTP handler
func NewWithdrawalHandler(withdrawalUC payments.WithdrawalUC) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalUC: withdrawalUC,
	}
}

// CreateWithdrawal opens a withdrawal request
func (h *WithdrawalHandler) CreateWithdrawal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Withdrawals.Create")

	var req models.WithdrawalCreateRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	withdrawal, err := h.withdrawalUC.CreateWithdrawalRequest(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create withdrawal",
			logger.String("environment_id", req.EnvironmentID),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Withdrawal requested successfully", withdrawal)
}

// ApprovalRequest carries the acting admin for approval operations
type ApprovalRequest struct {
	Approver string `json:"approver"`
}

// ApproveWithdrawal approves a pending withdrawal
func (h *WithdrawalHandler) ApproveWithdrawal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Withdrawals.Approve")

	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Withdrawal ID is required")
	}

	var req ApprovalRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.withdrawalUC.ApproveWithdrawal(c.Request().Context(), id, req.Approver); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal approved successfully", nil)
}

// RejectionRequest carries the reason a withdrawal is being rejected
type RejectionRequest struct {
	Reason string `json:"reason"`
}

// RejectWithdrawal rejects a withdrawal and releases its commissions
func (h *WithdrawalHandler) RejectWithdrawal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Withdrawals.Reject")

	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Withdrawal ID is required")
	}

	var req RejectionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.withdrawalUC.RejectWithdrawal(c.Request().Context(), id, req.Reason); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal rejected successfully", nil)
}

// ProcessRequest carries the payout execution details
type ProcessRequest struct {
	Processor        string `json:"processor"`
	PaymentReference string `json:"payment_reference"`
}

// ProcessWithdrawal completes an approved withdrawal
func (h *WithdrawalHandler) ProcessWithdrawal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Withdrawals.Process")

	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Withdrawal ID is required")
	}

	var req ProcessRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.withdrawalUC.ProcessWithdrawal(c.Request().Context(), id, req.Processor, req.PaymentReference); err != nil {
		logger.Error("Failed to process withdrawal",
			logger.String("withdrawal_id", id),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal processed successfully", nil)
}

// GetWithdrawal returns one withdrawal with its linked commissions
func (h *WithdrawalHandler) GetWithdrawal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Withdrawals.Get")

	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Withdrawal ID is required")
	}

	withdrawal, err := h.withdrawalUC.GetWithdrawal(c.Request().Context(), id)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal retrieved successfully", withdrawal)
}

// ListWithdrawals returns an environment's withdrawal requests
func (h *WithdrawalHandler) ListWithdrawals(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Withdrawals.List")

	environmentID := c.QueryParam("environment_id")
	if environmentID == "" {
		return utils.BadRequestResponse(c, "environment_id is required")
	}

	limit, offset := paginationParams(c)
	result, err := h.withdrawalUC.ListWithdrawals(c.Request().Context(), environmentID, limit, offset)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawals retrieved successfully", result)
}
