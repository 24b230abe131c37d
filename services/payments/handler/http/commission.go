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

// CommissionHandler handles HTTP requests for commission operations
type CommissionHandler struct {
	commissionUC payments.CommissionUC
}

// NewCommissionHandler creates a new commission HTTP handler
func NewCommissionHandler(commissionUC payments.CommissionUC) *CommissionHandler {
	return &CommissionHandler{
		commissionUC: commissionUC,
	}
}

// ApproveCommission marks one pending commission eligible for withdrawal
func (h *CommissionHandler) ApproveCommission(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Commissions.Approve")

	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Commission ID is required")
	}

	if err := h.commissionUC.ApproveCommission(c.Request().Context(), id); err != nil {
		logger.Error("Failed to approve commission",
			logger.String("commission_id", id),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Commission approved successfully", nil)
}

// BulkApproveRequest is the inbound bulk approval payload
type BulkApproveRequest struct {
	CommissionIDs []string `json:"commission_ids"`
}

// BulkApprove approves a batch of commissions with per-item outcomes
func (h *CommissionHandler) BulkApprove(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Commissions.BulkApprove")

	var req BulkApproveRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.commissionUC.BulkApproveCommissions(c.Request().Context(), req.CommissionIDs)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	logger.Info("Bulk commission approval finished",
		logger.Int("approved", len(result.Approved)),
		logger.Int("failed", len(result.Failed)))

	return utils.SuccessResponse(c, http.StatusOK, "Bulk approval finished", result)
}

// ListCommissions returns an environment's commissions, optionally filtered
// by status
func (h *CommissionHandler) ListCommissions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Commissions.List")

	environmentID := c.QueryParam("environment_id")
	if environmentID == "" {
		return utils.BadRequestResponse(c, "environment_id is required")
	}

	status := models.CommissionStatus(c.QueryParam("status"))
	limit, offset := paginationParams(c)

	result, err := h.commissionUC.ListCommissions(c.Request().Context(), environmentID, status, limit, offset)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Commissions retrieved successfully", result)
}

// GetBalance returns the withdrawable balance of an environment
func (h *CommissionHandler) GetBalance(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Commissions.GetBalance")

	environmentID := c.Param("environmentID")
	if environmentID == "" {
		return utils.BadRequestResponse(c, "Environment ID is required")
	}

	balance, err := h.commissionUC.GetAvailableBalance(c.Request().Context(), environmentID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved successfully", map[string]interface{}{
		"environment_id": environmentID,
		"balance":        balance,
	})
}
