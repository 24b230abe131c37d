package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	nrpkg "github.com/kevin997/csl-payments/internal/pkg/newrelic"
	"github.com/kevin997/csl-payments/internal/utils"
	"github.com/kevin997/csl-payments/services/payments"
)

// ConfigHandler handles HTTP requests for environment payment configuration
type ConfigHandler struct {
	configUC payments.ConfigUC
}

// NewConfigHandler creates a new configuration HTTP handler
func NewConfigHandler(configUC payments.ConfigUC) *ConfigHandler {
	return &ConfigHandler{
		configUC: configUC,
	}
}

// GetConfig returns an environment's payment configuration
func (h *ConfigHandler) GetConfig(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Config.Get")

	environmentID := c.Param("environmentID")
	if environmentID == "" {
		return utils.BadRequestResponse(c, "Environment ID is required")
	}

	config, err := h.configUC.GetEnvironmentConfig(c.Request().Context(), environmentID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Configuration retrieved successfully", config)
}

// UpdateConfig updates an environment's payment configuration and invalidates
// its cache entry
func (h *ConfigHandler) UpdateConfig(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Config.Update")

	environmentID := c.Param("environmentID")
	if environmentID == "" {
		return utils.BadRequestResponse(c, "Environment ID is required")
	}

	var config models.EnvironmentPaymentConfig
	if err := c.Bind(&config); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	config.EnvironmentID = environmentID

	if err := h.configUC.UpdateEnvironmentConfig(c.Request().Context(), &config); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.PaymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Configuration updated successfully", config)
}
