package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
	"github.com/kevin997/csl-payments/services/payments/mocks"
)

func TestConfigHandler_GetConfig_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockConfigUC(ctrl)
	handler := NewConfigHandler(mockUC)

	mockUC.EXPECT().
		GetEnvironmentConfig(gomock.Any(), "env-1").
		Return(models.DefaultEnvironmentPaymentConfig("env-1"), nil)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), recorder)
	c.SetParamNames("environmentID")
	c.SetParamValues("env-1")

	err := handler.GetConfig(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "0.17")
}

func TestConfigHandler_GetConfig_MissingEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockConfigUC(ctrl)
	handler := NewConfigHandler(mockUC)

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), recorder)

	err := handler.GetConfig(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestConfigHandler_UpdateConfig_PathParamWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockConfigUC(ctrl)
	handler := NewConfigHandler(mockUC)

	body := models.EnvironmentPaymentConfig{
		EnvironmentID:  "env-spoofed",
		CommissionRate: 0.2,
		IsActive:       true,
	}

	mockUC.EXPECT().
		UpdateEnvironmentConfig(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, config *models.EnvironmentPaymentConfig) error {
			// the path parameter overrides whatever the body claims
			assert.Equal(t, "env-1", config.EnvironmentID)
			assert.Equal(t, 0.2, config.CommissionRate)
			return nil
		})

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, body), recorder)
	c.SetParamNames("environmentID")
	c.SetParamValues("env-1")

	err := handler.UpdateConfig(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestConfigHandler_UpdateConfig_InvalidRateMapsTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockConfigUC(ctrl)
	handler := NewConfigHandler(mockUC)

	mockUC.EXPECT().
		UpdateEnvironmentConfig(gomock.Any(), gomock.Any()).
		Return(payerr.New(payerr.KindValidation, "commission rate must be in [0, 1)"))

	e := echo.New()
	recorder := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, models.EnvironmentPaymentConfig{CommissionRate: 1.5}), recorder)
	c.SetParamNames("environmentID")
	c.SetParamValues("env-1")

	err := handler.UpdateConfig(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
