package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// PaymentErrorResponse maps a classified payment error onto the right HTTP
// status with its kind included, so admin tooling can distinguish operator
// fixes from customer retries
func PaymentErrorResponse(c echo.Context, err error) error {
	kind := payerr.KindOf(err)
	status := http.StatusInternalServerError

	switch kind {
	case payerr.KindValidation:
		status = http.StatusBadRequest
	case payerr.KindNotFound:
		status = http.StatusNotFound
	case payerr.KindSignature:
		status = http.StatusUnauthorized
	case payerr.KindConsistency:
		status = http.StatusConflict
	case payerr.KindConfiguration:
		status = http.StatusUnprocessableEntity
	case payerr.KindProviderRejected:
		status = http.StatusPaymentRequired
	case payerr.KindProviderUnavailable:
		status = http.StatusBadGateway
	}

	return c.JSON(status, ErrorResponse{
		Success: false,
		Error:   err.Error(),
		Kind:    string(kind),
		Code:    status,
	})
}

// ParseJSONResponse unmarshals a response body that may either be a bare
// entity or wrapped in the standard Response envelope
func ParseJSONResponse(body []byte, target interface{}) error {
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return json.Unmarshal(envelope.Data, target)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
