package httpgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/utils"
)

// TaxClient is an HTTP client for the external tax resolution service
type TaxClient struct {
	baseURL string
	client  *http.Client
}

// NewTaxClient creates a new tax service client
func NewTaxClient(baseURL string, timeout time.Duration) *TaxClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &TaxClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// CalculateTax resolves the tax amount and rate for an amount in an
// environment's tax jurisdiction
func (c *TaxClient) CalculateTax(ctx context.Context, amount float64, environmentID string) (*models.TaxResult, error) {
	reqBody, err := json.Marshal(map[string]interface{}{
		"amount":         amount,
		"environment_id": environmentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tax request: %w", err)
	}

	url := fmt.Sprintf("%s/taxes/calculate", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create tax request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send tax request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tax response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tax request failed: (status: %d, body: %s)", resp.StatusCode, string(respBody))
	}

	var result models.TaxResult
	if err := utils.ParseJSONResponse(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse tax response: %w", err)
	}

	return &result, nil
}
