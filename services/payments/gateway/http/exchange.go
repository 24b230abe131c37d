package httpgw

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/utils"
)

// ExchangeClient is an HTTP client for the external currency conversion
// service
type ExchangeClient struct {
	baseURL string
	client  *http.Client
}

// NewExchangeClient creates a new exchange rate service client
func NewExchangeClient(baseURL string, timeout time.Duration) *ExchangeClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &ExchangeClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type conversionResponse struct {
	ConvertedAmount float64 `json:"converted_amount"`
	ExchangeRate    float64 `json:"exchange_rate"`
	Provider        string  `json:"provider"`
}

// Convert converts an amount between currencies. Any failure is returned to
// the caller, which falls back to charging the original amount.
func (c *ExchangeClient) Convert(ctx context.Context, amount float64, from, to string) (*models.ConversionSnapshot, error) {
	query := url.Values{}
	query.Set("amount", fmt.Sprintf("%f", amount))
	query.Set("from", from)
	query.Set("to", to)

	reqURL := fmt.Sprintf("%s/rates/convert?%s", c.baseURL, query.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send conversion request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read conversion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("conversion request failed: (status: %d, body: %s)", resp.StatusCode, string(respBody))
	}

	var result conversionResponse
	if err := utils.ParseJSONResponse(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse conversion response: %w", err)
	}

	if result.ConvertedAmount <= 0 || result.ExchangeRate <= 0 {
		return nil, fmt.Errorf("conversion service returned an empty result")
	}

	return &models.ConversionSnapshot{
		ConvertedAmount: result.ConvertedAmount,
		TargetCurrency:  to,
		ExchangeRate:    result.ExchangeRate,
		Provider:        result.Provider,
		ConvertedAt:     time.Now().UTC(),
	}, nil
}
