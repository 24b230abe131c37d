package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

// doJSON sends a JSON request and decodes the JSON response body into a
// schema-loose map. Transport failures and 5xx responses classify as
// provider-unavailable (retryable); 4xx responses classify as provider
// rejections (terminal).
func doJSON(ctx context.Context, client *http.Client, method, rawURL string, body interface{}, headers map[string]string) (models.JSONMap, int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return send(client, req)
}

// doForm sends a form-encoded request (the Stripe API shape)
func doForm(ctx context.Context, client *http.Client, method, rawURL string, form url.Values, headers map[string]string) (models.JSONMap, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return send(client, req)
}

func send(client *http.Client, req *http.Request) (models.JSONMap, int, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, classifyTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, payerr.Wrap(payerr.KindProviderUnavailable, "failed to read provider response", err)
	}

	var decoded models.JSONMap
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &decoded); err != nil {
			return nil, resp.StatusCode, payerr.Wrap(payerr.KindProviderUnavailable, "malformed provider response", err)
		}
	}

	if resp.StatusCode >= 500 {
		return decoded, resp.StatusCode, payerr.Newf(payerr.KindProviderUnavailable, "provider error (status %d)", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return decoded, resp.StatusCode, payerr.Newf(payerr.KindProviderRejected, "provider rejected request (status %d): %s", resp.StatusCode, providerMessage(decoded))
	}

	return decoded, resp.StatusCode, nil
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return payerr.Wrap(payerr.KindProviderUnavailable, "provider call timed out", err)
	}
	return payerr.Wrap(payerr.KindProviderUnavailable, "provider unreachable", err)
}

// providerMessage pulls a human-readable message out of common provider
// error shapes
func providerMessage(body models.JSONMap) string {
	if body == nil {
		return ""
	}
	if m, ok := body["message"].(string); ok {
		return m
	}
	if e, ok := body["error"].(map[string]interface{}); ok {
		if m, ok := e["message"].(string); ok {
			return m
		}
	}
	if e, ok := body["error"].(string); ok {
		return e
	}
	return ""
}

func stringField(body models.JSONMap, key string) string {
	if body == nil {
		return ""
	}
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}

func floatField(body models.JSONMap, key string) float64 {
	if body == nil {
		return 0
	}
	if v, ok := body[key].(float64); ok {
		return v
	}
	return 0
}
