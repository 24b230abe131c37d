package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

func stripeCreds() models.GatewayCredentials {
	return models.GatewayCredentials{
		PublicKey:     "pk_test_1",
		SecretKey:     "sk_test_1",
		WebhookSecret: "whsec_test",
	}
}

func testStripeGateway(t *testing.T, handler http.HandlerFunc) (*StripeGateway, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gw, err := NewStripeGateway(stripeCreds(), server.Client())
	require.NoError(t, err)

	stripe := gw.(*StripeGateway)
	stripe.baseURL = server.URL
	return stripe, server
}

func TestNewStripeGateway_RequiresSecretKey(t *testing.T) {
	_, err := NewStripeGateway(models.GatewayCredentials{}, http.DefaultClient)
	assert.Error(t, err)
	assert.Equal(t, payerr.KindConfiguration, payerr.KindOf(err))
}

func TestStripeCreatePayment_Success(t *testing.T) {
	gw, _ := testStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_1", r.Header.Get("Authorization"))
		assert.Equal(t, "TXN-1", r.Header.Get("Idempotency-Key"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1192500", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "TXN-1", r.PostForm.Get("metadata[reference]"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":            "pi_123",
			"client_secret": "pi_123_secret_abc",
			"status":        "requires_payment_method",
		})
	})

	txn := &models.Transaction{
		Reference:     "TXN-1",
		EnvironmentID: "env-1",
		TotalAmount:   11925,
		Currency:      "USD",
	}

	result, err := gw.CreatePayment(context.Background(), txn, CreateParams{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "pi_123", result.GatewayReference)
	assert.Equal(t, "pi_123_secret_abc", result.ClientSecret)
	assert.Equal(t, "requires_payment_method", result.GatewayStatus)
}

func TestStripeCreatePayment_UsesConversionSnapshot(t *testing.T) {
	gw, _ := testStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		// XAF has no minor unit
		assert.Equal(t, "6000000", r.PostForm.Get("amount"))
		assert.Equal(t, "xaf", r.PostForm.Get("currency"))

		json.NewEncoder(w).Encode(map[string]interface{}{"id": "pi_123", "status": "requires_payment_method"})
	})

	txn := &models.Transaction{
		Reference:   "TXN-1",
		TotalAmount: 10000,
		Currency:    "USD",
		Conversion: &models.ConversionSnapshot{
			ConvertedAmount: 6000000,
			TargetCurrency:  "XAF",
			ExchangeRate:    600,
		},
	}

	_, err := gw.CreatePayment(context.Background(), txn, CreateParams{})
	require.NoError(t, err)
}

func TestStripeCreatePayment_RejectionIsTerminal(t *testing.T) {
	gw, _ := testStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "Your card was declined."},
		})
	})

	txn := &models.Transaction{Reference: "TXN-1", TotalAmount: 100, Currency: "USD"}

	_, err := gw.CreatePayment(context.Background(), txn, CreateParams{})
	require.Error(t, err)
	assert.Equal(t, payerr.KindProviderRejected, payerr.KindOf(err))
	assert.False(t, payerr.Retryable(err))
	assert.Contains(t, err.Error(), "Your card was declined.")
}

func TestStripeCreatePayment_ServerErrorIsRetryable(t *testing.T) {
	gw, _ := testStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	})

	txn := &models.Transaction{Reference: "TXN-1", TotalAmount: 100, Currency: "USD"}

	_, err := gw.CreatePayment(context.Background(), txn, CreateParams{})
	require.Error(t, err)
	assert.Equal(t, payerr.KindProviderUnavailable, payerr.KindOf(err))
	assert.True(t, payerr.Retryable(err))
}

func TestStripeVerifyPayment_MapsStatus(t *testing.T) {
	gw, _ := testStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment_intents/pi_123", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "pi_123",
			"status":   "succeeded",
			"amount":   1192500,
			"currency": "usd",
		})
	})

	result, err := gw.VerifyPayment(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusSucceeded, result.Status)
	assert.Equal(t, "succeeded", result.GatewayStatus)
	assert.Equal(t, 11925.0, result.Amount)
	assert.Equal(t, "USD", result.Currency)
}

func TestStripeProcessRefund_PartialAmount(t *testing.T) {
	gw, _ := testStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refunds", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "pi_123", r.PostForm.Get("payment_intent"))
		assert.Equal(t, "500000", r.PostForm.Get("amount"))

		json.NewEncoder(w).Encode(map[string]interface{}{"id": "re_123", "status": "succeeded"})
	})

	txn := &models.Transaction{
		Reference:        "TXN-1",
		GatewayReference: "pi_123",
		TotalAmount:      11925,
		Currency:         "USD",
	}

	outcome, err := gw.ProcessRefund(context.Background(), txn, 5000, "requested by customer")
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, "re_123", outcome.RefundReference)
}

func TestStripeParseWebhook_Succeeded(t *testing.T) {
	gw, err := NewStripeGateway(stripeCreds(), http.DefaultClient)
	require.NoError(t, err)

	payload := []byte(`{
		"type": "payment_intent.succeeded",
		"data": {"object": {
			"id": "pi_123",
			"status": "succeeded",
			"amount": 1192500,
			"currency": "usd",
			"metadata": {"reference": "TXN-1"}
		}}
	}`)
	timestamp := "1693300000"
	sig := ComputeHMAC(append([]byte(timestamp+"."), payload...), "whsec_test")

	event, err := gw.ParseWebhook(context.Background(), payload, "t="+timestamp+",v1="+sig)
	require.NoError(t, err)
	assert.Equal(t, "TXN-1", event.Reference)
	assert.Equal(t, "pi_123", event.GatewayReference)
	assert.Equal(t, models.TransactionStatusSucceeded, event.Status)
	assert.Equal(t, 11925.0, event.Amount)
	assert.Equal(t, "USD", event.Currency)
}

func TestStripeParseWebhook_FailedEvent(t *testing.T) {
	gw, err := NewStripeGateway(stripeCreds(), http.DefaultClient)
	require.NoError(t, err)

	payload := []byte(`{
		"type": "payment_intent.payment_failed",
		"data": {"object": {"id": "pi_123", "status": "requires_payment_method", "currency": "usd"}}
	}`)
	timestamp := "1693300000"
	sig := ComputeHMAC(append([]byte(timestamp+"."), payload...), "whsec_test")

	event, err := gw.ParseWebhook(context.Background(), payload, "t="+timestamp+",v1="+sig)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusFailed, event.Status)
}

func TestStripeParseWebhook_CanceledStaysReusable(t *testing.T) {
	gw, err := NewStripeGateway(stripeCreds(), http.DefaultClient)
	require.NoError(t, err)

	payload := []byte(`{
		"type": "payment_intent.canceled",
		"data": {"object": {"id": "pi_123", "status": "canceled", "currency": "usd"}}
	}`)
	timestamp := "1693300000"
	sig := ComputeHMAC(append([]byte(timestamp+"."), payload...), "whsec_test")

	event, err := gw.ParseWebhook(context.Background(), payload, "t="+timestamp+",v1="+sig)
	require.NoError(t, err)

	// the webhook and the poll path report the same abandonment the same way
	assert.Equal(t, models.TransactionStatusCancelled, event.Status)
	assert.Equal(t, mapStripeStatus("canceled"), event.Status)
}

func TestStripeParseWebhook_BadSignature(t *testing.T) {
	gw, err := NewStripeGateway(stripeCreds(), http.DefaultClient)
	require.NoError(t, err)

	_, err = gw.ParseWebhook(context.Background(), []byte(`{}`), "t=1,v1=deadbeef")
	require.Error(t, err)
	assert.Equal(t, payerr.KindSignature, payerr.KindOf(err))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1192500), toMinorUnits(11925, "USD"))
	assert.Equal(t, int64(6000000), toMinorUnits(6000000, "XAF"))
	assert.Equal(t, 11925.0, fromMinorUnits(1192500, "USD"))
	assert.Equal(t, 6000000.0, fromMinorUnits(6000000, "XAF"))
}
