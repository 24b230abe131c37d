package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

// ComputeHMAC returns the hex-encoded HMAC-SHA256 of payload under secret
func ComputeHMAC(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHMAC checks a hex-encoded HMAC-SHA256 signature in constant time
func VerifyHMAC(payload []byte, secret, signature string) error {
	if secret == "" {
		return payerr.New(payerr.KindConfiguration, "webhook secret is not configured")
	}
	if signature == "" {
		return payerr.New(payerr.KindSignature, "missing webhook signature")
	}

	expected := ComputeHMAC(payload, secret)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return payerr.New(payerr.KindSignature, "webhook signature verification failed")
	}
	return nil
}

// VerifyStripeSignature validates a Stripe-Signature header of the form
// "t=<timestamp>,v1=<hmac>" where the hmac covers "<timestamp>.<payload>"
func VerifyStripeSignature(payload []byte, secret, header string) error {
	if secret == "" {
		return payerr.New(payerr.KindConfiguration, "webhook secret is not configured")
	}
	if header == "" {
		return payerr.New(payerr.KindSignature, "missing webhook signature")
	}

	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}

	if timestamp == "" || len(signatures) == 0 {
		return payerr.New(payerr.KindSignature, "malformed webhook signature header")
	}

	signed := append([]byte(timestamp+"."), payload...)
	expected := ComputeHMAC(signed, secret)
	for _, sig := range signatures {
		if hmac.Equal([]byte(expected), []byte(sig)) {
			return nil
		}
	}

	return payerr.New(payerr.KindSignature, "webhook signature verification failed")
}
