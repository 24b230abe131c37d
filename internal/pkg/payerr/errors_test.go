package payerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_DirectAndWrapped(t *testing.T) {
	err := New(KindValidation, "amount must be positive")
	assert.Equal(t, KindValidation, KindOf(err))

	wrapped := fmt.Errorf("create payment: %w", err)
	assert.Equal(t, KindValidation, KindOf(wrapped))
}

func TestKindOf_UnclassifiedIsEmpty(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("plain error")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindProviderUnavailable, "provider unreachable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "provider unreachable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(New(KindProviderUnavailable, "timeout")))
	assert.False(t, Retryable(New(KindProviderRejected, "card declined")))
	assert.False(t, Retryable(New(KindConfiguration, "missing key")))
	assert.False(t, Retryable(errors.New("plain error")))
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(KindSignature, "bad signature"))
	assert.True(t, Is(err, KindSignature))
	assert.False(t, Is(err, KindValidation))
}
