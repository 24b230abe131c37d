package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext extracts the New Relic transaction from an Echo context
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// FromContext extracts the New Relic transaction from a standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// SetTransactionName names the transaction; nil-safe
func SetTransactionName(txn *newrelic.Transaction, name string) {
	if txn != nil {
		txn.SetName(name)
	}
}

// AddTransactionAttribute attaches a custom attribute; nil-safe
func AddTransactionAttribute(txn *newrelic.Transaction, key string, value interface{}) {
	if txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeTransactionError reports an error on the transaction; nil-safe
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// WithSegment runs fn inside a named segment of the context's transaction
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	txn := FromContext(ctx)
	if txn != nil {
		defer txn.StartSegment(segmentName).End()
	}
	return fn()
}
