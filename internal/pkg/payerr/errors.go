// Package payerr defines the error taxonomy of the payment core. Every error
// that crosses a layer boundary carries a Kind so handlers can map it to the
// right HTTP status and operators can tell a configuration problem from a
// customer-facing decline.
package payerr

import (
	"errors"
	"fmt"
)

// Kind classifies payment errors
type Kind string

const (
	// KindConfiguration: missing/invalid tenant credentials or unsupported
	// provider. Fatal for the attempt, an operator fix, never auto-retried.
	KindConfiguration Kind = "configuration"
	// KindProviderRejected: explicit decline from the provider. Terminal for
	// the transaction.
	KindProviderRejected Kind = "provider_rejected"
	// KindProviderUnavailable: timeout, network failure or malformed
	// response. Retryable; the transaction stays non-terminal.
	KindProviderUnavailable Kind = "provider_unavailable"
	// KindValidation: request rejected before any state mutation.
	KindValidation Kind = "validation"
	// KindSignature: webhook signature failed verification; payload dropped.
	KindSignature Kind = "signature"
	// KindConsistency: operation conflicts with current entity state.
	KindConsistency Kind = "consistency"
	// KindNotFound: referenced entity does not exist.
	KindNotFound Kind = "not_found"
)

// Error is a classified payment error
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Kind returns the error's classification
func (e *Error) Kind() Kind { return e.kind }

// New creates a classified error
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Newf creates a classified error with formatting
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

// KindOf extracts the Kind from an error chain; unclassified errors report
// an empty Kind
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.kind
	}
	return ""
}

// Is reports whether err carries the given kind anywhere in its chain
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Retryable reports whether the failed attempt may be retried without
// operator intervention
func Retryable(err error) bool {
	return KindOf(err) == KindProviderUnavailable
}
