package models

import (
	"time"
)

// Event subjects published on NATS. The notification service subscribes to
// these and fans out to push/Telegram/email.
const (
	SubjectPaymentSucceeded    = "payments.succeeded"
	SubjectPaymentFailed       = "payments.failed"
	SubjectCommissionCreated   = "commissions.created"
	SubjectWithdrawalRequested = "withdrawals.requested"
	SubjectWithdrawalCompleted = "withdrawals.completed"
	SubjectWithdrawalRejected  = "withdrawals.rejected"
)

// PaymentEvent is published when a transaction reaches a terminal status
type PaymentEvent struct {
	TransactionReference string    `json:"transaction_reference"`
	EnvironmentID        string    `json:"environment_id"`
	CustomerID           string    `json:"customer_id"`
	Amount               float64   `json:"amount"`
	Currency             string    `json:"currency"`
	Status               string    `json:"status"`
	GatewayCode          string    `json:"gateway_code"`
	Timestamp            time.Time `json:"timestamp"`
}

// CommissionEvent is published when a commission is derived or paid
type CommissionEvent struct {
	CommissionID  string    `json:"commission_id"`
	EnvironmentID string    `json:"environment_id"`
	TransactionID string    `json:"transaction_id"`
	GrossAmount   float64   `json:"gross_amount"`
	FeeAmount     float64   `json:"fee_amount"`
	PayoutAmount  float64   `json:"payout_amount"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// WithdrawalEvent is published on withdrawal lifecycle changes
type WithdrawalEvent struct {
	WithdrawalID  string    `json:"withdrawal_id"`
	EnvironmentID string    `json:"environment_id"`
	RequesterID   string    `json:"requester_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
