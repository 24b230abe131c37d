package models

import (
	"time"
)

// WithdrawalStatus enumerates withdrawal request lifecycle states
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusApproved  WithdrawalStatus = "approved"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
)

// WithdrawalRequest batches a set of approved commissions into one payout
// instruction. Its amount always equals the sum of the linked commissions'
// payout amounts.
type WithdrawalRequest struct {
	ID               string           `json:"id" db:"id"`
	EnvironmentID    string           `json:"environment_id" db:"environment_id"`
	RequesterID      string           `json:"requester_id" db:"requester_id"`
	Amount           float64          `json:"amount" db:"amount"`
	Currency         string           `json:"currency" db:"currency"`
	Status           WithdrawalStatus `json:"status" db:"status"`
	Method           string           `json:"method" db:"method"`
	MethodDetails    JSONMap          `json:"method_details,omitempty" db:"method_details"`
	CommissionIDs    []string         `json:"commission_ids" db:"-"`
	RejectionReason  string           `json:"rejection_reason,omitempty" db:"rejection_reason"`
	ApprovedBy       string           `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt       *time.Time       `json:"approved_at,omitempty" db:"approved_at"`
	ProcessedBy      string           `json:"processed_by,omitempty" db:"processed_by"`
	ProcessedAt      *time.Time       `json:"processed_at,omitempty" db:"processed_at"`
	PaymentReference string           `json:"payment_reference,omitempty" db:"payment_reference"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// WithdrawalCreateRequest is the inbound request to open a withdrawal
type WithdrawalCreateRequest struct {
	EnvironmentID string  `json:"environment_id"`
	RequesterID   string  `json:"requester_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	MethodDetails JSONMap `json:"method_details,omitempty"`
}
