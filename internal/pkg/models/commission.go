package models

import (
	"time"
)

// CommissionStatus enumerates commission lifecycle states
type CommissionStatus string

const (
	CommissionStatusPending  CommissionStatus = "pending"
	CommissionStatusApproved CommissionStatus = "approved"
	CommissionStatusPaid     CommissionStatus = "paid"
)

// Commission records the split of one succeeded transaction's gross amount
// between the platform fee and the instructor payout. The fee rate is a
// snapshot taken at derivation time; later configuration changes never alter
// a booked commission.
type Commission struct {
	ID               string           `json:"id" db:"id"`
	EnvironmentID    string           `json:"environment_id" db:"environment_id"`
	TransactionID    string           `json:"transaction_id" db:"transaction_id"`
	OrderID          string           `json:"order_id,omitempty" db:"order_id"`
	GrossAmount      float64          `json:"gross_amount" db:"gross_amount"`
	FeeRate          float64          `json:"fee_rate" db:"fee_rate"`
	FeeAmount        float64          `json:"fee_amount" db:"fee_amount"`
	PayoutAmount     float64          `json:"payout_amount" db:"payout_amount"`
	Currency         string           `json:"currency" db:"currency"`
	Status           CommissionStatus `json:"status" db:"status"`
	WithdrawalID     string           `json:"withdrawal_id,omitempty" db:"withdrawal_id"`
	PaymentReference string           `json:"payment_reference,omitempty" db:"payment_reference"`
	PaidAt           *time.Time       `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// BulkApprovalResult reports per-item outcomes of a bulk commission approval
type BulkApprovalResult struct {
	Approved []string          `json:"approved"`
	Failed   []string          `json:"failed"`
	Errors   map[string]string `json:"errors,omitempty"`
}
