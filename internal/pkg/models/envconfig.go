package models

import (
	"time"
)

// EnvironmentPaymentConfig holds a tenant environment's payment settings.
// Reads go through a TTL cache; every write must invalidate that entry before
// returning.
type EnvironmentPaymentConfig struct {
	EnvironmentID         string    `json:"environment_id" db:"environment_id"`
	UseCentralizedGateways bool     `json:"use_centralized_gateways" db:"use_centralized_gateways"`
	CommissionRate        float64   `json:"commission_rate" db:"commission_rate"`
	PaymentTerms          string    `json:"payment_terms" db:"payment_terms"`
	MinimumWithdrawal     float64   `json:"minimum_withdrawal" db:"minimum_withdrawal"`
	DefaultPayoutMethod   string    `json:"default_payout_method" db:"default_payout_method"`
	IsActive              bool      `json:"is_active" db:"is_active"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultEnvironmentPaymentConfig returns the settings applied at environment
// onboarding. Pure function, never ambient mutable state.
func DefaultEnvironmentPaymentConfig(environmentID string) *EnvironmentPaymentConfig {
	return &EnvironmentPaymentConfig{
		EnvironmentID:          environmentID,
		UseCentralizedGateways: true,
		CommissionRate:         0.17,
		PaymentTerms:           "monthly",
		MinimumWithdrawal:      50000,
		DefaultPayoutMethod:    "bank_transfer",
		IsActive:               true,
	}
}

// GatewayCredentials holds one environment's credentials for one provider
type GatewayCredentials struct {
	ID            string    `json:"id" db:"id"`
	EnvironmentID string    `json:"environment_id" db:"environment_id"`
	GatewayCode   string    `json:"gateway_code" db:"gateway_code"`
	PublicKey     string    `json:"public_key" db:"public_key"`
	SecretKey     string    `json:"-" db:"secret_key"`
	WebhookSecret string    `json:"-" db:"webhook_secret"`
	SandboxMode   bool      `json:"sandbox_mode" db:"sandbox_mode"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
