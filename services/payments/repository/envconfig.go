package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

// GetEnvironmentConfig retrieves an environment's payment configuration
func (r *PostgresRepo) GetEnvironmentConfig(ctx context.Context, environmentID string) (*models.EnvironmentPaymentConfig, error) {
	query := `SELECT * FROM environment_payment_configs WHERE environment_id = $1`

	var config models.EnvironmentPaymentConfig
	err := r.db.GetContext(ctx, &config, query, environmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payerr.Newf(payerr.KindNotFound, "no payment config for environment: %s", environmentID)
		}
		return nil, fmt.Errorf("failed to get environment payment config: %w", err)
	}

	return &config, nil
}

// UpsertEnvironmentConfig creates or updates an environment's payment
// configuration
func (r *PostgresRepo) UpsertEnvironmentConfig(ctx context.Context, config *models.EnvironmentPaymentConfig) error {
	now := time.Now()
	if config.CreatedAt.IsZero() {
		config.CreatedAt = now
	}
	config.UpdatedAt = now

	query := `
		INSERT INTO environment_payment_configs (
			environment_id, use_centralized_gateways, commission_rate,
			payment_terms, minimum_withdrawal, default_payout_method,
			is_active, created_at, updated_at
		) VALUES (
			:environment_id, :use_centralized_gateways, :commission_rate,
			:payment_terms, :minimum_withdrawal, :default_payout_method,
			:is_active, :created_at, :updated_at
		)
		ON CONFLICT (environment_id) DO UPDATE SET
			use_centralized_gateways = EXCLUDED.use_centralized_gateways,
			commission_rate = EXCLUDED.commission_rate,
			payment_terms = EXCLUDED.payment_terms,
			minimum_withdrawal = EXCLUDED.minimum_withdrawal,
			default_payout_method = EXCLUDED.default_payout_method,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.NamedExecContext(ctx, query, config)
	if err != nil {
		return fmt.Errorf("failed to upsert environment payment config: %w", err)
	}

	return nil
}

// GetGatewayCredentials retrieves the active credentials an environment
// stored for a provider
func (r *PostgresRepo) GetGatewayCredentials(ctx context.Context, environmentID, gatewayCode string) (*models.GatewayCredentials, error) {
	query := `
		SELECT * FROM environment_gateway_credentials
		WHERE environment_id = $1 AND gateway_code = $2 AND is_active = true
	`

	var creds models.GatewayCredentials
	err := r.db.GetContext(ctx, &creds, query, environmentID, gatewayCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payerr.Newf(payerr.KindConfiguration,
				"no active %s credentials for environment %s", gatewayCode, environmentID)
		}
		return nil, fmt.Errorf("failed to get gateway credentials: %w", err)
	}

	return &creds, nil
}
