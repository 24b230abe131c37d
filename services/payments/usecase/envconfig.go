package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kevin997/csl-payments/internal/pkg/database"
	"github.com/kevin997/csl-payments/internal/pkg/logger"
	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
	"github.com/kevin997/csl-payments/services/payments"
)

// ConfigCache is a cache-aside wrapper around the environment payment
// configuration: read-through with a TTL, write-through invalidation. It
// implements payments.ConfigUC. Every write invalidates the environment's
// entry before returning so no concurrent payment reads a stale fee rate
// after the change is acknowledged.
type ConfigCache struct {
	repo  payments.EnvConfigRepo
	redis *database.RedisClient
	ttl   time.Duration
}

// NewConfigCache creates a config cache; a nil redis client disables caching
func NewConfigCache(repo payments.EnvConfigRepo, redis *database.RedisClient, ttl time.Duration) *ConfigCache {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}

	return &ConfigCache{
		repo:  repo,
		redis: redis,
		ttl:   ttl,
	}
}

func configCacheKey(environmentID string) string {
	return "payments:envconfig:" + environmentID
}

// GetEnvironmentConfig returns an environment's payment configuration,
// creating the default record on first access
func (c *ConfigCache) GetEnvironmentConfig(ctx context.Context, environmentID string) (*models.EnvironmentPaymentConfig, error) {
	if environmentID == "" {
		return nil, payerr.New(payerr.KindValidation, "environment id is required")
	}

	if c.redis != nil {
		raw, err := c.redis.Get(ctx, configCacheKey(environmentID))
		if err == nil {
			var config models.EnvironmentPaymentConfig
			if err := json.Unmarshal([]byte(raw), &config); err == nil {
				return &config, nil
			}
			// corrupt entry, fall through to the database
			_ = c.redis.Delete(ctx, configCacheKey(environmentID))
		}
	}

	config, err := c.repo.GetEnvironmentConfig(ctx, environmentID)
	if err != nil {
		if payerr.KindOf(err) != payerr.KindNotFound {
			return nil, err
		}

		// first access for this environment: persist the onboarding defaults
		config = models.DefaultEnvironmentPaymentConfig(environmentID)
		if err := c.repo.UpsertEnvironmentConfig(ctx, config); err != nil {
			return nil, fmt.Errorf("failed to create default payment config: %w", err)
		}
	}

	c.store(ctx, config)
	return config, nil
}

// UpdateEnvironmentConfig persists the configuration and invalidates the
// cache entry before returning
func (c *ConfigCache) UpdateEnvironmentConfig(ctx context.Context, config *models.EnvironmentPaymentConfig) error {
	if config.EnvironmentID == "" {
		return payerr.New(payerr.KindValidation, "environment id is required")
	}
	if config.CommissionRate < 0 || config.CommissionRate >= 1 {
		return payerr.New(payerr.KindValidation, "commission rate must be in [0, 1)")
	}
	if config.MinimumWithdrawal < 0 {
		return payerr.New(payerr.KindValidation, "minimum withdrawal must not be negative")
	}

	if err := c.repo.UpsertEnvironmentConfig(ctx, config); err != nil {
		return err
	}

	if c.redis != nil {
		if err := c.redis.Delete(ctx, configCacheKey(config.EnvironmentID)); err != nil {
			// the write succeeded; a failed invalidation must be visible to
			// operators because a stale rate could be served until the TTL
			logger.Error("failed to invalidate environment config cache",
				logger.String("environment_id", config.EnvironmentID),
				logger.Err(err))
			return fmt.Errorf("config saved but cache invalidation failed: %w", err)
		}
	}

	return nil
}

func (c *ConfigCache) store(ctx context.Context, config *models.EnvironmentPaymentConfig) {
	if c.redis == nil {
		return
	}

	data, err := json.Marshal(config)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, configCacheKey(config.EnvironmentID), data, c.ttl); err != nil {
		logger.Warn("failed to cache environment config",
			logger.String("environment_id", config.EnvironmentID),
			logger.Err(err))
	}
}
