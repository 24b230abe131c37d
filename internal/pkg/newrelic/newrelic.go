package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/kevin997/csl-payments/internal/pkg/logger"
	"github.com/kevin997/csl-payments/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application from configuration.
// Returns nil when disabled or misconfigured; the service runs fine without
// the agent.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(true),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without it",
			logger.Err(err))
		return nil
	}

	logger.Info("New Relic initialized",
		logger.String("app_name", configs.NewRelic.AppName))
	return nrApp
}
