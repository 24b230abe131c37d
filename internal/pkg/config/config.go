package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/kevin997/csl-payments/internal/pkg/models"
)

// InitConfig loads configuration from a local env file (local environment
// only) and then from environment variables
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "payments-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Payment config
	configs.Payment.GatewayTimeout = GetEnvAsInt("PAYMENT_GATEWAY_TIMEOUT", 30)
	configs.Payment.ConfigCacheTTL = GetEnvAsInt("PAYMENT_CONFIG_CACHE_TTL", 300)
	configs.Payment.DefaultCurrency = GetEnv("PAYMENT_DEFAULT_CURRENCY", "USD")
	configs.Payment.CentralizedCreds = loadCentralizedCreds()

	// External services
	configs.Services.TaxServiceURL = GetEnv("TAX_SERVICE_URL", "")
	configs.Services.ExchangeServiceURL = GetEnv("EXCHANGE_SERVICE_URL", "")

	// New Relic config
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", configs.App.Name)
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")

	return configs
}

// loadCentralizedCreds reads the platform-level gateway credentials used when
// an environment routes through centralized gateways
func loadCentralizedCreds() map[string]models.GatewayCredentials {
	creds := map[string]models.GatewayCredentials{}

	for _, code := range []string{"stripe", "paypal", "mtn_momo", "orange_money"} {
		prefix := "GATEWAY_" + toEnvKey(code) + "_"
		secret := GetEnv(prefix+"SECRET_KEY", "")
		if secret == "" {
			continue
		}
		creds[code] = models.GatewayCredentials{
			GatewayCode:   code,
			PublicKey:     GetEnv(prefix+"PUBLIC_KEY", ""),
			SecretKey:     secret,
			WebhookSecret: GetEnv(prefix+"WEBHOOK_SECRET", ""),
			SandboxMode:   GetEnvAsBool(prefix+"SANDBOX", true),
			IsActive:      true,
		}
	}

	return creds
}

func toEnvKey(code string) string {
	out := make([]byte, 0, len(code))
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// GetEnv retrieves an environment variable with a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt retrieves an environment variable as an integer
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool retrieves an environment variable as a boolean
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsFloat retrieves an environment variable as a float
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
