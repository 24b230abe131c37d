package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Payment  PaymentConfig
	Services ServicesConfig
	NewRelic NewRelicConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PaymentConfig contains payment orchestration configuration
type PaymentConfig struct {
	GatewayTimeout   int     // seconds, per provider call
	ConfigCacheTTL   int     // seconds, environment payment config cache
	DefaultCurrency  string
	CentralizedCreds map[string]GatewayCredentials // platform-level creds by gateway code
}

// ServicesConfig contains URLs for the external collaborator services
type ServicesConfig struct {
	TaxServiceURL      string
	ExchangeServiceURL string
}

// NewRelicConfig contains New Relic observability configuration
type NewRelicConfig struct {
	Enabled    bool
	AppName    string
	LicenseKey string
}
