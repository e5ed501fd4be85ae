package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	StoreAPI    StoreAPIConfig
	Session     SessionConfig
	RedisAddr   string
	DBURL       string // DB_URL: outbox storage; empty disables event recording
	Kafka       KafkaConfig
	TaxRate     decimal.Decimal
	Cloudinary  CloudinaryConfig
	Midtrans    MidtransConfig
}

// StoreAPIConfig points at the remote REST API that owns every resource.
type StoreAPIConfig struct {
	BaseURL string
	Timeout time.Duration
	// ServiceToken authorizes calls made without a shopper, such as payment
	// notifications. Empty disables them.
	ServiceToken string
}

type SessionConfig struct {
	TTL time.Duration
}

type KafkaConfig struct {
	Broker string
	Topic  string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type MidtransConfig struct {
	ServerKey    string
	IsProduction bool
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_API_TIMEOUT", "30s")
	viper.SetDefault("SESSION_TTL", "168h")
	viper.SetDefault("KAFKA_TOPIC", "storefront.events")
	viper.SetDefault("TAX_RATE", "0")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeout, err := time.ParseDuration(getEnvOrViper("STORE_API_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_API_TIMEOUT: %w", err)
	}

	sessionTTL, err := time.ParseDuration(getEnvOrViper("SESSION_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	taxRate, err := decimal.NewFromString(getEnvOrViper("TAX_RATE", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE: %w", err)
	}
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("TAX_RATE must not be negative")
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "3000"),
		Environment: getEnvOrViper("APP_ENV", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		StoreAPI: StoreAPIConfig{
			BaseURL:      strings.TrimSuffix(strings.TrimSpace(getEnvOrViper("STORE_API_URL", "")), "/"),
			Timeout:      timeout,
			ServiceToken: strings.TrimSpace(getEnvOrViper("STORE_API_SERVICE_TOKEN", "")),
		},
		Session: SessionConfig{
			TTL: sessionTTL,
		},
		RedisAddr: getEnvOrViper("REDIS_ADDR", "localhost:6379"),
		DBURL:     strings.TrimSpace(getEnvOrViper("DB_URL", "")),
		Kafka: KafkaConfig{
			Broker: strings.TrimSpace(getEnvOrViper("KAFKA_BROKER", "")),
			Topic:  getEnvOrViper("KAFKA_TOPIC", "storefront.events"),
		},
		TaxRate: taxRate,
		Cloudinary: CloudinaryConfig{
			CloudName: strings.TrimSpace(getEnvOrViper("CLOUDINARY_CLOUD_NAME", "")),
			APIKey:    strings.TrimSpace(getEnvOrViper("CLOUDINARY_API_KEY", "")),
			APISecret: strings.TrimSpace(getEnvOrViper("CLOUDINARY_API_SECRET", "")),
			Folder:    getEnvOrViper("CLOUDINARY_FOLDER", "clothing-store/products"),
		},
		Midtrans: MidtransConfig{
			ServerKey:    strings.TrimSpace(getEnvOrViper("MIDTRANS_SERVER_KEY", "")),
			IsProduction: getEnvOrViper("MIDTRANS_IS_PRODUCTION", "false") == "true",
		},
	}

	if cfg.StoreAPI.BaseURL == "" {
		return nil, fmt.Errorf("STORE_API_URL is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
