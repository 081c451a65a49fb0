package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "SHOP"

	EnvAppEnv             = "SHOP_APP_ENV"
	EnvPort               = "SHOP_APP_PORT"
	EnvLogLevel           = "SHOP_LOG_LEVEL"
	EnvCORSOrigins        = "SHOP_HTTP_CORS_ORIGINS"
	EnvDefaultLimit       = "SHOP_PAGINATION_DEFAULT_LIMIT"
	EnvRedisURL           = "SHOP_REDIS_URL"
	EnvRedisAddr          = "SHOP_REDIS_ADDR"
	EnvRateLimitWindow    = "SHOP_RATE_LIMIT_WINDOW"
	EnvRateLimitPerIP     = "SHOP_RATE_LIMIT_PER_IP"
	EnvMetricsEnabled     = "SHOP_METRICS_ENABLED"
	EnvIdempotencyTTL     = "SHOP_IDEMPOTENCY_TTL"
	EnvHTTPShutdownPeriod = "SHOP_HTTP_SHUTDOWN_TIMEOUT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	Pagination  PaginationConfig
	Redis       RedisConfig
	RateLimit   RateLimitConfig
	Idempotency IdempotencyConfig
	Metrics     MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Pagination.DefaultLimit <= 0 {
		return fmt.Errorf("%s must be positive", EnvDefaultLimit)
	}
	if c.RateLimit.PerIP < 0 {
		return fmt.Errorf("%s must not be negative", EnvRateLimitPerIP)
	}
	return nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOP_APP_ENV" default:"dev"`
	Port         string `envconfig:"SHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "production")
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `envconfig:"SHOP_HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SHOP_HTTP_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `envconfig:"SHOP_HTTP_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHOP_HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
	CORSOrigins     []string      `envconfig:"SHOP_HTTP_CORS_ORIGINS" default:"http://localhost:3000"`
}

type PaginationConfig struct {
	DefaultLimit int `envconfig:"SHOP_PAGINATION_DEFAULT_LIMIT" default:"10"`
}

// RedisConfig is optional. With neither URL nor Address set the service runs
// without idempotency records or rate limiting.
type RedisConfig struct {
	URL          string        `envconfig:"SHOP_REDIS_URL"`
	Address      string        `envconfig:"SHOP_REDIS_ADDR"`
	Password     string        `envconfig:"SHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOP_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"SHOP_REDIS_WRITE_TIMEOUT" default:"3s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type RateLimitConfig struct {
	Window time.Duration `envconfig:"SHOP_RATE_LIMIT_WINDOW" default:"1s"`
	PerIP  int           `envconfig:"SHOP_RATE_LIMIT_PER_IP" default:"0"`
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"SHOP_IDEMPOTENCY_TTL" default:"24h"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"SHOP_METRICS_ENABLED" default:"true"`
}
