package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every configuration variable.
	EnvPrefix = "playscale"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App   AppConfig
	Shop  ShopConfig
	Redis RedisConfig
	Cart  CartConfig
	CORS  CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PLAYSCALE_APP_ENV" required:"true"`
	Port         string `envconfig:"PLAYSCALE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PLAYSCALE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PLAYSCALE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// ShopConfig points the gateway at the remote PlayScale shop API, the owner of
// record for products, categories, carts, orders and users.
type ShopConfig struct {
	BaseURL      string        `envconfig:"PLAYSCALE_SHOP_BASE_URL" required:"true"`
	Timeout      time.Duration `envconfig:"PLAYSCALE_SHOP_TIMEOUT" default:"10s"`
	RetryMax     int           `envconfig:"PLAYSCALE_SHOP_RETRY_MAX" default:"3"`
	RetryBackoff time.Duration `envconfig:"PLAYSCALE_SHOP_RETRY_BACKOFF" default:"200ms"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PLAYSCALE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"PLAYSCALE_REDIS_ADDR"`
	Password     string        `envconfig:"PLAYSCALE_REDIS_PASSWORD"`
	DB           int           `envconfig:"PLAYSCALE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PLAYSCALE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PLAYSCALE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PLAYSCALE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PLAYSCALE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PLAYSCALE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CartConfig tunes the session-scoped cart mirror and the per-item mutation guard.
type CartConfig struct {
	MirrorTTL time.Duration `envconfig:"PLAYSCALE_CART_MIRROR_TTL" default:"30m"`
	GuardTTL  time.Duration `envconfig:"PLAYSCALE_CART_GUARD_TTL" default:"10s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"PLAYSCALE_CORS_ALLOWED_ORIGINS" default:"*"`
}
