package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, redis address, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	Hold    HoldConfig
	Admin   AdminConfig
	Catalog CatalogConfig
	Gateway GatewayConfig
	Mail    MailConfig
	Queue   QueueConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" required:"true"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	MaxRetries   int           `envconfig:"REDIS_MAX_RETRIES" default:"3"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
	KeyPrefix    string        `envconfig:"REDIS_KEY_PREFIX" default:"promo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type HoldConfig struct {
	TTL         time.Duration `envconfig:"HOLD_TTL" default:"15m"`
	TokenSecret string        `envconfig:"HOLD_TOKEN_SECRET" required:"true"`
}

type AdminConfig struct {
	// bcrypt hash of the shared secret sent in X-Admin-Secret
	SecretHash string `envconfig:"ADMIN_SECRET_HASH" required:"true"`
}

type CatalogConfig struct {
	File string `envconfig:"CATALOG_FILE"`
}

type GatewayConfig struct {
	BaseURL       string        `envconfig:"PAYMENT_GATEWAY_URL" required:"true"`
	APIKey        string        `envconfig:"PAYMENT_API_KEY" required:"true"`
	WebhookSecret string        `envconfig:"PAYMENT_WEBHOOK_SECRET" required:"true"`
	Timeout       time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`
	SuccessURL    string        `envconfig:"CHECKOUT_SUCCESS_URL" default:"http://localhost:3000/checkout/success"`
	CancelURL     string        `envconfig:"CHECKOUT_CANCEL_URL" default:"http://localhost:3000/checkout/cancel"`
}

type MailConfig struct {
	Host     string        `envconfig:"SMTP_HOST" default:"localhost"`
	Port     string        `envconfig:"SMTP_PORT" default:"587"`
	Username string        `envconfig:"SMTP_USERNAME"`
	Password string        `envconfig:"SMTP_PASSWORD"`
	From     string        `envconfig:"MAIL_FROM" default:"orders@localhost"`
	Timeout  time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
}

type QueueConfig struct {
	Concurrency   int           `envconfig:"QUEUE_CONCURRENCY" default:"5"`
	EmailMaxRetry int           `envconfig:"QUEUE_EMAIL_MAX_RETRY" default:"5"`
	EmailTimeout  time.Duration `envconfig:"QUEUE_EMAIL_TIMEOUT" default:"30s"`
}

func (c *MailConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func LoadConfig() (Config, error) {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

const TestAdminSecret = "test-admin-secret"

func testAdminSecretHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestAdminSecret), bcrypt.MinCost)
	if err != nil {
		panic("failed to hash test admin secret: " + err.Error())
	}
	return string(hash)
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Redis: RedisConfig{
			Addr:         "localhost:16379",
			PoolSize:     10,
			MaxRetries:   1,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 2 * time.Second,
			KeyPrefix:    "promo-test",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Hold: HoldConfig{
			TTL:         15 * time.Minute,
			TokenSecret: "test-hold-token-secret",
		},
		Admin: AdminConfig{
			SecretHash: testAdminSecretHash(),
		},
		Gateway: GatewayConfig{
			BaseURL:       "http://localhost:18080",
			APIKey:        "test-api-key",
			WebhookSecret: "test-webhook-secret",
			Timeout:       2 * time.Second,
			SuccessURL:    "http://localhost:3000/checkout/success",
			CancelURL:     "http://localhost:3000/checkout/cancel",
		},
		Mail: MailConfig{
			Host:    "localhost",
			Port:    "1025",
			From:    "orders@example.com",
			Timeout: 2 * time.Second,
		},
		Queue: QueueConfig{
			Concurrency:   1,
			EmailMaxRetry: 1,
			EmailTimeout:  5 * time.Second,
		},
	}
}
