package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, retry limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Webhook   WebhookConfig
	Processor ProcessorConfig
	Reconcile ReconcileConfig
	Provider  ProviderConfig
	Lock      LockConfig
	Breaker   BreakerConfig
	Recovery  RecoveryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

// RedisConfig lists the independent lock stores for quorum acquisition.
// A single address still works; quorum is then 1 of 1.
type RedisConfig struct {
	Addrs    []string `envconfig:"REDIS_ADDRS" default:"localhost:6379"`
	Password string   `envconfig:"REDIS_PASSWORD" default:""`
	DB       int      `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Webhook-Signature,X-Correlation-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type WebhookConfig struct {
	// Shared secret for HMAC signature verification of inbound deliveries
	SigningSecret string `envconfig:"WEBHOOK_SIGNING_SECRET" required:"true"`
}

type ProcessorConfig struct {
	Workers          int           `envconfig:"PROCESSOR_WORKERS" default:"4"`
	PollInterval     time.Duration `envconfig:"PROCESSOR_POLL_INTERVAL" default:"500ms"`
	ClaimLease       time.Duration `envconfig:"PROCESSOR_CLAIM_LEASE" default:"2m"`
	RetryMax         int           `envconfig:"PROCESSOR_RETRY_MAX" default:"5"`
	RetryBackoffBase time.Duration `envconfig:"PROCESSOR_RETRY_BACKOFF_BASE" default:"30s"`
	RetryBackoffMax  time.Duration `envconfig:"PROCESSOR_RETRY_BACKOFF_MAX" default:"30m"`
	SweepInterval    time.Duration `envconfig:"PROCESSOR_SWEEP_INTERVAL" default:"1m"`
	RecordRetention  time.Duration `envconfig:"PROCESSOR_RECORD_RETENTION" default:"72h"`
}

type ReconcileConfig struct {
	Interval             time.Duration `envconfig:"RECONCILE_INTERVAL" default:"60s"`
	LookbackMinutes      int           `envconfig:"RECONCILE_LOOKBACK_MINUTES" default:"5"`
	HardCeilingMinutes   int           `envconfig:"RECONCILE_HARD_CEILING_MINUTES" default:"30"`
	MaxOrdersPerRun      int           `envconfig:"RECONCILE_MAX_ORDERS_PER_RUN" default:"50"`
	MaxAPICallsPerMinute int           `envconfig:"RECONCILE_MAX_API_CALLS_PER_MINUTE" default:"60"`
	ProviderName         string        `envconfig:"RECONCILE_PROVIDER_NAME" default:"generic"`
}

type ProviderConfig struct {
	BaseURL        string        `envconfig:"PROVIDER_BASE_URL" required:"true"`
	MerchantID     string        `envconfig:"PROVIDER_MERCHANT_ID" required:"true"`
	MerchantSecret string        `envconfig:"PROVIDER_MERCHANT_SECRET" required:"true"`
	Timeout        time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
}

type LockConfig struct {
	TTL          time.Duration `envconfig:"LOCK_TTL" default:"30s"`
	RetryDelay   time.Duration `envconfig:"LOCK_RETRY_DELAY" default:"200ms"`
	RetryCount   int           `envconfig:"LOCK_RETRY_COUNT" default:"8"`
	ExtendPeriod time.Duration `envconfig:"LOCK_EXTEND_PERIOD" default:"10s"`
}

type BreakerConfig struct {
	ConsecutiveFailures uint32        `envconfig:"BREAKER_CONSECUTIVE_FAILURES" default:"5"`
	Cooldown            time.Duration `envconfig:"BREAKER_COOLDOWN" default:"30s"`
	Window              time.Duration `envconfig:"BREAKER_WINDOW" default:"60s"`
}

type RecoveryConfig struct {
	// Operator token for the manual recovery surface; auth proper lives upstream
	OperatorToken string `envconfig:"RECOVERY_OPERATOR_TOKEN" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *ReconcileConfig) Lookback() time.Duration {
	return time.Duration(c.LookbackMinutes) * time.Minute
}

func (c *ReconcileConfig) HardCeiling() time.Duration {
	return time.Duration(c.HardCeilingMinutes) * time.Minute
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if len(cfg.Redis.Addrs) == 0 {
		return Config{}, fmt.Errorf("REDIS_ADDRS must list at least one lock store")
	}
	for _, addr := range cfg.Redis.Addrs {
		if strings.TrimSpace(addr) == "" {
			return Config{}, fmt.Errorf("REDIS_ADDRS contains an empty address")
		}
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Redis: RedisConfig{
			Addrs: []string{"localhost:16379"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Webhook: WebhookConfig{
			SigningSecret: "test-webhook-secret",
		},
		Processor: ProcessorConfig{
			Workers:          1,
			PollInterval:     10 * time.Millisecond,
			ClaimLease:       time.Minute,
			RetryMax:         3,
			RetryBackoffBase: 10 * time.Millisecond,
			RetryBackoffMax:  100 * time.Millisecond,
			SweepInterval:    time.Minute,
			RecordRetention:  time.Hour,
		},
		Reconcile: ReconcileConfig{
			Interval:             time.Minute,
			LookbackMinutes:      5,
			HardCeilingMinutes:   30,
			MaxOrdersPerRun:      10,
			MaxAPICallsPerMinute: 600,
			ProviderName:         "generic",
		},
		Provider: ProviderConfig{
			BaseURL:        "http://localhost:18080",
			MerchantID:     "merchant-test",
			MerchantSecret: "merchant-secret",
			Timeout:        time.Second,
		},
		Lock: LockConfig{
			TTL:          5 * time.Second,
			RetryDelay:   10 * time.Millisecond,
			RetryCount:   3,
			ExtendPeriod: time.Second,
		},
		Breaker: BreakerConfig{
			ConsecutiveFailures: 3,
			Cooldown:            50 * time.Millisecond,
			Window:              time.Second,
		},
		Recovery: RecoveryConfig{
			OperatorToken: "test-operator-token",
		},
	}
}
