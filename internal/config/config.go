package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"      validate:"required"`
	Logger      LoggerConfig      `yaml:"logger"      validate:"required"`
	Gin         GinConfig         `yaml:"gin"         validate:"required"`
	Postgres    PostgresConfig    `yaml:"postgres"    validate:"required"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"   validate:"required"`
	Platform    PlatformConfig    `yaml:"platform"    validate:"required"`
	Stripe      StripeConfig      `yaml:"stripe"`
	Identity    IdentityConfig    `yaml:"identity"`
	Rabbit      RabbitConfig      `yaml:"rabbit"`
	Telegram    TelegramConfig    `yaml:"telegram"`
	Idempotency IdempotencyConfig `yaml:"idempotency"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level string onto the wbf logger levels.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"bookpay"      validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

// PlatformConfig carries the marketplace money parameters. The fee is in
// basis points; GST is the tax-inclusive percentage applied to providers who
// charge it.
type PlatformConfig struct {
	FeeBps          int64  `yaml:"fee_bps"          env:"PLATFORM_FEE_BPS"          env-default:"1000" validate:"min=0,max=10000"`
	GSTPercent      int64  `yaml:"gst_percent"      env:"PLATFORM_GST_PERCENT"      env-default:"15"   validate:"min=0,max=100"`
	Currency        string `yaml:"currency"         env:"PLATFORM_CURRENCY"         env-default:"nzd"  validate:"required"`
	PayoutsDisabled bool   `yaml:"payouts_disabled" env:"PLATFORM_PAYOUTS_DISABLED" env-default:"false"`
}

type StripeConfig struct {
	SecretKey     string `yaml:"secret_key"     env:"STRIPE_SECRET_KEY"     env-default:""`
	WebhookSecret string `yaml:"webhook_secret" env:"STRIPE_WEBHOOK_SECRET" env-default:""`
}

type IdentityConfig struct {
	WebhookSecret string `yaml:"webhook_secret" env:"IDENTITY_WEBHOOK_SECRET" env-default:""`
	// SkipVerify disables webhook signature checks for local development.
	// It must never be set in release mode; MustLoad rejects that combination.
	SkipVerify bool `yaml:"skip_verify" env:"WEBHOOK_SKIP_VERIFY" env-default:"false"`
}

type RabbitConfig struct {
	URL      string `yaml:"url"      env:"RABBIT_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBIT_EXCHANGE" env-default:"bookpay.notifications"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

type IdempotencyConfig struct {
	TTL time.Duration `yaml:"ttl" env:"IDEMPOTENCY_TTL" env-default:"24h" validate:"gt=0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if cfg.Gin.Mode == "release" && cfg.Identity.SkipVerify {
		panic("webhook signature verification cannot be skipped in release mode")
	}
	return &cfg
}
