package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const ProdEnv = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"dev"`
	ProdOrigins       string        `envconfig:"PROD_ORIGINS"`
	HTTPAddr          string        `envconfig:"HTTP_ADDR" default:":8080"`
	DBDSN             string        `envconfig:"DB_DSN" required:"true"`
	MigrateOnStart    bool          `envconfig:"MIGRATE_ON_START" default:"true"`
	JWTSecret         string        `envconfig:"JWT_SECRET" required:"true"`
	JWTAccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
	BcryptCost        int           `envconfig:"BCRYPT_COST" default:"12"`
	StoragePath       string        `envconfig:"STORAGE_PATH" default:"./data"`

	// RabbitMQ. Without AMQP_URL booking notifications are only logged.
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"booking.exchange"`
}

// MailConfig holds the SMTP settings of the mailer worker.
type MailConfig struct {
	SMTPHost     string `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	From         string `envconfig:"MAIL_FROM" default:"no-reply@auditorium.local"`
	Currency     string `envconfig:"MAIL_CURRENCY" default:"₹"`
}

// WorkerConfig configures the mailer worker, which needs no database or JWT settings.
type WorkerConfig struct {
	AppEnv       string `envconfig:"APP_ENV" default:"dev"`
	AMQPURL      string `envconfig:"AMQP_URL" required:"true"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"booking.exchange"`
	MailQueue    string `envconfig:"MAIL_QUEUE" default:"mail.booking.q"`

	MailConfig
}

func (c *WorkerConfig) IsProduction() bool {
	return c.AppEnv == ProdEnv
}

// IsProduction reports whether APP_ENV selects the production profile.
func (c *Config) IsProduction() bool {
	return c.AppEnv == ProdEnv
}

// Origins splits PROD_ORIGINS on commas.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.ProdOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// LoadWorker reads the mailer worker's configuration the same way Load does.
func LoadWorker() (*WorkerConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg WorkerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// Load loads configuration from .env (optional) and environment variables.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.JWTAccessTokenTTL <= 0 {
		return nil, fmt.Errorf("JWT_ACCESS_TOKEN_TTL must be positive")
	}

	return &cfg, nil
}
