package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	_ "github.com/joho/godotenv/autoload"
)

// Config is read from the environment. A .env file in the working directory
// is loaded first when present.
type Config struct {
	AppEnv             string   `env:"APP_ENV" envDefault:"development"`
	Port               int      `env:"PORT" envDefault:"8080"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:5174,http://localhost:5175,https://interior-design-website-umber.vercel.app"`
	PricingTablesPath  string   `env:"PRICING_TABLES_PATH"`

	AWSRegion            string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID       string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey   string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint     string `env:"DYNAMODB_ENDPOINT"`
	EstimatesTable       string `env:"ESTIMATES_TABLE" envDefault:"estimates"`
	ContactsTable        string `env:"CONTACTS_TABLE" envDefault:"contacts"`
	DynamoDBEnsureTables bool   `env:"DYNAMODB_ENSURE_TABLES" envDefault:"false"`

	CatalogDBDriver string `env:"CATALOG_DB_DRIVER" envDefault:"sqlite"`
	CatalogDBDSN    string `env:"CATALOG_DB_DSN" envDefault:"file:catalog.db?_pragma=busy_timeout(5000)"`

	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	RateLimitMax    int64         `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`

	TelegramToken  string `env:"TELEGRAM_TOKEN"`
	TelegramChatID int64  `env:"TELEGRAM_CHAT_ID"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.CatalogDBDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported CATALOG_DB_DRIVER %q (want sqlite or postgres)", cfg.CatalogDBDriver)
	}
	if cfg.RateLimitMax <= 0 || cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX and RATE_LIMIT_WINDOW must be positive")
	}
	for i, o := range cfg.CORSAllowedOrigins {
		o = strings.TrimSpace(o)
		if o != "" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must start with http:// or https://", o)
		}
		cfg.CORSAllowedOrigins[i] = o
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// TelegramEnabled reports whether lead notifications can be sent.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
