package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"required"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"cookie-clicker"`
	Version     string `env:"VERSION" envDefault:"dev"`
	LogDir      string `env:"LOG_DIR"`

	// Persistence adapter
	StorageDriver    string        `env:"STORAGE_DRIVER" envDefault:"memory" validate:"oneof=memory postgres sqlite"`
	StructuredValues bool          `env:"STORAGE_JSON_VALUES" envDefault:"false"`
	DBUser           string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword       string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost           string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort           string        `env:"DB_PORT" envDefault:"5432"`
	DBName           string        `env:"DB_NAME" envDefault:"cookieclicker"`
	DBMaxConns       int           `env:"DB_MAX_CONNS" envDefault:"10" validate:"min=1"`
	DBMaxConnIdle    time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLife    time.Duration `env:"DB_MAX_CONN_LIFE" envDefault:"1h"`
	SQLitePath       string        `env:"SQLITE_PATH" envDefault:"data/cookies.db"`
	CacheSize        int           `env:"CACHE_SIZE" envDefault:"256" validate:"min=0"`
	CacheTTL         time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Game policy knobs
	TickInterval      time.Duration `env:"TICK_INTERVAL" envDefault:"100ms" validate:"gt=0"`
	SaveMode          string        `env:"SAVE_MODE" envDefault:"debounced" validate:"oneof=immediate periodic debounced"`
	SaveInterval      time.Duration `env:"SAVE_INTERVAL" envDefault:"1s" validate:"gt=0"`
	PricingPolicy     string        `env:"PRICING_POLICY" envDefault:"incremental" validate:"oneof=incremental closed_form"`
	MilestoneInterval int64         `env:"MILESTONE_INTERVAL" envDefault:"100" validate:"min=1"`
	CatalogPath       string        `env:"CATALOG_PATH"`

	// Identity
	PlayerID   string `env:"PLAYER_ID" envDefault:"demo" validate:"required,max=64,excludesall=:"`
	PlayerName string `env:"PLAYER_NAME" envDefault:"DemoUser" validate:"max=100"`

	// HTTP access. An empty key leaves the API open.
	APIKey         string   `env:"API_KEY"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Tracing is off unless an OTLP endpoint is set
	OTELEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTELEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when no environment is present
func Default() Config {
	return Config{
		Port:              DefaultPort,
		LogLevel:          "info",
		LogFormat:         "text",
		Environment:       "dev",
		ServiceName:       "cookie-clicker",
		Version:           "dev",
		StorageDriver:     StorageMemory,
		DBUser:            "postgres",
		DBPassword:        "postgres",
		DBHost:            "localhost",
		DBPort:            "5432",
		DBName:            "cookieclicker",
		DBMaxConns:        10,
		DBMaxConnIdle:     5 * time.Minute,
		DBMaxConnLife:     time.Hour,
		SQLitePath:        "data/cookies.db",
		CacheSize:         256,
		CacheTTL:          5 * time.Minute,
		TickInterval:      DefaultTickInterval,
		SaveMode:          DefaultSaveMode,
		SaveInterval:      DefaultSaveInterval,
		PricingPolicy:     DefaultPricingPolicy,
		MilestoneInterval: DefaultMilestoneInterval,
		PlayerID:          "demo",
		PlayerName:        "DemoUser",
		OTELEnabled:       true,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Validate checks struct tags on the configuration
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// TickFraction is the fraction of one second a single tick represents
func (c *Config) TickFraction() float64 {
	return c.TickInterval.Seconds()
}
