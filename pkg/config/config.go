package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig   `envconfig:"SERVER"`
	Database DatabaseConfig `envconfig:"DB"`
	Redis    RedisConfig    `envconfig:"REDIS"`
	Session  SessionConfig  `envconfig:"SESSION"`
	AI       AIConfig       `envconfig:"AI"`
	Storage  StorageConfig  `envconfig:"STORAGE"`
	Review   ReviewConfig   `envconfig:"REVIEW"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"HOST" default:"localhost"`
	Port        string `envconfig:"PORT" default:"5432"`
	User        string `envconfig:"USER" default:"postgres"`
	Password    string `envconfig:"PASSWORD" default:"postgres"`
	Name        string `envconfig:"NAME" default:"contact_qa"`
	SSLMode     string `envconfig:"SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration. When disabled, drafts live in process memory.
type RedisConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// SessionConfig holds browser-session token settings
type SessionConfig struct {
	Secret     string        `envconfig:"SECRET" default:"change-me-session-secret"`
	TTL        time.Duration `envconfig:"TTL" default:"12h"`
	CookieName string        `envconfig:"COOKIE_NAME" default:"qa_session"`
	HeaderName string        `envconfig:"HEADER_NAME" default:"X-Session-Token"`
}

// AIConfig holds the chat-summary / contact-assessment gateway settings
type AIConfig struct {
	BaseURL           string        `envconfig:"BASE_URL" default:"https://chat-summary.azurewebsites.net/api"`
	Timeout           time.Duration `envconfig:"TIMEOUT" default:"30s"`
	RetryMaxElapsed   time.Duration `envconfig:"RETRY_MAX_ELAPSED" default:"10s"`
	GenerationTimeout time.Duration `envconfig:"GENERATION_TIMEOUT" default:"90s"`
}

// StorageConfig holds MinIO configuration for uploaded transcripts
type StorageConfig struct {
	Enabled         bool   `envconfig:"ENABLED" default:"false"`
	Endpoint        string `envconfig:"ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"BUCKET" default:"contact-transcripts"`
	UseSSL          bool   `envconfig:"USE_SSL" default:"false"`
	MaxUploadBytes  int64  `envconfig:"MAX_UPLOAD_BYTES" default:"5242880"`
}

// ReviewConfig holds transcript review timings
type ReviewConfig struct {
	TagEntryTimeout time.Duration `envconfig:"TAG_ENTRY_TIMEOUT" default:"5s"`
	LegendTimeout   time.Duration `envconfig:"LEGEND_TIMEOUT" default:"7s"`
	IdleEviction    time.Duration `envconfig:"IDLE_EVICTION" default:"30m"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.IsProduction() && c.Session.Secret == "change-me-session-secret" {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.AI.Timeout <= 0 || c.AI.GenerationTimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT and AI_GENERATION_TIMEOUT must be positive")
	}
	if c.Review.TagEntryTimeout <= 0 || c.Review.LegendTimeout <= 0 {
		return fmt.Errorf("REVIEW_TAG_ENTRY_TIMEOUT and REVIEW_LEGEND_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
