package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the whole service configuration.
type Config struct {
	App       AppConfig       `envconfig:"APP"`
	Postgres  PostgresConfig  `envconfig:"POSTGRES"`
	Redis     RedisConfig     `envconfig:"REDIS"`
	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`
	JWT       JWTConfig       `envconfig:"JWT"`
	Kafka     KafkaConfig     `envconfig:"KAFKA"`
	S3        S3Config        `envconfig:"S3"`
	Inference InferenceConfig `envconfig:"INFERENCE"`
	Email     EmailConfig     `envconfig:"EMAIL"`
	Credits   CreditsConfig   `envconfig:"CREDITS"`
	Webhooks  WebhooksConfig  `envconfig:"WEBHOOKS"`
}

type AppConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	Development     bool          `envconfig:"DEVELOPMENT" default:"false"`
	PublicURL       string        `envconfig:"PUBLIC_URL" default:"http://localhost:3000"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"false"`
	MaxUploadBytes  int64         `envconfig:"MAX_UPLOAD_BYTES" default:"20971520"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type PostgresConfig struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         int    `envconfig:"PORT" default:"5432"`
	User         string `envconfig:"USER" default:"user"`
	Password     string `envconfig:"PASSWORD" default:"password"`
	DB           string `envconfig:"DB" default:"database"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"16"`
	MaxIdleConns int    `envconfig:"MAX_IDLE_CONNS" default:"8"`
}

// DSN builds the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

type RedisConfig struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         int    `envconfig:"PORT" default:"6379"`
	DB           int    `envconfig:"DB" default:"0"`
	Password     string `envconfig:"PASSWORD" default:""`
	PoolSize     int    `envconfig:"POOL_SIZE" default:"10"`
	MinIdleConns int    `envconfig:"MIN_IDLE_CONNS" default:"2"`
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RateLimitConfig selects the limiter backend ("memory" or "redis") and the per-class budgets.
// TrustedProxies is the number of reverse proxies whose X-Forwarded-For hops are honoured.
type RateLimitConfig struct {
	Backend         string        `envconfig:"BACKEND" default:"memory"`
	ProcessingLimit int           `envconfig:"PROCESSING_LIMIT" default:"20"`
	APILimit        int           `envconfig:"API_LIMIT" default:"120"`
	Window          time.Duration `envconfig:"WINDOW" default:"1m"`
	TrustedProxies  int           `envconfig:"TRUSTED_PROXIES" default:"0"`
}

type JWTConfig struct {
	SecretKey  string        `envconfig:"SECRET_KEY" default:"my_super_secret_key"`
	Expiration time.Duration `envconfig:"EXPIRATION" default:"720h"`
}

// KafkaConfig: an empty broker list disables usage event publishing.
type KafkaConfig struct {
	Brokers []string `envconfig:"BROKERS" default:""`
	Topic   string   `envconfig:"TOPIC" default:"image-usage"`
}

type S3Config struct {
	Endpoint  string `envconfig:"ENDPOINT" default:""`
	Region    string `envconfig:"REGION" default:"auto"`
	Bucket    string `envconfig:"BUCKET" default:"pixelift"`
	AccessKey string `envconfig:"ACCESS_KEY" default:""`
	SecretKey string `envconfig:"SECRET_KEY" default:""`
}

type InferenceConfig struct {
	BaseURL          string        `envconfig:"BASE_URL" default:"https://api.replicate.com"`
	Token            string        `envconfig:"TOKEN" default:""`
	SyncTimeout      time.Duration `envconfig:"SYNC_TIMEOUT" default:"120s"`
	PollInterval     time.Duration `envconfig:"POLL_INTERVAL" default:"5s"`
	PollMaxAttempts  int           `envconfig:"POLL_MAX_ATTEMPTS" default:"120"`
	MaxDownloadBytes int64         `envconfig:"MAX_DOWNLOAD_BYTES" default:"104857600"`
}

type EmailConfig struct {
	ResendAPIKey string        `envconfig:"RESEND_API_KEY" default:""`
	From         string        `envconfig:"FROM" default:"Pixelift <noreply@pixelift.pl>"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

type CreditsConfig struct {
	LowThreshold int `envconfig:"LOW_THRESHOLD" default:"3"`
}

type WebhooksConfig struct {
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// Load reads variables from the env file at path (if it exists) and then
// from the process environment. Process variables win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}
	return &cfg, nil
}
