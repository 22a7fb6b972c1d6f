package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	Payroll  PayrollConfig
	CheckIn  CheckInConfig
	Outbox   OutboxConfig
	HTTP     HTTPConfig
}

type AppConfig struct {
	Port          string
	Env           string
	Timezone      string
	Location      *time.Location
	RBACModelPath string
	MigrationsDir string
}

type DatabaseConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker string
}

type AuthConfig struct {
	JWTSecret string
}

type PayrollConfig struct {
	// CacheTTL of zero disables the payroll result cache.
	CacheTTL    time.Duration
	BulkWorkers int
}

type CheckInConfig struct {
	RateLimit float64
	Burst     int
}

// HTTPConfig throttles /api/v1 per client IP, ahead of token checks.
type HTTPConfig struct {
	RateLimit float64
	Burst     int
}

type OutboxConfig struct {
	PollInterval time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	var cfg Config
	var err error

	cfg.App = AppConfig{
		Port:          withDefault(getenv("PORT"), "3000"),
		Env:           withDefault(getenv("APP_ENV"), "development"),
		Timezone:      withDefault(getenv("APP_TIMEZONE"), "Asia/Bangkok"),
		RBACModelPath: withDefault(getenv("RBAC_MODEL_PATH"), "internal/rbac/infra/model.conf"),
		MigrationsDir: withDefault(getenv("MIGRATIONS_DIR"), "migrations"),
	}

	cfg.Database = DatabaseConfig{
		Host:     getenv("DB_HOST"),
		User:     getenv("DB_USER"),
		Password: getenv("DB_PASSWORD"),
		Name:     getenv("DB_NAME"),
		Port:     withDefault(getenv("DB_PORT"), "5432"),
		SSLMode:  withDefault(getenv("DB_SSLMODE"), "disable"),
	}
	if cfg.Database.MaxRetries, err = intOrDefault(getenv("DB_MAX_RETRIES"), 5); err != nil {
		return nil, fmt.Errorf("config: DB_MAX_RETRIES: %w", err)
	}

	cfg.Redis.Addr = getenv("REDIS_ADDR")
	cfg.Kafka.Broker = getenv("KAFKA_BROKER")
	cfg.Auth.JWTSecret = getenv("JWT_SECRET")

	if cfg.Payroll.CacheTTL, err = durationOrDefault(getenv("PAYROLL_CACHE_TTL"), 0); err != nil {
		return nil, fmt.Errorf("config: PAYROLL_CACHE_TTL: %w", err)
	}
	if cfg.Payroll.BulkWorkers, err = intOrDefault(getenv("PAYROLL_BULK_WORKERS"), 4); err != nil {
		return nil, fmt.Errorf("config: PAYROLL_BULK_WORKERS: %w", err)
	}
	if cfg.Outbox.PollInterval, err = durationOrDefault(getenv("OUTBOX_POLL_INTERVAL"), 3*time.Second); err != nil {
		return nil, fmt.Errorf("config: OUTBOX_POLL_INTERVAL: %w", err)
	}
	if cfg.CheckIn.RateLimit, err = floatOrDefault(getenv("CHECKIN_RATE_LIMIT"), 1); err != nil {
		return nil, fmt.Errorf("config: CHECKIN_RATE_LIMIT: %w", err)
	}
	if cfg.CheckIn.Burst, err = intOrDefault(getenv("CHECKIN_RATE_BURST"), 3); err != nil {
		return nil, fmt.Errorf("config: CHECKIN_RATE_BURST: %w", err)
	}

	if cfg.HTTP.RateLimit, err = floatOrDefault(getenv("API_RATE_LIMIT"), 20); err != nil {
		return nil, fmt.Errorf("config: API_RATE_LIMIT: %w", err)
	}
	if cfg.HTTP.Burst, err = intOrDefault(getenv("API_RATE_BURST"), 40); err != nil {
		return nil, fmt.Errorf("config: API_RATE_BURST: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("config: APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	c.App.Location = loc

	if c.Database.MaxRetries < 1 {
		c.Database.MaxRetries = 1
	}
	if c.Payroll.CacheTTL < 0 {
		return fmt.Errorf("config: PAYROLL_CACHE_TTL must not be negative")
	}
	if c.Payroll.BulkWorkers < 1 {
		return fmt.Errorf("config: PAYROLL_BULK_WORKERS must be at least 1")
	}
	if c.Outbox.PollInterval <= 0 {
		return fmt.Errorf("config: OUTBOX_POLL_INTERVAL must be positive")
	}
	if c.CheckIn.RateLimit <= 0 || c.CheckIn.Burst < 1 {
		return fmt.Errorf("config: CHECKIN_RATE_LIMIT and CHECKIN_RATE_BURST must be positive")
	}
	return nil
}

// RequireDatabase is checked by binaries that open postgres.
func (d DatabaseConfig) RequireDatabase() error {
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("config: DB_HOST, DB_USER and DB_NAME must be set")
	}
	return nil
}

// RequireSecret is checked by the API binary before mounting authenticated
// routes.
func (a AuthConfig) RequireSecret() error {
	if a.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET must be set")
	}
	return nil
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// URL is the form golang-migrate expects.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(d.User), url.QueryEscape(d.Password), d.Host, d.Port, d.Name, d.SSLMode,
	)
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOrDefault(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func floatOrDefault(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func durationOrDefault(raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	if raw == "0" {
		return 0, nil
	}
	return time.ParseDuration(raw)
}
