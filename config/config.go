package config

import (
	crypto_rand "crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"MediCare/database"
	"MediCare/models"
	"MediCare/utils"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	SymmetricKey string        `mapstructure:"SYMMETRIC_KEY"`
	SessionTTL   time.Duration `mapstructure:"SESSION_TTL"`
	PasswordCost int           `mapstructure:"PASSWORD_COST"`

	RedisURL          string        `mapstructure:"REDIS_URL"`
	RedisPoolSize     int           `mapstructure:"REDIS_POOL_SIZE"`
	RedisMinIdleConns int           `mapstructure:"REDIS_MIN_IDLE_CONNS"`
	RedisDialTimeout  time.Duration `mapstructure:"REDIS_DIAL_TIMEOUT"`
	RedisReadTimeout  time.Duration `mapstructure:"REDIS_READ_TIMEOUT"`
	RedisMaxRetries   int           `mapstructure:"REDIS_MAX_RETRIES"`

	SimulateLatency   bool   `mapstructure:"SIMULATE_LATENCY"`
	DeletePolicy      string `mapstructure:"DELETE_POLICY"`
	StatusTransitions string `mapstructure:"STATUS_TRANSITIONS"`

	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	MetricsEnabled bool     `mapstructure:"METRICS_ENABLED"`

	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	SMTPFrom string `mapstructure:"SMTP_FROM"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "LOG_FORMAT",
	"SYMMETRIC_KEY", "SESSION_TTL", "PASSWORD_COST",
	"REDIS_URL", "REDIS_POOL_SIZE", "REDIS_MIN_IDLE_CONNS", "REDIS_DIAL_TIMEOUT", "REDIS_READ_TIMEOUT", "REDIS_MAX_RETRIES",
	"SIMULATE_LATENCY", "DELETE_POLICY", "STATUS_TRANSITIONS",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ORIGINS", "METRICS_ENABLED",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM",
}

// Load reads the environment, and a .env file in the working directory when
// one exists.
func Load() (*AppConfig, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file path.
func LoadFile(envFile string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8930")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("PASSWORD_COST", bcrypt.DefaultCost)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 5)
	v.SetDefault("REDIS_DIAL_TIMEOUT", "30s")
	v.SetDefault("REDIS_READ_TIMEOUT", "10s")
	v.SetDefault("REDIS_MAX_RETRIES", 3)
	v.SetDefault("SIMULATE_LATENCY", false)
	v.SetDefault("DELETE_POLICY", string(models.DeleteDangle))
	v.SetDefault("STATUS_TRANSITIONS", string(models.TransitionsStrict))
	v.SetDefault("RATE_LIMIT_RPS", 15)
	v.SetDefault("RATE_LIMIT_BURST", 30)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("SMTP_PORT", 587)

	// Bind env vars explicitly so Unmarshal picks them up
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	// The env file is optional.
	_ = v.ReadInConfig()

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = strings.Split(cfg.CORSOrigins[0], ",")
	}
	for i, origin := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(origin)
	}

	if cfg.SymmetricKey == "" && !cfg.IsProduction() {
		key, err := randomKey()
		if err != nil {
			return nil, err
		}
		cfg.SymmetricKey = key
		log.Warn().Msg("SYMMETRIC_KEY is not set; using a random key, sessions will not survive a restart")
	}

	return cfg, nil
}

func randomKey() (string, error) {
	buf := make([]byte, utils.SymmetricKeyLength/2)
	if _, err := crypto_rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate symmetric key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects configurations the server cannot run with.
func (c *AppConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if len(c.SymmetricKey) != utils.SymmetricKeyLength {
		return fmt.Errorf("SYMMETRIC_KEY must be %d bytes long, got %d", utils.SymmetricKeyLength, len(c.SymmetricKey))
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.PasswordCost != 0 && (c.PasswordCost < bcrypt.MinCost || c.PasswordCost > bcrypt.MaxCost) {
		return fmt.Errorf("PASSWORD_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.PasswordCost)
	}
	if _, err := models.ParseDeletePolicy(c.DeletePolicy); err != nil {
		return fmt.Errorf("DELETE_POLICY: %w", err)
	}
	if _, err := models.ParseTransitionPolicy(c.StatusTransitions); err != nil {
		return fmt.Errorf("STATUS_TRANSITIONS: %w", err)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}
	if c.SMTPHost != "" && c.SMTPPort <= 0 {
		return fmt.Errorf("SMTP_PORT must be set when SMTP_HOST is set")
	}
	return nil
}

// Policies returns the parsed delete and status transition policies.
func (c *AppConfig) Policies() (models.DeletePolicy, models.TransitionPolicy) {
	deletes, _ := models.ParseDeletePolicy(c.DeletePolicy)
	transitions, _ := models.ParseTransitionPolicy(c.StatusTransitions)
	return deletes, transitions
}

func (c *AppConfig) Redis() database.RedisConfig {
	return database.RedisConfig{
		URL:          c.RedisURL,
		PoolSize:     c.RedisPoolSize,
		DialTimeout:  c.RedisDialTimeout,
		MinIdleConns: c.RedisMinIdleConns,
		ReadTimeout:  c.RedisReadTimeout,
		MaxRetries:   c.RedisMaxRetries,
	}
}

func (c *AppConfig) SMTP() utils.SMTPConfig {
	return utils.SMTPConfig{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		User:     c.SMTPUser,
		Password: c.SMTPPass,
		From:     c.SMTPFrom,
	}
}
