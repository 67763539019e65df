package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "dev-secret-change-me"

type Config struct {
	Port        string
	DatabaseURL string
	Production  bool
	LogLevel    string

	JWTSecret string
	JWTTTL    time.Duration

	FrontendURL    string
	AllowedOrigins []string

	RateLimitPerMinute int

	DataEncryptionKey string

	AMQPURL         string
	AMQPExchange    string
	EventBufferSize int

	DBMaxOpenConns int
	DBMaxIdleConns int
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Production: os.Getenv("GIN_MODE") == "release" ||
			os.Getenv("ENVIRONMENT") == "production" ||
			os.Getenv("ENV") == "production",
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),

		DataEncryptionKey: os.Getenv("DATA_ENCRYPTION_KEY"),

		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "expenses"),
	}

	var err error
	if cfg.JWTTTL, err = getEnvDuration("JWT_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = getEnvInt("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}
	if cfg.EventBufferSize, err = getEnvInt("EVENT_BUFFER_SIZE", 256); err != nil {
		return nil, err
	}
	if cfg.DBMaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", 25); err != nil {
		return nil, err
	}
	if cfg.DBMaxIdleConns, err = getEnvInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" && !cfg.Production {
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL environment variable is required")
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET environment variable is required in production")
	} else if c.Production && c.JWTSecret == devJWTSecret {
		problems = append(problems, "JWT_SECRET must not use the development default in production")
	}

	if c.JWTTTL <= 0 {
		problems = append(problems, "JWT_TTL must be positive")
	}

	if c.RateLimitPerMinute < 1 {
		problems = append(problems, "RATE_LIMIT_PER_MINUTE must be at least 1")
	}

	if c.DataEncryptionKey != "" && len(c.DataEncryptionKey) != 32 {
		problems = append(problems, "DATA_ENCRYPTION_KEY must be exactly 32 characters")
	}

	if c.EventBufferSize < 1 {
		problems = append(problems, "EVENT_BUFFER_SIZE must be at least 1")
	}

	if c.DBMaxOpenConns < 1 || c.DBMaxIdleConns < 0 {
		problems = append(problems, "database pool sizes must be positive")
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

// CORSOrigins returns the frontend URL followed by any extra allowed origins.
func (c *Config) CORSOrigins() []string {
	origins := []string{c.FrontendURL}
	for _, o := range c.AllowedOrigins {
		if o != c.FrontendURL {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
