package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DataDir         string
	TemplateDir     string
	LogLevel        string
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment. Values in envFile are applied
// first without overriding variables already set; a missing envFile is fine.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		DataDir:     getEnv("DATA_DIR", "data"),
		TemplateDir: getEnv("TEMPLATE_DIR", "templates"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if err := ValidatePort(cfg.Port); err != nil {
		return nil, err
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64); err != nil || cfg.RateLimitRPS < 0 {
		return nil, fmt.Errorf("config: invalid RATE_LIMIT_RPS %q", os.Getenv("RATE_LIMIT_RPS"))
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20")); err != nil || cfg.RateLimitBurst < 1 {
		return nil, fmt.Errorf("config: invalid RATE_LIMIT_BURST %q", os.Getenv("RATE_LIMIT_BURST"))
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("config: invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// ValidatePort accepts TCP port numbers 1-65535
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("config: invalid port %q", port)
	}
	return nil
}

// Addr is the listen address for all interfaces
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
