// Package config provides application configuration.
//
// Values come from the environment, optionally seeded from a .env file in the
// working directory. Variables already set in the environment win over .env.
package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE works without system zoneinfo

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Port           string        `env:"PORT"            envDefault:"5175"`
	LogLevel       string        `env:"LOG_LEVEL"       envDefault:"info"`
	Env            string        `env:"NODE_ENV"        envDefault:"development"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN"   envDefault:"http://localhost:5173"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
	DBPath      string `env:"DB_PATH"      envDefault:"./data/phonicle.db"`
	RedisAddr   string `env:"REDIS_ADDR"   envDefault:"localhost:6379"`
	SavePath    string `env:"SAVE_PATH"    envDefault:"./data/save.json"`

	JWTSecret      string `env:"JWT_SECRET"       envDefault:"dev_secret_change_me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS" envDefault:"180"`
	CookieName     string `env:"COOKIE_NAME"      envDefault:"wordle_token"`

	WordsAnswersFile string `env:"WORDS_ANSWERS_FILE"`
	WordsAllowedFile string `env:"WORDS_ALLOWED_FILE"`
	Timezone         string `env:"TIMEZONE" envDefault:"UTC"`
}

// Load reads .env (if present) and the environment, then validates.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch c.StoreDriver {
	case DriverMemory:
	case DriverSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH cannot be empty with STORE_DRIVER=sqlite")
		}
	case DriverRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR cannot be empty with STORE_DRIVER=redis")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of memory, sqlite, redis; got %q", c.StoreDriver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.JWTExpiresDays <= 0 {
		return fmt.Errorf("JWT_EXPIRES_DAYS must be > 0")
	}
	if c.CookieName == "" {
		return fmt.Errorf("COOKIE_NAME cannot be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be > 0")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE: %w", err)
	}
	return nil
}

// IsProduction reports whether cookies must be Secure.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Location returns the time zone that decides when the daily word changes.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TokenTTL is how long a player token stays valid.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}
