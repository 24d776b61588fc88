package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_UnknownDriver(t *testing.T) {
	// Given: a store driver that does not exist
	t.Setenv("STORE_DRIVER", "mongo")

	// When: the config is loaded
	_, err := Load()

	// Then: it is rejected
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}

func TestLoad_FromEnv(t *testing.T) {
	// Given: a full environment
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE_DRIVER", " SQLite ")
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_DAYS", "2")
	t.Setenv("COOKIE_NAME", "tok")
	t.Setenv("TIMEZONE", "Europe/London")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("NODE_ENV", "production")

	// When: it is loaded
	cfg, err := Load()

	// Then: every field is parsed
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "tok", cfg.CookieName)
	assert.Equal(t, 48*time.Hour, cfg.TokenTTL())
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "Europe/London", cfg.Location().String())
	assert.True(t, cfg.IsProduction())
}

func valid() Config {
	return Config{
		Port:           "5175",
		LogLevel:       "info",
		StoreDriver:    DriverMemory,
		JWTSecret:      "x",
		JWTExpiresDays: 1,
		CookieName:     "c",
		RequestTimeout: time.Second,
		Timezone:       "UTC",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := valid()
		assert.NoError(t, c.Validate())
	})

	cases := map[string]func(*Config){
		"unknown driver": func(c *Config) { c.StoreDriver = "mongo" },
		"sqlite no path": func(c *Config) { c.StoreDriver, c.DBPath = DriverSQLite, "" },
		"redis no addr":  func(c *Config) { c.StoreDriver, c.RedisAddr = DriverRedis, "" },
		"bad level":      func(c *Config) { c.LogLevel = "loud" },
		"no secret":      func(c *Config) { c.JWTSecret = "" },
		"zero expiry":    func(c *Config) { c.JWTExpiresDays = 0 },
		"bad timezone":   func(c *Config) { c.Timezone = "Mars/Olympus" },
		"no cookie name": func(c *Config) { c.CookieName = "" },
		"no timeout":     func(c *Config) { c.RequestTimeout = 0 },
		"empty port":     func(c *Config) { c.Port = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
