package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	// Base URL of the remote Crefinso REST API.
	APIBaseURL      string
	HTTPTimeoutSecs int

	RedisAddr string
	RedisDB   int

	SessionTTLSecs int
	IdempTTLSecs   int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	// Best effort; a missing .env just means plain environment variables.
	_ = godotenv.Load()

	return &Config{
		AppPort:         getenv("APP_PORT", "8080"),
		APIBaseURL:      getenv("CREFINSO_API_URL", "https://localhost:7083"),
		HTTPTimeoutSecs: getenvInt("HTTP_TIMEOUT_SECONDS", 15),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		SessionTTLSecs: getenvInt("SESSION_TTL_SECONDS", 86400),
		IdempTTLSecs:   getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid CREFINSO_API_URL %q", c.APIBaseURL)
	}
	if c.HTTPTimeoutSecs <= 0 {
		return errors.New("HTTP_TIMEOUT_SECONDS must be positive")
	}
	if c.RedisAddr == "" {
		return errors.New("missing REDIS_ADDR")
	}
	return nil
}

func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSecs) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSecs) * time.Second
}

func (c *Config) IdempTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}
