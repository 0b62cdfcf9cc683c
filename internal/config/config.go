package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            int
	LogLevel        string
	AnthropicAPIKey string
	AnthropicModel  string
	MaxTokens       int
	NatsURL         string
	NatsToken       string
	DatabaseURL     string
	APIToken        string
	Timezone        string
}

func Load() Config {
	return Config{
		Port:            envInt("HEARTMIND_PORT", 8760),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		AnthropicAPIKey: envStr("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  envStr("HEARTMIND_MODEL", "claude-3-5-sonnet-20241022"),
		MaxTokens:       envInt("HEARTMIND_MAX_TOKENS", 300),
		NatsURL:         envStr("NATS_URL", ""),
		NatsToken:       envStr("NATS_TOKEN", ""),
		DatabaseURL:     envStr("DATABASE_URL", ""),
		APIToken:        envStr("HEARTMIND_API_TOKEN", ""),
		Timezone:        envStr("HEARTMIND_TIMEZONE", ""),
	}
}

// Location resolves Timezone; empty or unknown names fall back to local time.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Clock returns a time source in the configured location; mood follows its hour.
func (c Config) Clock() func() time.Time {
	loc := c.Location()
	return func() time.Time { return time.Now().In(loc) }
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
