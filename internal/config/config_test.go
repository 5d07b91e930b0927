package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:          "5000",
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "commune",
		JWTSecret:     "a-development-secret",
		TokenLifetime: 100 * time.Hour,
		Env:           "development",
	}
}

func TestValidate(t *testing.T) {
	t.Run("Valid development config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("Missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.EqualError(t, cfg.Validate(), "PORT is required")
	})

	t.Run("Missing secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = ""
		assert.EqualError(t, cfg.Validate(), "JWT_SECRET is required")
	})

	t.Run("Missing mongo uri", func(t *testing.T) {
		cfg := validConfig()
		cfg.MongoURI = ""
		assert.EqualError(t, cfg.Validate(), "MONGO_URI is required")
	})

	t.Run("Non-positive token lifetime", func(t *testing.T) {
		cfg := validConfig()
		cfg.TokenLifetime = 0
		assert.EqualError(t, cfg.Validate(), "TOKEN_LIFETIME must be positive")
	})

	t.Run("Sampler ratio outside the unit interval", func(t *testing.T) {
		cfg := validConfig()
		cfg.TraceSampler = 1.5
		assert.EqualError(t, cfg.Validate(), "TRACE_SAMPLER_RATIO must be between 0 and 1")
	})

	t.Run("Production rejects the default secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		err := cfg.Validate()
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "changed from the default")
		}
	})

	t.Run("Production rejects short secrets", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "too-short"
		err := cfg.Validate()
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "at least 32 characters")
		}
	})

	t.Run("Production accepts a strong secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = strings.Repeat("s", 32)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Prod alias gets the same strictness", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "prod"
		cfg.JWTSecret = "too-short"
		assert.Error(t, cfg.Validate())
	})
}
